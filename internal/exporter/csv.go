package exporter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"dmg-assess/internal/utils"
)

// CSVCodec 带 BOM 的 UTF-8 CSV。空列表输出零字节，不写表头。
type CSVCodec struct {
	// Columns 指定列顺序，为空时按字段声明顺序
	Columns []string
}

// Extension 文件扩展名
func (c *CSVCodec) Extension() string { return string(FormatCSV) }

// Export 导出
func (c *CSVCodec) Export(items interface{}) ([]byte, error) {
	t, err := newTable(items, c.Columns)
	if err != nil {
		return nil, err
	}
	if len(t.rows) == 0 {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(t.header()); err != nil {
		return nil, fmt.Errorf("写入CSV表头失败: %w", err)
	}
	record := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, col := range t.columns {
			record[i] = text(row.Field(col.index))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("写入CSV行失败: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("写入CSV失败: %w", err)
	}

	return utils.WithBOM(buf.Bytes()), nil
}

package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSXCodec Excel 工作簿，首行为加粗表头
type XLSXCodec struct {
	Sheet   string
	Columns []string
}

// Extension 文件扩展名
func (c *XLSXCodec) Extension() string { return string(FormatXLSX) }

// Export 导出
func (c *XLSXCodec) Export(items interface{}) ([]byte, error) {
	t, err := newTable(items, c.Columns)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if c.Sheet != "" && c.Sheet != defaultSheet {
		sheet = c.Sheet
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, fmt.Errorf("设置工作表名称失败: %w", err)
		}
	}

	if len(t.rows) > 0 {
		header := make([]interface{}, len(t.columns))
		for i, name := range t.header() {
			header[i] = name
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, fmt.Errorf("写入表头失败: %w", err)
		}

		headerStyle, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		if err == nil {
			last, _ := excelize.CoordinatesToCellName(len(t.columns), 1)
			f.SetCellStyle(sheet, "A1", last, headerStyle)
		}

		for r, row := range t.rows {
			values := make([]interface{}, len(t.columns))
			for i, col := range t.columns {
				values[i] = plain(row.Field(col.index))
			}
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, fmt.Errorf("写入第 %d 行失败: %w", r+1, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("生成Excel失败: %w", err)
	}
	return buf.Bytes(), nil
}

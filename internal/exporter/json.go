package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONCodec 对象数组，字段按声明顺序，缩进两个空格，nil 输出 null
type JSONCodec struct{}

// Extension 文件扩展名
func (c *JSONCodec) Extension() string { return string(FormatJSON) }

// Export 导出
func (c *JSONCodec) Export(items interface{}) ([]byte, error) {
	t, err := newTable(items, nil)
	if err != nil {
		return nil, err
	}

	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, row := range t.rows {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.WriteByte('{')
		for j, col := range t.columns {
			if j > 0 {
				compact.WriteByte(',')
			}
			if err := encodeValue(&compact, col.name); err != nil {
				return nil, err
			}
			compact.WriteByte(':')
			if err := encodeValue(&compact, plain(row.Field(col.index))); err != nil {
				return nil, fmt.Errorf("序列化字段 %s 失败: %w", col.name, err)
			}
		}
		compact.WriteByte('}')
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("格式化JSON失败: %w", err)
	}
	return out.Bytes(), nil
}

// encodeValue 写入单个 JSON 值，不转义 HTML 字符
func encodeValue(buf *bytes.Buffer, v interface{}) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}

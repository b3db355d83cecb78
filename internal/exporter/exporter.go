// Package exporter 把实体列表序列化为 CSV、JSON、XLSX 文件内容。
//
// 列取自结构体字段的声明顺序，列名即字段名。同一输入总是得到相同的字节输出
// （XLSX 除外，其压缩包元数据由 excelize 生成）。
package exporter

import (
	"fmt"
	"strings"
	"time"
)

// Format 导出文件格式
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// TimeLayout 时间字段的导出格式
const TimeLayout = "2006-01-02 15:04:05"

// Codec 导出编码器
type Codec interface {
	// Export items 必须是结构体切片或结构体指针切片
	Export(items interface{}) ([]byte, error)
	Extension() string
}

// ParseFormat 解析格式名，不区分大小写
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("不支持的导出格式: %s", s)
}

// ForFormat 按格式取编码器，sheet 仅用于 XLSX
func ForFormat(f Format, sheet string) (Codec, error) {
	switch f {
	case FormatCSV:
		return &CSVCodec{}, nil
	case FormatJSON:
		return &JSONCodec{}, nil
	case FormatXLSX:
		return &XLSXCodec{Sheet: sheet}, nil
	}
	return nil, fmt.Errorf("不支持的导出格式: %s", f)
}

// FileName 导出文件名 <Kind>_<yyyyMMdd_HHmmss>.<ext>
func FileName(kind string, at time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", kind, at.Format("20060102_150405"), ext)
}

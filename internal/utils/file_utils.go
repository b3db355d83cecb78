package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// UTF8BOM Excel 识别 UTF-8 编码所需的字节序标记
var UTF8BOM = []byte{0xEF, 0xBB, 0xBF}

// WithBOM 在内容前加 BOM
func WithBOM(data []byte) []byte {
	return append(append([]byte{}, UTF8BOM...), data...)
}

// EnsureDir 目录不存在时创建
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}
	return nil
}

// WriteFile 先写临时文件再改名，避免读到写了一半的文件
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("写入文件失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("写入文件失败: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("保存文件失败: %w", err)
	}
	return nil
}

package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrDuplicateKey 场景编号或名称重复
	ErrDuplicateKey = errors.New("编号或名称重复")
	// ErrIntegrity 外部关联数据（弹药、目标、用户）无法解析
	ErrIntegrity = errors.New("关联数据缺失")
)

// ValidationError 入库前的数据校验失败
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "数据校验失败"
	}
	return strings.Join(e.Fields, "; ")
}

// NewValidationError 由若干条错误信息构造校验错误
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Fields: messages}
}

// StorageError 数据库驱动或连接层错误，原样向上传递，不做重试
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsValidation 判断是否为校验错误
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage 判断是否为存储层错误
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

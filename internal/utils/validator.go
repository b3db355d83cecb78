package utils

import (
	"fmt"
	"sync"

	apperr "dmg-assess/pkg/errors"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// enumValue 有固定取值范围的枚举类型（目标类型、毁伤等级）
type enumValue interface {
	Valid() bool
}

// InitValidator 初始化验证器
func InitValidator() {
	validateOnce.Do(func() {
		validate = validator.New()

		// 注册自定义验证函数
		validate.RegisterValidation("enum", validateEnum)
	})
}

// GetValidator 获取验证器实例
func GetValidator() *validator.Validate {
	InitValidator()
	return validate
}

// validateEnum 验证枚举取值
func validateEnum(fl validator.FieldLevel) bool {
	field := fl.Field()
	if !field.CanInterface() {
		return false
	}
	v, ok := field.Interface().(enumValue)
	if !ok {
		return false
	}
	return v.Valid()
}

// ValidateStruct 验证结构体
func ValidateStruct(s interface{}) error {
	v := GetValidator()
	if err := v.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateStructExcept 验证结构体，跳过指定字段
func ValidateStructExcept(s interface{}, fields ...string) error {
	v := GetValidator()
	if err := v.StructExcept(s, fields...); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError 格式化验证错误
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		param := e.Param()

		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s是必填字段", field)
		case "max":
			message = fmt.Sprintf("%s长度不能大于%s", field, param)
		case "gte":
			message = fmt.Sprintf("%s不能小于%s", field, param)
		case "enum":
			message = fmt.Sprintf("%s取值无效: %v", field, e.Value())
		default:
			message = fmt.Sprintf("%s验证失败: %s", field, e.Tag())
		}

		messages = append(messages, message)
	}

	return apperr.NewValidationError(messages...)
}

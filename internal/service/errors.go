package service

import (
	"errors"
	"fmt"

	apperr "dmg-assess/pkg/errors"
)

var (
	// ErrInvalidTargetType 目标类型不在 1/2/3 之内
	ErrInvalidTargetType = fmt.Errorf("无效的目标类型: %w", apperr.ErrIntegrity)
	// ErrTargetNotFound 目标在对应子系统中不存在
	ErrTargetNotFound = fmt.Errorf("打击目标不存在: %w", apperr.ErrIntegrity)
	// ErrAmmunitionNotFound 弹药不存在
	ErrAmmunitionNotFound = fmt.Errorf("弹药不存在: %w", apperr.ErrIntegrity)
	// ErrSceneMissing 参数或结果引用的场景不存在
	ErrSceneMissing = fmt.Errorf("关联场景不存在: %w", apperr.ErrIntegrity)
	// ErrParameterMissing 结果引用的参数不存在或不属于该场景
	ErrParameterMissing = fmt.Errorf("关联参数不存在: %w", apperr.ErrIntegrity)
	// ErrResultMissing 报告引用的评估结果不存在
	ErrResultMissing = fmt.Errorf("关联评估结果不存在: %w", apperr.ErrIntegrity)

	ErrUserNotFound  = errors.New("用户名不存在")
	ErrWrongPassword = errors.New("密码不正确")
	ErrUserDisabled  = errors.New("该用户处于禁用状态")
	ErrNoSession     = errors.New("未登录")

	ErrExportBusy   = errors.New("导出任务过多，请稍后再试")
	ErrExportNoData = errors.New("没有可导出的数据")
	ErrUnknownKind  = errors.New("不支持的导出类型")
	ErrJobNotFound  = errors.New("导出任务不存在")
)

// notFoundAs 把存储层的 ErrNotFound 换成更具体的完整性错误，其余错误原样返回
func notFoundAs(err error, replacement error) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return replacement
	}
	return err
}

// notUpdated Update/Delete 返回 false 时转成 ErrNotFound
func notUpdated(ok bool, err error, what string, id uint) error {
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", what, id, apperr.ErrNotFound)
	}
	return nil
}

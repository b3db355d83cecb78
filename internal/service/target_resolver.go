package service

import (
	"context"
	"errors"
	"fmt"

	"dmg-assess/internal/models"
	apperr "dmg-assess/pkg/errors"
)

// Target 三类目标之一，Kind 决定哪个字段非空
type Target struct {
	Kind        models.TargetType
	Runway      *models.AirportRunway
	Shelter     *models.AircraftShelter
	CommandPost *models.UndergroundCommandPost
}

// Name 目标名称
func (t *Target) Name() string {
	switch t.Kind {
	case models.TargetRunway:
		return t.Runway.RunwayName
	case models.TargetShelter:
		return t.Shelter.ShelterName
	case models.TargetCommandPost:
		return t.CommandPost.UCCName
	}
	return ""
}

// Code 目标编号
func (t *Target) Code() string {
	switch t.Kind {
	case models.TargetRunway:
		return t.Runway.RunwayCode
	case models.TargetShelter:
		return t.Shelter.ShelterCode
	case models.TargetCommandPost:
		return t.CommandPost.UCCCode
	}
	return ""
}

// TargetResolver 按 TargetType + TargetID 到对应子系统查目标
type TargetResolver struct {
	source TargetSource
}

// NewTargetResolver 创建目标解析器
func NewTargetResolver(source TargetSource) *TargetResolver {
	return &TargetResolver{source: source}
}

// Lookup 查询目标。类型无效返回 ErrInvalidTargetType，查不到返回 ErrTargetNotFound，
// 两者都属于 ErrIntegrity；存储错误原样返回。
func (r *TargetResolver) Lookup(ctx context.Context, kind models.TargetType, id uint) (*Target, error) {
	t := &Target{Kind: kind}
	var err error
	switch kind {
	case models.TargetRunway:
		t.Runway, err = r.source.GetRunway(ctx, id)
	case models.TargetShelter:
		t.Shelter, err = r.source.GetShelter(ctx, id)
	case models.TargetCommandPost:
		t.CommandPost, err = r.source.GetCommandPost(ctx, id)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidTargetType, kind)
	}
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %d", ErrTargetNotFound, kind, id)
		}
		return nil, err
	}
	return t, nil
}

// Resolve 只取目标名称
func (r *TargetResolver) Resolve(ctx context.Context, kind models.TargetType, id uint) (string, error) {
	t, err := r.Lookup(ctx, kind, id)
	if err != nil {
		return "", err
	}
	return t.Name(), nil
}

// references 场景引用的弹药和目标；查不到的一项为 nil，并在 Warnings 中说明
type references struct {
	Ammunition *models.Ammunition
	Target     *Target
	Warnings   []string
}

// resolveReferences 查询弹药和目标。查不到属于数据完整性问题，记为警告返回；
// 存储错误原样返回。
func resolveReferences(ctx context.Context, ammo AmmunitionSource, targets *TargetResolver, amid uint, kind models.TargetType, tid uint) (*references, error) {
	refs := &references{}

	am, err := ammo.GetByID(ctx, amid)
	switch {
	case err == nil:
		refs.Ammunition = am
	case errors.Is(err, apperr.ErrNotFound):
		refs.Warnings = append(refs.Warnings, fmt.Sprintf("%v: AMID=%d", ErrAmmunitionNotFound, amid))
	default:
		return nil, err
	}

	t, err := targets.Lookup(ctx, kind, tid)
	switch {
	case err == nil:
		refs.Target = t
	case errors.Is(err, apperr.ErrIntegrity):
		refs.Warnings = append(refs.Warnings, err.Error())
	default:
		return nil, err
	}
	return refs, nil
}

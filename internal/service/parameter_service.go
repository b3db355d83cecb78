package service

import (
	"context"

	"dmg-assess/internal/models"
)

// ParameterService 毁伤参数服务
type ParameterService struct {
	params ParameterStore
	scenes SceneStore
}

// NewParameterService 创建参数服务
func NewParameterService(params ParameterStore, scenes SceneStore) *ParameterService {
	return &ParameterService{params: params, scenes: scenes}
}

// List 有效参数列表
func (s *ParameterService) List(ctx context.Context, keyword string) ([]models.DamageParameter, error) {
	if keyword == "" {
		return s.params.GetAll(ctx)
	}
	return s.params.Search(ctx, keyword)
}

// ListByScene 场景下的有效参数
func (s *ParameterService) ListByScene(ctx context.Context, dsid uint) ([]models.DamageParameter, error) {
	return s.params.GetBySceneID(ctx, dsid)
}

// Get 按ID获取参数
func (s *ParameterService) Get(ctx context.Context, id uint) (*models.DamageParameter, error) {
	return s.params.GetByID(ctx, id)
}

// Create 新增参数，DSCode 取自所属场景
func (s *ParameterService) Create(ctx context.Context, param *models.DamageParameter) (uint, error) {
	if err := param.Validate(); err != nil {
		return 0, err
	}
	if err := s.attachScene(ctx, param); err != nil {
		return 0, err
	}
	return s.params.Add(ctx, param)
}

// Update 修改参数
func (s *ParameterService) Update(ctx context.Context, param *models.DamageParameter) error {
	if err := param.Validate(); err != nil {
		return err
	}
	if err := s.attachScene(ctx, param); err != nil {
		return err
	}
	ok, err := s.params.Update(ctx, param)
	return notUpdated(ok, err, "参数", param.DPID)
}

// Delete 删除参数（软删除）
func (s *ParameterService) Delete(ctx context.Context, id uint) error {
	ok, err := s.params.Delete(ctx, id)
	return notUpdated(ok, err, "参数", id)
}

func (s *ParameterService) attachScene(ctx context.Context, param *models.DamageParameter) error {
	scene, err := s.scenes.GetByID(ctx, param.DSID)
	if err != nil {
		return notFoundAs(err, ErrSceneMissing)
	}
	param.DSCode = scene.DSCode
	return nil
}

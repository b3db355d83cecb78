package service

import (
	"context"
	"fmt"

	"dmg-assess/internal/calculator"
	"dmg-assess/internal/dto"
	"dmg-assess/internal/models"

	"github.com/sirupsen/logrus"
)

// ResultService 毁伤评估结果服务
type ResultService struct {
	results ResultStore
	scenes  SceneStore
	params  ParameterStore
	ammo    AmmunitionSource
	targets *TargetResolver
	logger  *logrus.Logger
}

// NewResultService 创建评估结果服务
func NewResultService(results ResultStore, scenes SceneStore, params ParameterStore, ammo AmmunitionSource, targets *TargetResolver, logger *logrus.Logger) *ResultService {
	return &ResultService{
		results: results,
		scenes:  scenes,
		params:  params,
		ammo:    ammo,
		targets: targets,
		logger:  logger,
	}
}

// List 评估结果列表
func (s *ResultService) List(ctx context.Context, keyword string) ([]models.AssessmentResult, error) {
	if keyword == "" {
		return s.results.GetAll(ctx)
	}
	return s.results.Search(ctx, keyword)
}

// ListByScene 场景下的评估结果
func (s *ResultService) ListByScene(ctx context.Context, dsid uint) ([]models.AssessmentResult, error) {
	return s.results.GetBySceneID(ctx, dsid)
}

// Get 按ID获取评估结果
func (s *ResultService) Get(ctx context.Context, id uint) (*models.AssessmentResult, error) {
	return s.results.GetByID(ctx, id)
}

// Create 直接录入评估结果
func (s *ResultService) Create(ctx context.Context, result *models.AssessmentResult) (uint, error) {
	if err := result.Validate(); err != nil {
		return 0, err
	}
	return s.results.Add(ctx, result)
}

// Update 修改评估结果
func (s *ResultService) Update(ctx context.Context, result *models.AssessmentResult) error {
	if err := result.Validate(); err != nil {
		return err
	}
	ok, err := s.results.Update(ctx, result)
	return notUpdated(ok, err, "评估结果", result.DAID)
}

// Delete 删除评估结果（物理删除）
func (s *ResultService) Delete(ctx context.Context, id uint) error {
	ok, err := s.results.Delete(ctx, id)
	return notUpdated(ok, err, "评估结果", id)
}

// Compute 按场景和参数计算毁伤并保存结果
//
// AMID、TargetType、TargetID 取自场景。弹药或目标查不到时仍按缺省参数计算，
// 缺失情况放在返回的 Warnings 中。
func (s *ResultService) Compute(ctx context.Context, dsid, dpid uint) (*dto.ComputeResult, error) {
	scene, err := s.scenes.GetByID(ctx, dsid)
	if err != nil {
		return nil, notFoundAs(err, ErrSceneMissing)
	}
	param, err := s.params.GetByID(ctx, dpid)
	if err != nil {
		return nil, notFoundAs(err, ErrParameterMissing)
	}
	if param.DSID != scene.DSID {
		return nil, fmt.Errorf("%w: DPID=%d 不属于 DSID=%d", ErrParameterMissing, dpid, dsid)
	}

	entry := s.logger.WithFields(logrus.Fields{
		"DSID":       dsid,
		"DPID":       dpid,
		"AMID":       scene.AMID,
		"TargetType": int(scene.TargetType),
		"TargetID":   scene.TargetID,
	})

	refs, err := resolveReferences(ctx, s.ammo, s.targets, scene.AMID, scene.TargetType, scene.TargetID)
	if err != nil {
		return nil, err
	}
	if len(refs.Warnings) > 0 {
		entry.WithField("warnings", refs.Warnings).Warn("关联数据缺失，按缺省参数计算")
	}

	result := &models.AssessmentResult{
		DSID:       scene.DSID,
		DPID:       param.DPID,
		AMID:       scene.AMID,
		TargetType: scene.TargetType,
		TargetID:   scene.TargetID,
	}
	outcome := calculator.Calculate(param, refs.Ammunition, scene.TargetType)
	outcome.Apply(result)

	if err := result.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.results.Add(ctx, result); err != nil {
		return nil, err
	}

	entry.WithFields(logrus.Fields{
		"DAID":         result.DAID,
		"DamageDegree": string(outcome.Degree),
	}).Info("毁伤结果计算完成")
	return &dto.ComputeResult{AssessmentResult: result, Warnings: refs.Warnings}, nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"dmg-assess/internal/dto"
	"dmg-assess/internal/models"
	"dmg-assess/internal/utils"

	"github.com/sirupsen/logrus"
)

// SceneService 场景服务
type SceneService struct {
	scenes  SceneStore
	params  ParameterStore
	ammo    AmmunitionSource
	targets *TargetResolver
	logger  *logrus.Logger
}

// NewSceneService 创建场景服务
func NewSceneService(scenes SceneStore, params ParameterStore, ammo AmmunitionSource, targets *TargetResolver, logger *logrus.Logger) *SceneService {
	return &SceneService{
		scenes:  scenes,
		params:  params,
		ammo:    ammo,
		targets: targets,
		logger:  logger,
	}
}

// DefaultSceneCode 默认场景编号 DS_yyyyMMddHHmmss
func DefaultSceneCode(now time.Time) string {
	return "DS_" + now.Format("20060102150405")
}

// List 有效场景列表，keyword 非空时模糊查询
func (s *SceneService) List(ctx context.Context, keyword string) ([]models.DamageScene, error) {
	if keyword == "" {
		return s.scenes.GetAll(ctx)
	}
	return s.scenes.Search(ctx, keyword)
}

// Get 按ID获取场景
func (s *SceneService) Get(ctx context.Context, id uint) (*models.DamageScene, error) {
	return s.scenes.GetByID(ctx, id)
}

// Create 新增场景；弹药或目标查不到时照常保存，缺失情况放在 Warnings 中
func (s *SceneService) Create(ctx context.Context, scene *models.DamageScene) (*dto.IDResponse, error) {
	if scene.DSCode == "" {
		scene.DSCode = DefaultSceneCode(time.Now())
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	warnings, err := s.checkReferences(ctx, scene)
	if err != nil {
		return nil, err
	}
	id, err := s.scenes.Add(ctx, scene)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"DSID": id, "DSCode": scene.DSCode}).Info("新增场景")
	return &dto.IDResponse{ID: id, Warnings: warnings}, nil
}

// Update 修改场景，返回关联数据缺失的警告
func (s *SceneService) Update(ctx context.Context, scene *models.DamageScene) ([]string, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	warnings, err := s.checkReferences(ctx, scene)
	if err != nil {
		return nil, err
	}
	ok, err := s.scenes.Update(ctx, scene)
	if err := notUpdated(ok, err, "场景", scene.DSID); err != nil {
		return nil, err
	}
	return warnings, nil
}

// checkReferences 场景的弹药和目标是否存在，缺失时返回警告
func (s *SceneService) checkReferences(ctx context.Context, scene *models.DamageScene) ([]string, error) {
	refs, err := resolveReferences(ctx, s.ammo, s.targets, scene.AMID, scene.TargetType, scene.TargetID)
	if err != nil {
		return nil, err
	}
	if len(refs.Warnings) > 0 {
		s.logger.WithFields(logrus.Fields{
			"DSCode":   scene.DSCode,
			"warnings": refs.Warnings,
		}).Warn("场景关联数据缺失")
	}
	return refs.Warnings, nil
}

// Delete 删除场景（软删除）
func (s *SceneService) Delete(ctx context.Context, id uint) error {
	ok, err := s.scenes.Delete(ctx, id)
	if err := notUpdated(ok, err, "场景", id); err != nil {
		return err
	}
	s.logger.WithField("DSID", id).Info("删除场景")
	return nil
}

// Save 保存场景及其参数，不是原子操作
//
// 新增场景时参数先排队，场景拿到 DSID 后再逐条写入；场景编号或名称重复时一条参数也不写。
func (s *SceneService) Save(ctx context.Context, req *dto.SceneSaveRequest) (*dto.SceneSaveResponse, error) {
	scene := req.Scene
	if scene.DSCode == "" {
		scene.DSCode = DefaultSceneCode(time.Now())
	}

	// 入库前统一校验
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	for i := range req.Parameters {
		if err := utils.ValidateStructExcept(&req.Parameters[i], "DSID", "DSCode"); err != nil {
			return nil, fmt.Errorf("第 %d 条参数: %w", i+1, err)
		}
	}
	warnings, err := s.checkReferences(ctx, &scene)
	if err != nil {
		return nil, err
	}

	resp := &dto.SceneSaveResponse{Warnings: warnings}
	if scene.DSID == 0 {
		id, err := s.scenes.Add(ctx, &scene)
		if err != nil {
			return nil, err
		}
		resp.DSID = id
	} else {
		ok, err := s.scenes.Update(ctx, &scene)
		if err := notUpdated(ok, err, "场景", scene.DSID); err != nil {
			return nil, err
		}
		resp.DSID = scene.DSID
	}

	for i := range req.Parameters {
		param := req.Parameters[i]
		param.DSID = resp.DSID
		param.DSCode = scene.DSCode

		if param.DPID == 0 {
			id, err := s.params.Add(ctx, &param)
			if err != nil {
				return resp, fmt.Errorf("保存第 %d 条参数失败: %w", i+1, err)
			}
			resp.ParameterIDs = append(resp.ParameterIDs, id)
			continue
		}

		ok, err := s.params.Update(ctx, &param)
		if err := notUpdated(ok, err, "参数", param.DPID); err != nil {
			return resp, fmt.Errorf("保存第 %d 条参数失败: %w", i+1, err)
		}
		resp.ParameterIDs = append(resp.ParameterIDs, param.DPID)
	}

	s.logger.WithFields(logrus.Fields{
		"DSID":       resp.DSID,
		"parameters": len(resp.ParameterIDs),
	}).Info("保存场景")
	return resp, nil
}

// Describe 场景详情；弹药或目标查不到时记为警告，不影响返回
func (s *SceneService) Describe(ctx context.Context, id uint) (*dto.SceneDetail, error) {
	scene, err := s.scenes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	params, err := s.params.GetBySceneID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.SceneDetail{
		Scene:      scene,
		TargetKind: scene.TargetType.String(),
		Parameters: params,
	}

	refs, err := resolveReferences(ctx, s.ammo, s.targets, scene.AMID, scene.TargetType, scene.TargetID)
	if err != nil {
		return nil, err
	}
	if refs.Ammunition != nil {
		detail.AmmunitionName = refs.Ammunition.DisplayName()
	}
	if refs.Target != nil {
		detail.TargetName = refs.Target.Name()
	}
	detail.Warnings = refs.Warnings

	if len(detail.Warnings) > 0 {
		s.logger.WithFields(logrus.Fields{"DSID": id, "warnings": detail.Warnings}).Warn("场景关联数据缺失")
	}
	return detail, nil
}

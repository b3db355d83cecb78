package dto

import "dmg-assess/internal/models"

// SceneSaveRequest 场景连同参数一起保存
//
// Scene.DSID 为 0 时新增，否则修改。Parameters 中 DPID 为 0 的条目会新增。
type SceneSaveRequest struct {
	Scene      models.DamageScene       `json:"scene"`
	Parameters []models.DamageParameter `json:"parameters"`
}

// SceneSaveResponse 保存结果
type SceneSaveResponse struct {
	DSID         uint     `json:"DSID"`
	ParameterIDs []uint   `json:"DPIDs"`
	Warnings     []string `json:"warnings,omitempty"`
}

// SceneDetail 场景详情，弹药和目标名称已解析
type SceneDetail struct {
	Scene          *models.DamageScene      `json:"scene"`
	AmmunitionName string                   `json:"ammunition_name"`
	TargetKind     string                   `json:"target_kind"`
	TargetName     string                   `json:"target_name"`
	Parameters     []models.DamageParameter `json:"parameters"`
	Warnings       []string                 `json:"warnings,omitempty"`
}

package service

import (
	"context"

	"dmg-assess/internal/models"
)

// Session 当前操作人，由 HTTP 层从 JWT 中取出后显式传入
type Session struct {
	UserID   uint
	UserName string
	IsAdmin  bool
}

// ── 存储接口 ──

// SceneStore 场景存储
type SceneStore interface {
	Add(ctx context.Context, scene *models.DamageScene) (uint, error)
	Update(ctx context.Context, scene *models.DamageScene) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.DamageScene, error)
	GetAll(ctx context.Context) ([]models.DamageScene, error)
	Search(ctx context.Context, keyword string) ([]models.DamageScene, error)
}

// ParameterStore 参数存储
type ParameterStore interface {
	Add(ctx context.Context, param *models.DamageParameter) (uint, error)
	Update(ctx context.Context, param *models.DamageParameter) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.DamageParameter, error)
	GetAll(ctx context.Context) ([]models.DamageParameter, error)
	Search(ctx context.Context, keyword string) ([]models.DamageParameter, error)
	GetBySceneID(ctx context.Context, dsid uint) ([]models.DamageParameter, error)
}

// ResultStore 评估结果存储
type ResultStore interface {
	Add(ctx context.Context, result *models.AssessmentResult) (uint, error)
	Update(ctx context.Context, result *models.AssessmentResult) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.AssessmentResult, error)
	GetAll(ctx context.Context) ([]models.AssessmentResult, error)
	Search(ctx context.Context, keyword string) ([]models.AssessmentResult, error)
	GetBySceneID(ctx context.Context, dsid uint) ([]models.AssessmentResult, error)
}

// ReportStore 报告存储
type ReportStore interface {
	Add(ctx context.Context, report *models.AssessmentReport) (uint, error)
	Update(ctx context.Context, report *models.AssessmentReport) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*models.AssessmentReport, error)
	GetAll(ctx context.Context) ([]models.AssessmentReport, error)
	Search(ctx context.Context, keyword string) ([]models.AssessmentReport, error)
}

// ── 外部子系统 ──

// AmmunitionSource 弹药数据
type AmmunitionSource interface {
	GetByID(ctx context.Context, amid uint) (*models.Ammunition, error)
}

// TargetSource 三类目标数据
type TargetSource interface {
	GetRunway(ctx context.Context, id uint) (*models.AirportRunway, error)
	GetShelter(ctx context.Context, id uint) (*models.AircraftShelter, error)
	GetCommandPost(ctx context.Context, id uint) (*models.UndergroundCommandPost, error)
}

// UserDirectory 用户目录
type UserDirectory interface {
	GetByID(ctx context.Context, uid uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

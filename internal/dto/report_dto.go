package dto

import "dmg-assess/internal/models"

// CreateReportRequest 新建报告请求
type CreateReportRequest struct {
	DAID         uint                 `json:"DAID" binding:"required"`
	ReportCode   string               `json:"ReportCode"`
	ReportName   string               `json:"ReportName" binding:"required"`
	DamageDegree *models.DamageDegree `json:"DamageDegree"`
	Comment      *string              `json:"Comment"`
	Reviewer     *string              `json:"Reviewer"`
}

// ReportDetail 报告详情
type ReportDetail struct {
	Report         *models.AssessmentReport `json:"report"`
	CreatorName    string                   `json:"creator_name"`
	AmmunitionName string                   `json:"ammunition_name"`
	TargetKind     string                   `json:"target_kind"`
	TargetName     string                   `json:"target_name"`
	Warnings       []string                 `json:"warnings,omitempty"`
}

package models

import (
	"time"

	"dmg-assess/internal/utils"
)

// AssessmentReport 毁伤评估报告
//
// 除 DAID 外还冗余保存场景、参数、弹药、目标的标识，源结果被删除后报告依然可读。
// ReportCode 不建唯一索引。
type AssessmentReport struct {
	ReportID     uint          `gorm:"column:ReportID;primaryKey;autoIncrement" json:"ReportID"`
	ReportCode   string        `gorm:"column:ReportCode;size:60" json:"ReportCode" validate:"max=60"`
	ReportName   string        `gorm:"column:ReportName;size:60;not null" json:"ReportName" validate:"required,max=60"`
	DAID         uint          `gorm:"column:DAID;not null" json:"DAID" validate:"required"`
	DSID         uint          `gorm:"column:DSID;not null" json:"DSID" validate:"required"`
	DPID         uint          `gorm:"column:DPID;not null" json:"DPID" validate:"required"`
	AMID         uint          `gorm:"column:AMID;not null" json:"AMID" validate:"required"`
	TargetType   TargetType    `gorm:"column:TargetType;not null" json:"TargetType" validate:"enum"`
	TargetID     uint          `gorm:"column:TargetID;not null" json:"TargetID" validate:"required"`
	DamageDegree *DamageDegree `gorm:"column:DamageDegree;size:60" json:"DamageDegree" validate:"omitempty,enum"`
	Comment      *string       `gorm:"column:Comment;type:text" json:"Comment"`
	Creator      *uint         `gorm:"column:Creator" json:"Creator"`
	Reviewer     *string       `gorm:"column:Reviewer;size:60" json:"Reviewer" validate:"omitempty,max=60"`
	CreatedTime  *time.Time    `gorm:"column:CreatedTime" json:"CreatedTime"`
	UpdatedTime  *time.Time    `gorm:"column:UpdatedTime" json:"UpdatedTime"`
}

// TableName 指定表名
func (AssessmentReport) TableName() string {
	return "Assessment_Report"
}

// Validate 入库前校验
func (r *AssessmentReport) Validate() error {
	return utils.ValidateStruct(r)
}

package models

import (
	"time"

	"dmg-assess/internal/utils"
)

// AssessmentResult 一组（场景, 参数）的毁伤计算结果
//
// AMID、TargetType、TargetID 从场景复制而来，场景修改后结果仍可追溯。
type AssessmentResult struct {
	DAID         uint          `gorm:"column:DAID;primaryKey;autoIncrement" json:"DAID"`
	DSID         uint          `gorm:"column:DSID;not null;index" json:"DSID" validate:"required"`
	DPID         uint          `gorm:"column:DPID;not null" json:"DPID" validate:"required"`
	AMID         uint          `gorm:"column:AMID;not null" json:"AMID" validate:"required"`
	TargetType   TargetType    `gorm:"column:TargetType;not null" json:"TargetType" validate:"enum"`
	TargetID     uint          `gorm:"column:TargetID;not null" json:"TargetID" validate:"required"`
	DADepth      *float64      `gorm:"column:DADepth;type:decimal(10,2)" json:"DADepth" validate:"omitempty,gte=0"`
	DADiameter   *float64      `gorm:"column:DADiameter;type:decimal(10,2)" json:"DADiameter" validate:"omitempty,gte=0"`
	DAVolume     *float64      `gorm:"column:DAVolume;type:decimal(10,2)" json:"DAVolume" validate:"omitempty,gte=0"`
	DAArea       *float64      `gorm:"column:DAArea;type:decimal(10,2)" json:"DAArea" validate:"omitempty,gte=0"`
	DALength     *float64      `gorm:"column:DALength;type:decimal(10,2)" json:"DALength" validate:"omitempty,gte=0"`
	DAWidth      *float64      `gorm:"column:DAWidth;type:decimal(10,2)" json:"DAWidth" validate:"omitempty,gte=0"`
	Discturction *float64      `gorm:"column:Discturction;type:decimal(10,2)" json:"Discturction" validate:"omitempty,gte=0"`
	DamageDegree *DamageDegree `gorm:"column:DamageDegree;size:60" json:"DamageDegree" validate:"omitempty,enum"`
	CreatedTime  *time.Time    `gorm:"column:CreatedTime" json:"CreatedTime"`
	UpdatedTime  *time.Time    `gorm:"column:UpdatedTime" json:"UpdatedTime"`
}

// TableName 指定表名
func (AssessmentResult) TableName() string {
	return "Assessment_Result"
}

// Validate 入库前校验
func (r *AssessmentResult) Validate() error {
	return utils.ValidateStruct(r)
}

package models

import (
	"time"

	"dmg-assess/internal/utils"
)

// DamageScene 毁伤场景：弹药 + 打击目标 + 场景信息
type DamageScene struct {
	DSID        uint       `gorm:"column:DSID;primaryKey;autoIncrement" json:"DSID"`
	DSCode      string     `gorm:"column:DSCode;size:60;not null;index" json:"DSCode" validate:"required,max=60"`
	DSName      string     `gorm:"column:DSName;size:60;not null;index" json:"DSName" validate:"required,max=60"`
	DSOffensive *string    `gorm:"column:DSOffensive;size:60" json:"DSOffensive" validate:"omitempty,max=60"`
	DSDefensive *string    `gorm:"column:DSDefensive;size:60" json:"DSDefensive" validate:"omitempty,max=60"`
	DSBattle    *string    `gorm:"column:DSBattle;size:60" json:"DSBattle" validate:"omitempty,max=60"`
	AMID        uint       `gorm:"column:AMID;not null" json:"AMID" validate:"required"`
	AMCode      string     `gorm:"column:AMCode;size:60" json:"AMCode" validate:"max=60"`
	TargetType  TargetType `gorm:"column:TargetType;not null" json:"TargetType" validate:"enum"`
	TargetID    uint       `gorm:"column:TargetID;not null" json:"TargetID" validate:"required"`
	TargetCode  string     `gorm:"column:TargetCode;size:60" json:"TargetCode" validate:"max=60"`
	DSStatus    int        `gorm:"column:DSStatus" json:"DSStatus"`
	CreatedTime *time.Time `gorm:"column:CreatedTime" json:"CreatedTime"`
	UpdatedTime *time.Time `gorm:"column:UpdatedTime" json:"UpdatedTime"`
}

// TableName 指定表名
func (DamageScene) TableName() string {
	return "DamageScene_Info"
}

// Validate 入库前校验
func (s *DamageScene) Validate() error {
	return utils.ValidateStruct(s)
}

// Active 是否未被软删除
func (s *DamageScene) Active() bool {
	return s.DSStatus == StatusActive
}

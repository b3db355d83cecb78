package models

import (
	"time"

	"dmg-assess/internal/utils"
)

// DamageParameter 毁伤参数，多对一挂在场景下
//
// DSCode 是场景编号的冗余副本，仅用于展示。数值字段为 nil 表示未填写，
// 与 0 区分存储（NULL 对 0.00）。
type DamageParameter struct {
	DPID                uint       `gorm:"column:DPID;primaryKey;autoIncrement" json:"DPID"`
	DSID                uint       `gorm:"column:DSID;not null;index" json:"DSID" validate:"required"`
	DSCode              string     `gorm:"column:DSCode;size:60;not null" json:"DSCode" validate:"max=60"`
	Carrier             *string    `gorm:"column:Carrier;size:60" json:"Carrier" validate:"omitempty,max=60"`
	GuidanceMode        *string    `gorm:"column:GuidanceMode;size:60" json:"GuidanceMode" validate:"omitempty,max=60"`
	WarheadType         string     `gorm:"column:WarheadType;size:60;not null" json:"WarheadType" validate:"required,max=60"`
	ChargeAmount        *float64   `gorm:"column:ChargeAmount;type:decimal(10,2)" json:"ChargeAmount" validate:"omitempty,gte=0"`
	DropHeight          *float64   `gorm:"column:DropHeight;type:decimal(10,2)" json:"DropHeight" validate:"omitempty,gte=0"`
	DropSpeed           *float64   `gorm:"column:DropSpeed;type:decimal(10,2)" json:"DropSpeed" validate:"omitempty,gte=0"`
	DropMode            *string    `gorm:"column:DropMode;size:60" json:"DropMode" validate:"omitempty,max=60"`
	FlightRange         *float64   `gorm:"column:FlightRange;type:decimal(10,2)" json:"FlightRange" validate:"omitempty,gte=0"`
	ElectroInterference *string    `gorm:"column:ElectroInterference;size:60" json:"ElectroInterference" validate:"omitempty,max=60"`
	WeatherConditions   *string    `gorm:"column:WeatherConditions;size:60" json:"WeatherConditions" validate:"omitempty,max=60"`
	WindSpeed           *float64   `gorm:"column:WindSpeed;type:decimal(10,2)" json:"WindSpeed" validate:"omitempty,gte=0"`
	DPStatus            int        `gorm:"column:DPStatus" json:"DPStatus"`
	CreatedTime         *time.Time `gorm:"column:CreatedTime" json:"CreatedTime"`
	UpdatedTime         *time.Time `gorm:"column:UpdatedTime" json:"UpdatedTime"`
}

// TableName 指定表名
func (DamageParameter) TableName() string {
	return "DamageParameter_Info"
}

// Validate 入库前校验
func (p *DamageParameter) Validate() error {
	return utils.ValidateStruct(p)
}

// Active 是否未被软删除
func (p *DamageParameter) Active() bool {
	return p.DPStatus == StatusActive
}

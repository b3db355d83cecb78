// Package calculator 爆破/破片战斗部的弹坑及结构毁伤估算
package calculator

import (
	"math"
	"strings"

	"dmg-assess/internal/models"
)

const (
	defaultHeatExpl  = 5000.0 // 炸药爆热 kJ/kg
	heatTNT          = 4187.0 // TNT 爆热
	defaultCharge    = 2.5    // 装药质量 kg
	defaultCGToBot   = 0.3    // 战斗部质心到孔底距离 m
	structureDepthLo = 1.3
	pi               = 3.14
)

// Outcome 一次计算的结果，数值均保留两位小数
type Outcome struct {
	Depth        float64
	Diameter     float64
	Volume       float64
	Area         float64
	Length       float64
	Width        float64
	Discturction float64
	Degree       models.DamageDegree
}

// Baseline 非爆破类战斗部使用的固定结果
func Baseline() Outcome {
	return Outcome{
		Depth:        0.5,
		Diameter:     0.5,
		Volume:       0.5,
		Area:         0.5,
		Length:       0.5,
		Width:        0.5,
		Discturction: 1,
		Degree:       models.DegreeLight,
	}
}

// Explosive 战斗部类型是否按爆破模型计算
func Explosive(warheadType string) bool {
	return strings.Contains(warheadType, "爆破") || strings.Contains(warheadType, "破片")
}

// Calculate 根据参数、弹药和目标类型估算毁伤；ammo 可以为 nil
func Calculate(param *models.DamageParameter, ammo *models.Ammunition, targetType models.TargetType) Outcome {
	if param == nil || !Explosive(param.WarheadType) {
		return Baseline()
	}

	heatExpl := defaultHeatExpl
	chargeMass := defaultCharge
	dist := defaultCGToBot
	if ammo != nil {
		if v, ok := positive(ammo.EXBExplosion); ok {
			heatExpl = v
		}
		if v, ok := positive(ammo.AMLength); ok {
			dist = v * 0.5
		}
	}
	if v, ok := chargeFrom(param, ammo); ok {
		chargeMass = v
	}

	// 大药量按目标类型折算
	if chargeMass >= 25 {
		switch targetType {
		case models.TargetRunway:
			chargeMass = math.Max(2.0, chargeMass/25.0)
		case models.TargetShelter, models.TargetCommandPost:
			chargeMass = math.Max(10.0, chargeMass/5.0)
		}
	}

	base := math.Pow(chargeMass*heatExpl/(dist*heatTNT), 1.0/3) + dist

	var depth, diameter float64
	if targetType == models.TargetRunway {
		depth = base / 3.0
		diameter = 5.0 * depth
	} else {
		depth = base / 1.5
		diameter = 1.8 * depth
	}

	radius := diameter / 2
	out := Outcome{
		Depth:        round2(depth),
		Diameter:     round2(diameter),
		Area:         round2(0.5 * pi * radius * radius),
		Volume:       round2(2.0 / 3.0 * pi * radius * radius * radius / 8.0),
		Length:       round2(1.05 * diameter),
		Width:        round2(0.95 * diameter),
		Discturction: 1,
	}
	if depth >= structureDepthLo {
		out.Discturction = round2(1 + 4*(depth-structureDepthLo))
	}
	out.Degree = Classify(out.Discturction)
	return out
}

// Classify 按结构破坏程度划分毁伤等级
func Classify(discturction float64) models.DamageDegree {
	switch {
	case discturction <= 1:
		return models.DegreeBelowLight
	case discturction <= 8:
		return models.DegreeLight
	case discturction <= 15:
		return models.DegreeModerate
	case discturction <= 20:
		return models.DegreeSevere
	default:
		return models.DegreeTotal
	}
}

// Apply 把计算结果写入评估结果实体
func (o Outcome) Apply(r *models.AssessmentResult) {
	r.DADepth = ptr(o.Depth)
	r.DADiameter = ptr(o.Diameter)
	r.DAVolume = ptr(o.Volume)
	r.DAArea = ptr(o.Area)
	r.DALength = ptr(o.Length)
	r.DAWidth = ptr(o.Width)
	r.Discturction = ptr(o.Discturction)
	degree := o.Degree
	r.DamageDegree = &degree
}

// chargeFrom 装药质量：弹药装药量 > 弹药装药质量 > 参数装药量
func chargeFrom(param *models.DamageParameter, ammo *models.Ammunition) (float64, bool) {
	if ammo != nil {
		if v, ok := positive(ammo.ChargeAmount); ok {
			return v, true
		}
		if v, ok := positive(ammo.EXBWeight); ok {
			return v, true
		}
	}
	return positive(param.ChargeAmount)
}

func positive(v *float64) (float64, bool) {
	if v == nil || *v == 0 {
		return 0, false
	}
	return *v, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr(v float64) *float64 {
	return &v
}

package calculator

import (
	"testing"

	"dmg-assess/internal/models"
)

func f(v float64) *float64 { return &v }

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		param  *models.DamageParameter
		ammo   *models.Ammunition
		target models.TargetType
		want   Outcome
	}{
		{
			name:   "跑道 默认药量",
			param:  &models.DamageParameter{WarheadType: "爆破战斗部"},
			target: models.TargetRunway,
			want: Outcome{
				Depth: 0.82, Diameter: 4.08, Volume: 2.23, Area: 6.55, Length: 4.29, Width: 3.88,
				Discturction: 1, Degree: models.DegreeBelowLight,
			},
		},
		{
			name:   "掩蔽库 默认药量",
			param:  &models.DamageParameter{WarheadType: "破片杀伤战斗部"},
			target: models.TargetShelter,
			want: Outcome{
				Depth: 1.63, Diameter: 2.94, Volume: 0.83, Area: 3.4, Length: 3.09, Width: 2.79,
				Discturction: 2.34, Degree: models.DegreeLight,
			},
		},
		{
			name:  "跑道 弹药参数优先",
			param: &models.DamageParameter{WarheadType: "爆破战斗部", ChargeAmount: f(10)},
			ammo: &models.Ammunition{
				ChargeAmount: f(500), EXBExplosion: f(6000), AMLength: f(3),
			},
			target: models.TargetRunway,
			want: Outcome{
				Depth: 1.39, Diameter: 6.96, Volume: 11.01, Area: 18.99, Length: 7.3, Width: 6.61,
				Discturction: 1.36, Degree: models.DegreeLight,
			},
		},
		{
			name:   "指挥所 参数药量折算",
			param:  &models.DamageParameter{WarheadType: "爆破战斗部", ChargeAmount: f(2000)},
			ammo:   &models.Ammunition{},
			target: models.TargetCommandPost,
			want: Outcome{
				Depth: 7.98, Diameter: 14.37, Volume: 97.11, Area: 81.08, Length: 15.09, Width: 13.65,
				Discturction: 27.74, Degree: models.DegreeTotal,
			},
		},
		{
			name:   "非爆破战斗部",
			param:  &models.DamageParameter{WarheadType: "侵彻战斗部", ChargeAmount: f(2000)},
			target: models.TargetRunway,
			want:   Baseline(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.param, tt.ammo, tt.target)
			if got != tt.want {
				t.Errorf("Calculate() =\n %+v\nwant\n %+v", got, tt.want)
			}
		})
	}
}

func TestCalculateUsesEXBWeightBeforeParameter(t *testing.T) {
	param := &models.DamageParameter{WarheadType: "爆破战斗部", ChargeAmount: f(2.5)}
	withWeight := Calculate(param, &models.Ammunition{EXBWeight: f(200)}, models.TargetShelter)
	if withWeight.Discturction != 11.05 || withWeight.Degree != models.DegreeModerate {
		t.Errorf("期望 11.05/中度毁伤，实际 %v/%s", withWeight.Discturction, withWeight.Degree)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   float64
		want models.DamageDegree
	}{
		{0.5, models.DegreeBelowLight},
		{1, models.DegreeBelowLight},
		{1.01, models.DegreeLight},
		{8, models.DegreeLight},
		{15, models.DegreeModerate},
		{17.45, models.DegreeSevere},
		{20, models.DegreeSevere},
		{20.01, models.DegreeTotal},
	}
	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestApply(t *testing.T) {
	var r models.AssessmentResult
	Baseline().Apply(&r)
	if r.DADepth == nil || *r.DADepth != 0.5 {
		t.Errorf("DADepth = %v", r.DADepth)
	}
	if r.DamageDegree == nil || *r.DamageDegree != models.DegreeLight {
		t.Errorf("DamageDegree = %v", r.DamageDegree)
	}
	if err := r.Validate(); err == nil {
		t.Error("缺少外键的结果应校验失败")
	}
}

package models

// TargetType 打击目标类型，决定 TargetID 指向哪张外部目标表
type TargetType int

const (
	TargetRunway      TargetType = 1 // 机场跑道
	TargetShelter     TargetType = 2 // 单机掩蔽库
	TargetCommandPost TargetType = 3 // 地下指挥所
)

// Valid 是否为三种已知目标类型之一
func (t TargetType) Valid() bool {
	switch t {
	case TargetRunway, TargetShelter, TargetCommandPost:
		return true
	}
	return false
}

// String 目标类型中文名
func (t TargetType) String() string {
	switch t {
	case TargetRunway:
		return "机场跑道"
	case TargetShelter:
		return "单机掩蔽库"
	case TargetCommandPost:
		return "地下指挥所"
	}
	return "未知目标"
}

// DamageDegree 毁伤等级
type DamageDegree string

const (
	DegreeBelowLight DamageDegree = "未达到轻度毁伤"
	DegreeLight      DamageDegree = "轻度毁伤"
	DegreeModerate   DamageDegree = "中度毁伤"
	DegreeSevere     DamageDegree = "重度毁伤"
	DegreeTotal      DamageDegree = "完全摧毁"
)

// DamageDegrees 按严重程度从低到高排列
var DamageDegrees = []DamageDegree{
	DegreeBelowLight,
	DegreeLight,
	DegreeModerate,
	DegreeSevere,
	DegreeTotal,
}

// Rank 等级序号，未知取值返回 -1
func (d DamageDegree) Rank() int {
	for i, v := range DamageDegrees {
		if v == d {
			return i
		}
	}
	return -1
}

// Valid 是否为已知等级
func (d DamageDegree) Valid() bool {
	return d.Rank() >= 0
}

// Less 严重程度是否低于 other
func (d DamageDegree) Less(other DamageDegree) bool {
	return d.Rank() < other.Rank()
}

// 实体状态
const (
	StatusDeleted = 0
	StatusActive  = 1
)

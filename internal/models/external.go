package models

// 以下表由弹药、目标、用户子系统维护，本系统只读。

// Ammunition 弹药基础数据（Ammunition_Info 的部分列）
type Ammunition struct {
	AMID         uint     `gorm:"column:AMID;primaryKey" json:"AMID"`
	AMName       string   `gorm:"column:AMName" json:"AMName"`
	AMNameCN     *string  `gorm:"column:AMNameCN" json:"AMNameCN"`
	AMType       string   `gorm:"column:AMType" json:"AMType"`
	WarheadType  *string  `gorm:"column:WarheadType" json:"WarheadType"`
	AMLength     *float64 `gorm:"column:AMLength" json:"AMLength"`
	ChargeAmount *float64 `gorm:"column:ChargeAmount" json:"ChargeAmount"`
	EXBExplosion *float64 `gorm:"column:EXBExplosion" json:"EXBExplosion"`
	EXBWeight    *float64 `gorm:"column:EXBWeight" json:"EXBWeight"`
}

// TableName 指定表名
func (Ammunition) TableName() string {
	return "Ammunition_Info"
}

// DisplayName 优先中文名
func (a *Ammunition) DisplayName() string {
	if a.AMNameCN != nil && *a.AMNameCN != "" {
		return *a.AMNameCN
	}
	return a.AMName
}

// AirportRunway 机场跑道
type AirportRunway struct {
	RunwayID   uint    `gorm:"column:RunwayID;primaryKey" json:"RunwayID"`
	RunwayCode string  `gorm:"column:RunwayCode" json:"RunwayCode"`
	RunwayName string  `gorm:"column:RunwayName" json:"RunwayName"`
	Country    *string `gorm:"column:Country" json:"Country"`
	Base       *string `gorm:"column:Base" json:"Base"`
}

// TableName 指定表名
func (AirportRunway) TableName() string {
	return "Runway_Info"
}

// AircraftShelter 单机掩蔽库
type AircraftShelter struct {
	ShelterID   uint    `gorm:"column:ShelterID;primaryKey" json:"ShelterID"`
	ShelterCode string  `gorm:"column:ShelterCode" json:"ShelterCode"`
	ShelterName string  `gorm:"column:ShelterName" json:"ShelterName"`
	Country     *string `gorm:"column:Country" json:"Country"`
	Base        *string `gorm:"column:Base" json:"Base"`
}

// TableName 指定表名
func (AircraftShelter) TableName() string {
	return "Shelter_Info"
}

// UndergroundCommandPost 地下指挥所
type UndergroundCommandPost struct {
	UCCID    uint    `gorm:"column:UCCID;primaryKey" json:"UCCID"`
	UCCCode  string  `gorm:"column:UCCCode" json:"UCCCode"`
	UCCName  string  `gorm:"column:UCCName" json:"UCCName"`
	Country  *string `gorm:"column:Country" json:"Country"`
	Base     *string `gorm:"column:Base" json:"Base"`
	Location *string `gorm:"column:Location" json:"Location"`
}

// TableName 指定表名
func (UndergroundCommandPost) TableName() string {
	return "UCC_Info"
}

// User 系统用户（User_Info）
type User struct {
	UID       uint    `gorm:"column:UID;primaryKey" json:"UID"`
	UserName  string  `gorm:"column:UserName" json:"UserName"`
	UPassword string  `gorm:"column:UPassword" json:"-"`
	TrueName  *string `gorm:"column:TrueName" json:"TrueName"`
	URole     string  `gorm:"column:URole" json:"URole"`
	UStatus   int     `gorm:"column:UStatus" json:"UStatus"`
}

// TableName 指定表名
func (User) TableName() string {
	return "User_Info"
}

// IsAdmin URole 为 1 表示系统管理员
func (u *User) IsAdmin() bool {
	return u.URole == "1"
}

// DisplayName 有真实姓名时显示真实姓名
func (u *User) DisplayName() string {
	if u.TrueName != nil && *u.TrueName != "" {
		return *u.TrueName
	}
	return u.UserName
}

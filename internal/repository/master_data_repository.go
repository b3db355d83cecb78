package repository

import (
	"context"

	"dmg-assess/internal/models"

	"gorm.io/gorm"
)

// AmmunitionRepository 弹药基础数据（只读）
type AmmunitionRepository struct {
	db *gorm.DB
}

// NewAmmunitionRepository 创建弹药Repository
func NewAmmunitionRepository(db *gorm.DB) *AmmunitionRepository {
	return &AmmunitionRepository{db: db}
}

// GetByID 根据弹药ID获取弹药
func (r *AmmunitionRepository) GetByID(ctx context.Context, amid uint) (*models.Ammunition, error) {
	var am models.Ammunition
	err := withConn(ctx, r.db, "查询弹药", func(tx *gorm.DB) error {
		return tx.Where("AMID = ?", amid).First(&am).Error
	})
	if err != nil {
		return nil, err
	}
	return &am, nil
}

// TargetRepository 三类打击目标（只读）
type TargetRepository struct {
	db *gorm.DB
}

// NewTargetRepository 创建目标Repository
func NewTargetRepository(db *gorm.DB) *TargetRepository {
	return &TargetRepository{db: db}
}

// GetRunway 获取机场跑道
func (r *TargetRepository) GetRunway(ctx context.Context, id uint) (*models.AirportRunway, error) {
	var runway models.AirportRunway
	err := withConn(ctx, r.db, "查询机场跑道", func(tx *gorm.DB) error {
		return tx.Where("RunwayID = ?", id).First(&runway).Error
	})
	if err != nil {
		return nil, err
	}
	return &runway, nil
}

// GetShelter 获取单机掩蔽库
func (r *TargetRepository) GetShelter(ctx context.Context, id uint) (*models.AircraftShelter, error) {
	var shelter models.AircraftShelter
	err := withConn(ctx, r.db, "查询掩蔽库", func(tx *gorm.DB) error {
		return tx.Where("ShelterID = ?", id).First(&shelter).Error
	})
	if err != nil {
		return nil, err
	}
	return &shelter, nil
}

// GetCommandPost 获取地下指挥所
func (r *TargetRepository) GetCommandPost(ctx context.Context, id uint) (*models.UndergroundCommandPost, error) {
	var post models.UndergroundCommandPost
	err := withConn(ctx, r.db, "查询地下指挥所", func(tx *gorm.DB) error {
		return tx.Where("UCCID = ?", id).First(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UserRepository 用户目录（只读）
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户Repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据UID获取用户
func (r *UserRepository) GetByID(ctx context.Context, uid uint) (*models.User, error) {
	var user models.User
	err := withConn(ctx, r.db, "查询用户", func(tx *gorm.DB) error {
		return tx.Where("UID = ?", uid).First(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := withConn(ctx, r.db, "查询用户", func(tx *gorm.DB) error {
		return tx.Where("UserName = ?", username).First(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

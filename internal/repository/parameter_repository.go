package repository

import (
	"context"

	"dmg-assess/internal/models"

	"gorm.io/gorm"
)

var parameterUpdateColumns = []string{
	"DSID", "DSCode", "Carrier", "GuidanceMode", "WarheadType",
	"ChargeAmount", "DropHeight", "DropSpeed", "DropMode", "FlightRange",
	"ElectroInterference", "WeatherConditions", "WindSpeed", "UpdatedTime",
}

// ParameterRepository 毁伤参数数据访问层
type ParameterRepository struct {
	db *gorm.DB
}

// NewParameterRepository 创建参数Repository
func NewParameterRepository(db *gorm.DB) *ParameterRepository {
	return &ParameterRepository{db: db}
}

// Add 新增参数，返回自增ID
func (r *ParameterRepository) Add(ctx context.Context, param *models.DamageParameter) (uint, error) {
	err := withConn(ctx, r.db, "新增参数", func(tx *gorm.DB) error {
		created, updated := stampNow(), stampNow()
		param.DPID = 0
		param.DPStatus = models.StatusActive
		param.CreatedTime = &created
		param.UpdatedTime = &updated
		return tx.Create(param).Error
	})
	if err != nil {
		return 0, err
	}
	return param.DPID, nil
}

// Update 更新参数，主键不存在时返回 false
func (r *ParameterRepository) Update(ctx context.Context, param *models.DamageParameter) (bool, error) {
	var ok bool
	err := withConn(ctx, r.db, "更新参数", func(tx *gorm.DB) error {
		found, err := rowExists(tx, &models.DamageParameter{}, "DPID", param.DPID)
		if err != nil || !found {
			return err
		}
		now := stampNow()
		param.UpdatedTime = &now
		if err := tx.Model(param).Select(parameterUpdateColumns).Updates(param).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

// Delete 软删除参数（DPStatus 置 0）
func (r *ParameterRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var ok bool
	err := withConn(ctx, r.db, "删除参数", func(tx *gorm.DB) error {
		found, err := rowExists(tx, &models.DamageParameter{}, "DPID", id)
		if err != nil || !found {
			return err
		}
		err = tx.Model(&models.DamageParameter{}).Where("DPID = ?", id).Updates(map[string]interface{}{
			"DPStatus":    models.StatusDeleted,
			"UpdatedTime": stampNow(),
		}).Error
		if err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

// GetByID 根据ID获取参数
func (r *ParameterRepository) GetByID(ctx context.Context, id uint) (*models.DamageParameter, error) {
	var param models.DamageParameter
	err := withConn(ctx, r.db, "查询参数", func(tx *gorm.DB) error {
		return tx.Where("DPID = ?", id).First(&param).Error
	})
	if err != nil {
		return nil, err
	}
	return &param, nil
}

// GetAll 获取全部有效参数
func (r *ParameterRepository) GetAll(ctx context.Context) ([]models.DamageParameter, error) {
	var params []models.DamageParameter
	err := withConn(ctx, r.db, "查询参数列表", func(tx *gorm.DB) error {
		return tx.Where("DPStatus = ?", models.StatusActive).Order("DPID DESC").Find(&params).Error
	})
	return params, err
}

// Search 按场景编号或战斗部类型模糊查询
func (r *ParameterRepository) Search(ctx context.Context, keyword string) ([]models.DamageParameter, error) {
	var params []models.DamageParameter
	clause, args := likeClause(keyword, "DSCode", "WarheadType")
	err := withConn(ctx, r.db, "搜索参数", func(tx *gorm.DB) error {
		return tx.Where("DPStatus = ?", models.StatusActive).
			Where(clause, args...).
			Order("DPID DESC").
			Find(&params).Error
	})
	return params, err
}

// GetBySceneID 获取场景下的全部有效参数
func (r *ParameterRepository) GetBySceneID(ctx context.Context, dsid uint) ([]models.DamageParameter, error) {
	var params []models.DamageParameter
	err := withConn(ctx, r.db, "查询场景参数", func(tx *gorm.DB) error {
		return tx.Where("DSID = ? AND DPStatus = ?", dsid, models.StatusActive).
			Order("DPID DESC").
			Find(&params).Error
	})
	return params, err
}

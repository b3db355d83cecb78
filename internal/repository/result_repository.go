package repository

import (
	"context"

	"dmg-assess/internal/models"

	"gorm.io/gorm"
)

var resultUpdateColumns = []string{
	"DSID", "DPID", "AMID", "TargetType", "TargetID",
	"DADepth", "DADiameter", "DAVolume", "DAArea", "DALength", "DAWidth",
	"Discturction", "DamageDegree", "UpdatedTime",
}

// ResultRepository 毁伤评估结果数据访问层，删除为物理删除
type ResultRepository struct {
	db *gorm.DB
}

// NewResultRepository 创建结果Repository
func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Add 新增评估结果
func (r *ResultRepository) Add(ctx context.Context, result *models.AssessmentResult) (uint, error) {
	err := withConn(ctx, r.db, "新增评估结果", func(tx *gorm.DB) error {
		created, updated := stampNow(), stampNow()
		result.DAID = 0
		result.CreatedTime = &created
		result.UpdatedTime = &updated
		return tx.Create(result).Error
	})
	if err != nil {
		return 0, err
	}
	return result.DAID, nil
}

// Update 更新评估结果
func (r *ResultRepository) Update(ctx context.Context, result *models.AssessmentResult) (bool, error) {
	var ok bool
	err := withConn(ctx, r.db, "更新评估结果", func(tx *gorm.DB) error {
		found, err := rowExists(tx, &models.AssessmentResult{}, "DAID", result.DAID)
		if err != nil || !found {
			return err
		}
		now := stampNow()
		result.UpdatedTime = &now
		if err := tx.Model(result).Select(resultUpdateColumns).Updates(result).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

// Delete 删除评估结果
func (r *ResultRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var affected int64
	err := withConn(ctx, r.db, "删除评估结果", func(tx *gorm.DB) error {
		res := tx.Where("DAID = ?", id).Delete(&models.AssessmentResult{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected > 0, err
}

// GetByID 根据ID获取评估结果
func (r *ResultRepository) GetByID(ctx context.Context, id uint) (*models.AssessmentResult, error) {
	var result models.AssessmentResult
	err := withConn(ctx, r.db, "查询评估结果", func(tx *gorm.DB) error {
		return tx.Where("DAID = ?", id).First(&result).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAll 获取全部评估结果
func (r *ResultRepository) GetAll(ctx context.Context) ([]models.AssessmentResult, error) {
	var results []models.AssessmentResult
	err := withConn(ctx, r.db, "查询评估结果列表", func(tx *gorm.DB) error {
		return tx.Order("DAID DESC").Find(&results).Error
	})
	return results, err
}

// Search 按毁伤等级或结果ID模糊查询
func (r *ResultRepository) Search(ctx context.Context, keyword string) ([]models.AssessmentResult, error) {
	var results []models.AssessmentResult
	pattern := likePattern(keyword)
	err := withConn(ctx, r.db, "搜索评估结果", func(tx *gorm.DB) error {
		return tx.Where("(LOWER(DamageDegree) LIKE ? ESCAPE '!' OR CAST(DAID AS CHAR) LIKE ? ESCAPE '!')", pattern, pattern).
			Order("DAID DESC").
			Find(&results).Error
	})
	return results, err
}

// GetBySceneID 获取场景下的全部评估结果
func (r *ResultRepository) GetBySceneID(ctx context.Context, dsid uint) ([]models.AssessmentResult, error) {
	var results []models.AssessmentResult
	err := withConn(ctx, r.db, "查询场景评估结果", func(tx *gorm.DB) error {
		return tx.Where("DSID = ?", dsid).Order("DAID DESC").Find(&results).Error
	})
	return results, err
}

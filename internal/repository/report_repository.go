package repository

import (
	"context"

	"dmg-assess/internal/models"

	"gorm.io/gorm"
)

var reportUpdateColumns = []string{
	"ReportCode", "ReportName", "DAID", "DSID", "DPID", "AMID",
	"TargetType", "TargetID", "DamageDegree", "Comment", "Creator", "Reviewer",
	"UpdatedTime",
}

// ReportRepository 评估报告数据访问层，删除为物理删除
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建报告Repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Add 新增报告
func (r *ReportRepository) Add(ctx context.Context, report *models.AssessmentReport) (uint, error) {
	err := withConn(ctx, r.db, "新增报告", func(tx *gorm.DB) error {
		created, updated := stampNow(), stampNow()
		report.ReportID = 0
		report.CreatedTime = &created
		report.UpdatedTime = &updated
		return tx.Create(report).Error
	})
	if err != nil {
		return 0, err
	}
	return report.ReportID, nil
}

// Update 更新报告
func (r *ReportRepository) Update(ctx context.Context, report *models.AssessmentReport) (bool, error) {
	var ok bool
	err := withConn(ctx, r.db, "更新报告", func(tx *gorm.DB) error {
		found, err := rowExists(tx, &models.AssessmentReport{}, "ReportID", report.ReportID)
		if err != nil || !found {
			return err
		}
		now := stampNow()
		report.UpdatedTime = &now
		if err := tx.Model(report).Select(reportUpdateColumns).Updates(report).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}

// Delete 删除报告
func (r *ReportRepository) Delete(ctx context.Context, id uint) (bool, error) {
	var affected int64
	err := withConn(ctx, r.db, "删除报告", func(tx *gorm.DB) error {
		res := tx.Where("ReportID = ?", id).Delete(&models.AssessmentReport{})
		affected = res.RowsAffected
		return res.Error
	})
	return affected > 0, err
}

// GetByID 根据ID获取报告
func (r *ReportRepository) GetByID(ctx context.Context, id uint) (*models.AssessmentReport, error) {
	var report models.AssessmentReport
	err := withConn(ctx, r.db, "查询报告", func(tx *gorm.DB) error {
		return tx.Where("ReportID = ?", id).First(&report).Error
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetAll 获取全部报告
func (r *ReportRepository) GetAll(ctx context.Context) ([]models.AssessmentReport, error) {
	var reports []models.AssessmentReport
	err := withConn(ctx, r.db, "查询报告列表", func(tx *gorm.DB) error {
		return tx.Order("ReportID DESC").Find(&reports).Error
	})
	return reports, err
}

// Search 按报告编号或名称模糊查询
func (r *ReportRepository) Search(ctx context.Context, keyword string) ([]models.AssessmentReport, error) {
	var reports []models.AssessmentReport
	clause, args := likeClause(keyword, "ReportCode", "ReportName")
	err := withConn(ctx, r.db, "搜索报告", func(tx *gorm.DB) error {
		return tx.Where(clause, args...).Order("ReportID DESC").Find(&reports).Error
	})
	return reports, err
}

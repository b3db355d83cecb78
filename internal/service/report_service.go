package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dmg-assess/internal/dto"
	"dmg-assess/internal/models"
	apperr "dmg-assess/pkg/errors"

	"github.com/sirupsen/logrus"
)

// ReportService 评估报告服务
type ReportService struct {
	reports ReportStore
	results ResultStore
	users   UserDirectory
	ammo    AmmunitionSource
	targets *TargetResolver
	logger  *logrus.Logger
}

// NewReportService 创建报告服务
func NewReportService(reports ReportStore, results ResultStore, users UserDirectory, ammo AmmunitionSource, targets *TargetResolver, logger *logrus.Logger) *ReportService {
	return &ReportService{
		reports: reports,
		results: results,
		users:   users,
		ammo:    ammo,
		targets: targets,
		logger:  logger,
	}
}

// DefaultReportCode 默认报告编号 RPT_yyyyMMddHHmmss
func DefaultReportCode(now time.Time) string {
	return "RPT_" + now.Format("20060102150405")
}

// List 报告列表
func (s *ReportService) List(ctx context.Context, keyword string) ([]models.AssessmentReport, error) {
	if keyword == "" {
		return s.reports.GetAll(ctx)
	}
	return s.reports.Search(ctx, keyword)
}

// Get 按ID获取报告
func (s *ReportService) Get(ctx context.Context, id uint) (*models.AssessmentReport, error) {
	return s.reports.GetByID(ctx, id)
}

// Create 基于一条评估结果新建报告
//
// 场景、参数、弹药、目标标识在此刻从结果复制到报告，Creator 取自 session。
func (s *ReportService) Create(ctx context.Context, session *Session, req *dto.CreateReportRequest) (*models.AssessmentReport, error) {
	if session == nil || session.UserID == 0 {
		return nil, ErrNoSession
	}

	result, err := s.results.GetByID(ctx, req.DAID)
	if err != nil {
		return nil, notFoundAs(err, ErrResultMissing)
	}

	creator := session.UserID
	report := &models.AssessmentReport{
		ReportCode:   req.ReportCode,
		ReportName:   req.ReportName,
		DAID:         result.DAID,
		DSID:         result.DSID,
		DPID:         result.DPID,
		AMID:         result.AMID,
		TargetType:   result.TargetType,
		TargetID:     result.TargetID,
		DamageDegree: req.DamageDegree,
		Comment:      req.Comment,
		Creator:      &creator,
		Reviewer:     req.Reviewer,
	}
	if report.ReportCode == "" {
		report.ReportCode = DefaultReportCode(time.Now())
	}
	if report.DamageDegree == nil {
		report.DamageDegree = result.DamageDegree
	}

	if err := report.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.reports.Add(ctx, report); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"ReportID": report.ReportID,
		"DAID":     report.DAID,
		"creator":  session.UserName,
	}).Info("新建评估报告")
	return report, nil
}

// Update 修改报告的可编辑字段，冗余的标识和创建人保持不变
func (s *ReportService) Update(ctx context.Context, report *models.AssessmentReport) error {
	existing, err := s.reports.GetByID(ctx, report.ReportID)
	if err != nil {
		return err
	}

	existing.ReportCode = report.ReportCode
	if existing.ReportCode == "" {
		existing.ReportCode = DefaultReportCode(time.Now())
	}
	existing.ReportName = report.ReportName
	existing.DamageDegree = report.DamageDegree
	existing.Comment = report.Comment
	existing.Reviewer = report.Reviewer

	if err := existing.Validate(); err != nil {
		return err
	}
	ok, err := s.reports.Update(ctx, existing)
	return notUpdated(ok, err, "报告", report.ReportID)
}

// Delete 删除报告（物理删除）
func (s *ReportService) Delete(ctx context.Context, id uint) error {
	ok, err := s.reports.Delete(ctx, id)
	return notUpdated(ok, err, "报告", id)
}

// Describe 报告详情，创建人、弹药、目标名称查不到时记为警告
func (s *ReportService) Describe(ctx context.Context, id uint) (*dto.ReportDetail, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := &dto.ReportDetail{
		Report:     report,
		TargetKind: report.TargetType.String(),
	}

	if report.Creator != nil {
		user, err := s.users.GetByID(ctx, *report.Creator)
		switch {
		case err == nil:
			detail.CreatorName = user.DisplayName()
		case errors.Is(err, apperr.ErrNotFound):
			detail.Warnings = append(detail.Warnings, fmt.Sprintf("创建人不存在: UID=%d", *report.Creator))
		default:
			return nil, err
		}
	}

	am, err := s.ammo.GetByID(ctx, report.AMID)
	switch {
	case err == nil:
		detail.AmmunitionName = am.DisplayName()
	case errors.Is(err, apperr.ErrNotFound):
		detail.Warnings = append(detail.Warnings, fmt.Sprintf("%v: AMID=%d", ErrAmmunitionNotFound, report.AMID))
	default:
		return nil, err
	}

	name, err := s.targets.Resolve(ctx, report.TargetType, report.TargetID)
	switch {
	case err == nil:
		detail.TargetName = name
	case errors.Is(err, apperr.ErrIntegrity):
		detail.Warnings = append(detail.Warnings, err.Error())
	default:
		return nil, err
	}

	return detail, nil
}

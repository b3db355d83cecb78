package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"dmg-assess/internal/config"
	"dmg-assess/internal/dto"
	"dmg-assess/internal/exporter"
	"dmg-assess/internal/utils"
	apperr "dmg-assess/pkg/errors"
	"dmg-assess/pkg/redis_limiter"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExportKind 可导出的实体
type ExportKind string

const (
	KindDamageScene      ExportKind = "DamageScene"
	KindDamageParameter  ExportKind = "DamageParameter"
	KindAssessmentResult ExportKind = "AssessmentResult"
	KindAssessmentReport ExportKind = "AssessmentReport"
)

// 导出任务状态
const (
	ExportRunning = "running"
	ExportDone    = "done"
	ExportError   = "error"
)

const exportSlotKey = "export"

// ParseExportKind 解析导出实体名
func ParseExportKind(s string) (ExportKind, error) {
	switch k := ExportKind(s); k {
	case KindDamageScene, KindDamageParameter, KindAssessmentResult, KindAssessmentReport:
		return k, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, s)
}

// ExportService 后台导出任务
type ExportService struct {
	scenes  SceneStore
	params  ParameterStore
	results ResultStore
	reports ReportStore
	store   ProgressStore
	limiter redis_limiter.Limiter
	cfg     config.ExportConfig
	logger  *logrus.Logger
	now     func() time.Time
}

// NewExportService 创建导出服务
func NewExportService(
	scenes SceneStore,
	params ParameterStore,
	results ResultStore,
	reports ReportStore,
	store ProgressStore,
	limiter redis_limiter.Limiter,
	cfg config.ExportConfig,
	logger *logrus.Logger,
) *ExportService {
	return &ExportService{
		scenes:  scenes,
		params:  params,
		results: results,
		reports: reports,
		store:   store,
		limiter: limiter,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// Start 受理导出任务并在后台执行，返回任务ID
func (s *ExportService) Start(ctx context.Context, kind, format string) (string, error) {
	k, err := ParseExportKind(kind)
	if err != nil {
		return "", apperr.NewValidationError(err.Error())
	}
	f, err := exporter.ParseFormat(format)
	if err != nil {
		return "", apperr.NewValidationError(err.Error())
	}

	if err := s.limiter.Acquire(ctx, exportSlotKey); err != nil {
		var limit *redis_limiter.ErrLimitReached
		if errors.As(err, &limit) {
			current, cerr := s.limiter.GetCurrent(ctx, exportSlotKey)
			if cerr != nil {
				s.logger.WithError(cerr).Warn("获取导出并发数失败")
				return "", fmt.Errorf("%w（上限 %d）", ErrExportBusy, limit.Max)
			}
			return "", fmt.Errorf("%w（进行中 %d，上限 %d）", ErrExportBusy, current, limit.Max)
		}
		return "", err
	}

	job := &dto.ExportProgress{
		JobID:     uuid.New().String(),
		Kind:      string(k),
		Format:    string(f),
		Status:    ExportRunning,
		UpdatedAt: s.now(),
	}
	if err := s.store.Save(ctx, job); err != nil {
		s.limiter.Release(ctx, exportSlotKey)
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"job_id": job.JobID,
		"kind":   k,
		"format": f,
	}).Info("导出任务已受理")

	go s.run(job, k, f)
	return job.JobID, nil
}

// Progress 查询导出进度
func (s *ExportService) Progress(ctx context.Context, jobID string) (*dto.ExportProgress, error) {
	return s.store.Get(ctx, jobID)
}

// run 后台执行导出，请求上下文结束后任务仍继续
func (s *ExportService) run(job *dto.ExportProgress, kind ExportKind, format exporter.Format) {
	ctx := context.Background()
	defer s.limiter.Release(ctx, exportSlotKey)

	entry := s.logger.WithField("job_id", job.JobID)

	path, err := s.export(ctx, job, kind, format)
	if err != nil {
		job.Status = ExportError
		job.Error = err.Error()
		entry.WithError(err).Error("导出失败")
	} else {
		job.Status = ExportDone
		job.Progress = 100
		job.FilePath = path
		entry.WithField("file", path).Info("导出完成")
	}
	s.save(ctx, job)
}

func (s *ExportService) export(ctx context.Context, job *dto.ExportProgress, kind ExportKind, format exporter.Format) (string, error) {
	items, n, err := s.load(ctx, kind)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrExportNoData
	}

	job.Progress = 30
	s.save(ctx, job)

	codec, err := exporter.ForFormat(format, string(kind))
	if err != nil {
		return "", err
	}
	data, err := codec.Export(items)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.cfg.OutputDir, exporter.FileName(string(kind), s.now(), codec.Extension()))
	if err := utils.WriteFile(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// load 读取待导出的行，返回切片及行数
func (s *ExportService) load(ctx context.Context, kind ExportKind) (interface{}, int, error) {
	switch kind {
	case KindDamageScene:
		rows, err := s.scenes.GetAll(ctx)
		return rows, len(rows), err
	case KindDamageParameter:
		rows, err := s.params.GetAll(ctx)
		return rows, len(rows), err
	case KindAssessmentResult:
		rows, err := s.results.GetAll(ctx)
		return rows, len(rows), err
	case KindAssessmentReport:
		rows, err := s.reports.GetAll(ctx)
		return rows, len(rows), err
	}
	return nil, 0, ErrUnknownKind
}

func (s *ExportService) save(ctx context.Context, job *dto.ExportProgress) {
	job.UpdatedAt = s.now()
	if err := s.store.Save(ctx, job); err != nil {
		s.logger.WithError(err).WithField("job_id", job.JobID).Warn("保存导出进度失败")
	}
}

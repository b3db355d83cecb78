package handler

import (
	"dmg-assess/internal/dto"
	"dmg-assess/internal/middleware"
	"dmg-assess/internal/models"
	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler 评估报告处理器
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler 创建报告处理器
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// List 报告列表
func (h *ReportHandler) List(c *gin.Context) {
	items, err := h.reports.List(c.Request.Context(), c.Query("keyword"))
	list(c, items, err)
}

// Get 报告详情
func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	report, err := h.reports.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, report)
}

// Detail 报告详情，附创建人、弹药、目标名称
func (h *ReportHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.reports.Describe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, detail)
}

// Create 基于评估结果新建报告，创建人为当前登录用户
// @Summary 新建评估报告
// @Tags 评估报告
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReportRequest true "报告信息"
// @Router /api/reports [post]
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if !bindJSON(c, &req) {
		return
	}
	report, err := h.reports.Create(c.Request.Context(), middleware.GetSession(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "新增成功", report)
}

// Update 修改报告
func (h *ReportHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var report models.AssessmentReport
	if !bindJSON(c, &report) {
		return
	}
	report.ReportID = id

	if err := h.reports.Update(c.Request.Context(), &report); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "修改成功", nil)
}

// Delete 删除报告
func (h *ReportHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.reports.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

package handler

import (
	"dmg-assess/internal/dto"
	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"

	"github.com/gin-gonic/gin"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Start 发起导出任务
// @Summary 发起导出
// @Tags 导出
// @Accept json
// @Produce json
// @Param request body dto.StartExportRequest true "实体与格式"
// @Success 200 {object} utils.Response{data=dto.StartExportResponse}
// @Router /api/exports [post]
func (h *ExportHandler) Start(c *gin.Context) {
	var req dto.StartExportRequest
	if !bindJSON(c, &req) {
		return
	}
	jobID, err := h.exports.Start(c.Request.Context(), req.Kind, req.Format)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "导出任务已提交", dto.StartExportResponse{
		JobID:  jobID,
		Status: service.ExportRunning,
	})
}

// Progress 查询导出进度
// @Router /api/exports/{job_id} [get]
func (h *ExportHandler) Progress(c *gin.Context) {
	p, err := h.exports.Progress(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, p)
}

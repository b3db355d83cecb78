package handler

import (
	"dmg-assess/internal/dto"
	"dmg-assess/internal/models"
	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"

	"github.com/gin-gonic/gin"
)

// ResultHandler 评估结果处理器
type ResultHandler struct {
	results *service.ResultService
}

// NewResultHandler 创建评估结果处理器
func NewResultHandler(results *service.ResultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// List 评估结果列表
func (h *ResultHandler) List(c *gin.Context) {
	items, err := h.results.List(c.Request.Context(), c.Query("keyword"))
	list(c, items, err)
}

// Get 评估结果详情
func (h *ResultHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	result, err := h.results.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, result)
}

// Compute 按场景和参数计算毁伤并保存
// @Summary 毁伤计算
// @Tags 评估结果
// @Accept json
// @Produce json
// @Param request body dto.ComputeResultRequest true "场景和参数"
// @Router /api/results/compute [post]
func (h *ResultHandler) Compute(c *gin.Context) {
	var req dto.ComputeResultRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.results.Compute(c.Request.Context(), req.DSID, req.DPID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "计算完成", result)
}

// Create 直接录入评估结果
func (h *ResultHandler) Create(c *gin.Context) {
	var result models.AssessmentResult
	if !bindJSON(c, &result) {
		return
	}
	result.DAID = 0

	id, err := h.results.Create(c.Request.Context(), &result)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "新增成功", dto.IDResponse{ID: id})
}

// Update 修改评估结果
func (h *ResultHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var result models.AssessmentResult
	if !bindJSON(c, &result) {
		return
	}
	result.DAID = id

	if err := h.results.Update(c.Request.Context(), &result); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "修改成功", nil)
}

// Delete 删除评估结果
func (h *ResultHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.results.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

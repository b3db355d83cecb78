package handler

import (
	"dmg-assess/internal/dto"
	"dmg-assess/internal/models"
	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"

	"github.com/gin-gonic/gin"
)

// ParameterHandler 毁伤参数处理器
type ParameterHandler struct {
	params *service.ParameterService
}

// NewParameterHandler 创建参数处理器
func NewParameterHandler(params *service.ParameterService) *ParameterHandler {
	return &ParameterHandler{params: params}
}

// List 参数列表
func (h *ParameterHandler) List(c *gin.Context) {
	items, err := h.params.List(c.Request.Context(), c.Query("keyword"))
	list(c, items, err)
}

// Get 参数详情
func (h *ParameterHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	param, err := h.params.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, param)
}

// Create 新增参数
func (h *ParameterHandler) Create(c *gin.Context) {
	var param models.DamageParameter
	if !bindJSON(c, &param) {
		return
	}
	param.DPID = 0

	id, err := h.params.Create(c.Request.Context(), &param)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "新增成功", dto.IDResponse{ID: id})
}

// Update 修改参数
func (h *ParameterHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var param models.DamageParameter
	if !bindJSON(c, &param) {
		return
	}
	param.DPID = id

	if err := h.params.Update(c.Request.Context(), &param); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "修改成功", nil)
}

// Delete 删除参数
func (h *ParameterHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.params.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

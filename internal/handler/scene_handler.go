package handler

import (
	"dmg-assess/internal/dto"
	"dmg-assess/internal/models"
	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"

	"github.com/gin-gonic/gin"
)

// SceneHandler 毁伤场景处理器
type SceneHandler struct {
	scenes  *service.SceneService
	params  *service.ParameterService
	results *service.ResultService
}

// NewSceneHandler 创建场景处理器
func NewSceneHandler(scenes *service.SceneService, params *service.ParameterService, results *service.ResultService) *SceneHandler {
	return &SceneHandler{scenes: scenes, params: params, results: results}
}

// List 场景列表
// @Summary 场景列表
// @Tags 毁伤场景
// @Produce json
// @Param keyword query string false "按编号、名称模糊查询"
// @Router /api/scenes [get]
func (h *SceneHandler) List(c *gin.Context) {
	items, err := h.scenes.List(c.Request.Context(), c.Query("keyword"))
	list(c, items, err)
}

// Get 场景详情
func (h *SceneHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	scene, err := h.scenes.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, scene)
}

// Detail 场景及参数，弹药和目标名称已解析
// @Router /api/scenes/{id}/detail [get]
func (h *SceneHandler) Detail(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.scenes.Describe(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessResponse(c, detail)
}

// Create 新增场景
func (h *SceneHandler) Create(c *gin.Context) {
	var scene models.DamageScene
	if !bindJSON(c, &scene) {
		return
	}
	scene.DSID = 0

	resp, err := h.scenes.Create(c.Request.Context(), &scene)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "新增成功", resp)
}

// Save 场景连同参数一起保存
// @Router /api/scenes/save [post]
func (h *SceneHandler) Save(c *gin.Context) {
	var req dto.SceneSaveRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.scenes.Save(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "保存成功", resp)
}

// Update 修改场景
func (h *SceneHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var scene models.DamageScene
	if !bindJSON(c, &scene) {
		return
	}
	scene.DSID = id

	warnings, err := h.scenes.Update(c.Request.Context(), &scene)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "修改成功", dto.IDResponse{ID: id, Warnings: warnings})
}

// Delete 删除场景
func (h *SceneHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.scenes.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessWithMessage(c, "删除成功", nil)
}

// Parameters 场景下的有效参数
func (h *SceneHandler) Parameters(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.params.ListByScene(c.Request.Context(), id)
	list(c, items, err)
}

// Results 场景下的评估结果
func (h *SceneHandler) Results(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.results.ListByScene(c.Request.Context(), id)
	list(c, items, err)
}

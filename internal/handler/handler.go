package handler

import (
	"errors"
	"net/http"
	"strconv"

	"dmg-assess/internal/dto"
	"dmg-assess/internal/service"
	"dmg-assess/internal/utils"
	apperr "dmg-assess/pkg/errors"

	"github.com/gin-gonic/gin"
)

// respondError 按错误类别选择 HTTP 状态码
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case apperr.IsValidation(err), errors.Is(err, service.ErrUnknownKind):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrNoSession):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUserDisabled):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, service.ErrJobNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, apperr.ErrDuplicateKey):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrIntegrity):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrExportBusy):
		utils.ErrorResponse(c, http.StatusTooManyRequests, err.Error())
	default:
		// 存储层错误不把驱动信息返回给客户端
		utils.InternalError(c, "服务器内部错误")
	}
}

// parseID 读取路径参数中的正整数ID
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.BadRequest(c, "无效的ID: "+c.Param(name))
		return 0, false
	}
	return uint(id), true
}

// bindJSON 解析请求体，失败时直接写 400
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		utils.BadRequest(c, err.Error())
		return false
	}
	return true
}

// list 统一的列表响应
func list[T any](c *gin.Context, items []T, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	utils.SuccessResponse(c, dto.ListResponse{Items: items, Total: len(items)})
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/service"
	"github.com/glennfor/presence/pkg/response"
)

// LocationHandler 地点模块 HTTP 处理器
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations 获取地点列表
// GET /manager/dashboard/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	locations, err := h.locationSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": locations})
}

// CreateLocation 创建地点
// POST /manager/dashboard/locations
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, fieldErrors(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	location, err := h.locationSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, location)
}

// DeleteLocation 删除地点
// POST /manager/dashboard/locations/:id/delete
// 该操作不可逆，引用此地点的历史考勤会被一并抹除
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id := c.Param("id")
	// 格式不合法的 id 直接拒绝，避免落到数据库层报类型错误
	if uuid.Validate(id) != nil {
		response.BadRequest(c, 10001, "地点ID格式无效")
		return
	}

	if err := h.locationSvc.Delete(c.Request.Context(), id); err != nil {
		// 按 id 删除不存在的记录视为幂等成功
		if errors.Is(err, service.ErrLocationNotFound) {
			response.OK(c, nil)
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{
		"warning": "地点及其全部历史考勤已删除，该操作不可恢复",
	})
}

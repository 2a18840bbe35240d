package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/service"
	"github.com/glennfor/presence/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// ClockAction 打卡
// POST /employee/clock-action
//
// 响应契约与扫码端约定固定：
//   - 成功/业务性失败: {"success": bool, "message": string}
//   - 表单校验失败:    {"success": false, "errors": {字段: [消息...]}}
func (h *AttendanceHandler) ClockAction(c *gin.Context) {
	var req dto.ClockActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"errors":  fieldErrors(err),
		})
		return
	}

	employeeID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.Clock(c.Request.Context(), employeeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLocationCodeNotFound):
			// 未知编码是用户可见的失败，而不是服务端错误
			c.JSON(http.StatusOK, dto.ClockActionResponse{
				Success: false,
				Message: "地点编码不存在，请重新扫码",
			})
		case errors.Is(err, service.ErrOutsideGeofence):
			c.JSON(http.StatusOK, dto.ClockActionResponse{
				Success: false,
				Message: "当前位置不在该地点的打卡范围内",
			})
		case errors.Is(err, service.ErrConcurrentClock):
			c.JSON(http.StatusOK, dto.ClockActionResponse{
				Success: false,
				Message: "打卡请求冲突，请稍后重试",
			})
		default:
			response.InternalError(c)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListAttendances 全量考勤记录
// GET /manager/dashboard/attendances
func (h *AttendanceHandler) ListAttendances(c *gin.Context) {
	atts, err := h.attendanceSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": atts})
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/service"
	"github.com/glennfor/presence/pkg/response"
)

// LeaveHandler 请假模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// CreateLeaveRequest 员工提交请假申请
// POST /employee/leave-requests
func (h *LeaveHandler) CreateLeaveRequest(c *gin.Context) {
	var req dto.CreateLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, fieldErrors(err))
		return
	}

	employeeID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	lr, err := h.leaveSvc.Create(c.Request.Context(), employeeID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, lr)
}

// DeleteLeaveRequest 删除请假申请
// POST /manager/dashboard/leave-requests/:id/delete
// id 不存在时为幂等空操作
func (h *LeaveHandler) DeleteLeaveRequest(c *gin.Context) {
	id := c.Param("id")
	// 格式不合法的 id 直接拒绝，避免落到数据库层报类型错误
	if uuid.Validate(id) != nil {
		response.BadRequest(c, 10001, "请假申请ID格式无效")
		return
	}

	if err := h.leaveSvc.Delete(c.Request.Context(), id); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

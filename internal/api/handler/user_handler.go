package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/service"
	"github.com/glennfor/presence/pkg/response"
)

// UserHandler 员工账号模块 HTTP 处理器
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Me 当前登录用户信息
// GET /auth/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.OK(c, user)
}

// ListEmployees 员工账号列表
// GET /manager/dashboard/employees
func (h *UserHandler) ListEmployees(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"list": users})
}

// CreateEmployee 创建员工账号
// POST /manager/dashboard/employees
func (h *UserHandler) CreateEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, fieldErrors(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		h.handleUserError(c, err)
		return
	}
	response.Created(c, user)
}

// DeleteEmployee 删除员工账号
// POST /manager/dashboard/employees/:id/delete
// 考勤与请假记录随账号级联清除
func (h *UserHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	// 格式不合法的 id 直接拒绝，避免落到数据库层报类型错误
	if uuid.Validate(id) != nil {
		response.BadRequest(c, 10001, "用户ID格式无效")
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		// 按 id 删除不存在的记录视为幂等成功
		if errors.Is(err, service.ErrUserNotFound) {
			response.OK(c, nil)
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// handleUserError 统一处理员工账号模块业务错误
func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 15001, "用户不存在")
	case errors.Is(err, service.ErrEmailTaken):
		response.BadRequest(c, 15002, "该邮箱已被注册")
	default:
		response.InternalError(c)
	}
}

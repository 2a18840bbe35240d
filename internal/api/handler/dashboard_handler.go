package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/glennfor/presence/internal/service"
	"github.com/glennfor/presence/pkg/response"
)

// DashboardHandler 仪表盘模块 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// ManagerDashboard 管理员首页聚合数据
// GET /manager/dashboard
func (h *DashboardHandler) ManagerDashboard(c *gin.Context) {
	data, err := h.dashboardSvc.Manager(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, data)
}

// EmployeeDashboard 员工首页：当日打卡状态
// GET /employee/dashboard
func (h *DashboardHandler) EmployeeDashboard(c *gin.Context) {
	employeeID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	data, err := h.dashboardSvc.Employee(c.Request.Context(), employeeID)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, data)
}

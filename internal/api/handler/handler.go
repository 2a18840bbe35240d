package handler

import (
	"github.com/glennfor/presence/config"
	"github.com/glennfor/presence/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Location   *LocationHandler
	Attendance *AttendanceHandler
	Leave      *LeaveHandler
	Dashboard  *DashboardHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(cfg, svc.Auth),
		User:       NewUserHandler(svc.User),
		Location:   NewLocationHandler(svc.Location),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Leave:      NewLeaveHandler(svc.Leave),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Export:     NewExportHandler(svc.Export),
	}
}

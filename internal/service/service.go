package service

import (
	"go.uber.org/zap"

	"github.com/glennfor/presence/config"
	"github.com/glennfor/presence/internal/repository"
	"github.com/glennfor/presence/pkg/jwt"
	"github.com/glennfor/presence/pkg/qrcode"
	"github.com/glennfor/presence/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	User       UserService
	Location   LocationService
	Attendance AttendanceService
	Leave      LeaveService
	Dashboard  DashboardService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	qrGen qrcode.Generator,
	logger *zap.Logger,
) *Service {
	leaveSvc := NewLeaveService(repo, logger)

	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:       NewUserService(repo, logger),
		Location:   NewLocationService(repo, qrGen, logger),
		Attendance: NewAttendanceService(repo, logger, cfg.Feature.GeofenceEnabled),
		Leave:      leaveSvc,
		Dashboard:  NewDashboardService(repo, leaveSvc, logger),
		Export:     NewExportService(repo, logger),
	}
}

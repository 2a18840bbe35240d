package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/repository"
)

// DashboardService 仪表盘聚合查询接口（只读）
type DashboardService interface {
	// Manager 管理员首页: 员工数 / 地点数 / 今日到岗数 / 待处理请假列表
	Manager(ctx context.Context) (*dto.ManagerDashboardResponse, error)
	// Employee 员工首页: 当日打卡状态
	Employee(ctx context.Context, employeeID string) (*dto.EmployeeDashboardResponse, error)
}

type dashboardService struct {
	repo     *repository.Repository
	leaveSvc LeaveService
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, leaveSvc LeaveService, logger *zap.Logger) DashboardService {
	return &dashboardService{
		repo:     repo,
		leaveSvc: leaveSvc,
		logger:   logger,
		now:      time.Now,
	}
}

// ────────────────────── Manager ──────────────────────

// 四个子查询相互独立，串行执行即可；一致性仅要求“尽量接近同一逻辑快照”
func (s *dashboardService) Manager(ctx context.Context) (*dto.ManagerDashboardResponse, error) {
	employeeCount, err := s.repo.User.CountEmployees(ctx)
	if err != nil {
		s.logger.Error("统计员工数失败", zap.Error(err))
		return nil, err
	}

	locationCount, err := s.repo.Location.Count(ctx)
	if err != nil {
		s.logger.Error("统计地点数失败", zap.Error(err))
		return nil, err
	}

	presentToday, err := s.repo.Attendance.CountByDate(ctx, dateOf(s.now()))
	if err != nil {
		s.logger.Error("统计今日到岗数失败", zap.Error(err))
		return nil, err
	}

	leaveRequests, err := s.leaveSvc.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.ManagerDashboardResponse{
		EmployeeCount:     employeeCount,
		LocationCount:     locationCount,
		PresentTodayCount: presentToday,
		LeaveRequests:     leaveRequests,
	}, nil
}

// ────────────────────── Employee ──────────────────────

func (s *dashboardService) Employee(ctx context.Context, employeeID string) (*dto.EmployeeDashboardResponse, error) {
	att, err := s.repo.Attendance.GetByEmployeeAndDate(ctx, employeeID, dateOf(s.now()))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询当日考勤失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := &dto.EmployeeDashboardResponse{
		ClockState: DeriveClockState(att).DashboardLabel(),
	}
	if att != nil {
		r := toAttendanceResponse(att)
		resp.Attendance = &r
	}
	return resp, nil
}

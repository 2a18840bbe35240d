package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/model"
	"github.com/glennfor/presence/internal/repository"
)

// ── 考勤模块业务错误 ──

var (
	ErrLocationCodeNotFound = errors.New("地点编码不存在")
	ErrOutsideGeofence      = errors.New("当前位置不在该地点的打卡范围内")
	ErrConcurrentClock      = errors.New("打卡请求冲突，请稍后重试")
)

// 打卡结果的用户可见文案
const (
	msgClockedIn   = "上班打卡成功"
	msgClockedOut  = "下班打卡成功"
	msgAlreadyDone = "您今日已完成上下班打卡"
)

// AttendanceService 考勤业务接口
type AttendanceService interface {
	// Clock 执行一次打卡动作：未打卡 → 上班；已上班 → 下班；已完成 → 幂等提示
	Clock(ctx context.Context, employeeID string, req *dto.ClockActionRequest) (*dto.ClockActionResponse, error)
	// List 管理员查看全量考勤记录
	List(ctx context.Context) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo              *repository.Repository
	logger            *zap.Logger
	geofenceEnabled   bool
	validateProximity ProximityValidator
	now               func() time.Time
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger, geofenceEnabled bool) AttendanceService {
	return &attendanceService{
		repo:              repo,
		logger:            logger,
		geofenceEnabled:   geofenceEnabled,
		validateProximity: WithinRadius,
		now:               time.Now,
	}
}

// ────────────────────── Clock ──────────────────────

func (s *attendanceService) Clock(ctx context.Context, employeeID string, req *dto.ClockActionRequest) (*dto.ClockActionResponse, error) {
	// 1. 编码 → 地点
	loc, err := s.repo.Location.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationCodeNotFound
		}
		s.logger.Error("查询地点失败", zap.String("code", req.Code), zap.Error(err))
		return nil, err
	}

	// 2. 地理围栏校验（可插拔步骤，默认关闭）
	if s.geofenceEnabled && !s.validateProximity(loc, *req.Latitude, *req.Longitude) {
		return nil, ErrOutsideGeofence
	}

	// 3. 在单个事务内完成 读取-判定-写入，行锁 + 唯一索引双保险
	now := s.now()
	today := dateOf(now)

	var resp *dto.ClockActionResponse
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		att, err := tx.Attendance.GetForClocking(ctx, employeeID, today)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch DeriveClockState(att) {
		case ClockedOut:
			// 当日终态，幂等返回
			resp = &dto.ClockActionResponse{Success: true, Message: msgAlreadyDone}
			return nil

		case ClockedIn:
			if err := tx.Attendance.SetClockOut(ctx, att.AttendanceID, now); err != nil {
				return err
			}
			resp = &dto.ClockActionResponse{Success: true, Message: msgClockedOut}
			return nil

		default: // NotClockedIn
			newAtt := &model.Attendance{
				LocationID:  loc.LocationID,
				EmployeeID:  employeeID,
				Date:        today,
				ClockInTime: now,
			}
			newAtt.CreatedBy = &employeeID
			newAtt.UpdatedBy = &employeeID

			if err := tx.Attendance.Create(ctx, newAtt); err != nil {
				if repository.IsUniqueViolation(err) {
					// 同一员工同日并发双提交撞上唯一索引
					return ErrConcurrentClock
				}
				return err
			}
			resp = &dto.ClockActionResponse{Success: true, Message: msgClockedIn}
			return nil
		}
	})
	if err != nil {
		if errors.Is(err, ErrConcurrentClock) {
			return nil, err
		}
		s.logger.Error("打卡事务失败",
			zap.String("employee_id", employeeID),
			zap.String("code", req.Code),
			zap.Error(err),
		)
		return nil, err
	}

	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *attendanceService) List(ctx context.Context) ([]dto.AttendanceResponse, error) {
	atts, err := s.repo.Attendance.List(ctx)
	if err != nil {
		s.logger.Error("查询考勤记录失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(atts))
	for i := range atts {
		result = append(result, toAttendanceResponse(&atts[i]))
	}
	return result, nil
}

// ── 内部辅助 ──

// dateOf 截断到服务器本地日历日
// 日期归属按服务器时区判定，跨时区员工存在口径偏差，暂与现状保持一致
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toAttendanceResponse(att *model.Attendance) dto.AttendanceResponse {
	resp := dto.AttendanceResponse{
		ID:          att.AttendanceID,
		EmployeeID:  att.EmployeeID,
		LocationID:  att.LocationID,
		Date:        att.Date.Format("2006-01-02"),
		ClockInTime: att.ClockInTime.Format(time.RFC3339),
	}
	if att.ClockOutTime != nil {
		resp.ClockOutTime = att.ClockOutTime.Format(time.RFC3339)
	}
	if att.Employee != nil {
		resp.EmployeeName = att.Employee.Name
	}
	if att.Location != nil {
		resp.LocationName = att.Location.Name
	}
	return resp
}

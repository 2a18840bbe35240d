package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/model"
	"github.com/glennfor/presence/internal/repository"
)

// LeaveService 请假业务接口
type LeaveService interface {
	Create(ctx context.Context, employeeID string, req *dto.CreateLeaveRequestRequest) (*dto.LeaveRequestResponse, error)
	List(ctx context.Context) ([]dto.LeaveRequestResponse, error)
	// Delete 删除请假申请；id 不存在时为幂等空操作
	Delete(ctx context.Context, id string) error
}

type leaveService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLeaveService 创建 LeaveService 实例
func NewLeaveService(repo *repository.Repository, logger *zap.Logger) LeaveService {
	return &leaveService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *leaveService) Create(ctx context.Context, employeeID string, req *dto.CreateLeaveRequestRequest) (*dto.LeaveRequestResponse, error) {
	// 绑定层已校验格式
	startingDate, _ := time.Parse("2006-01-02", req.StartingDate)

	lr := &model.LeaveRequest{
		EmployeeID:   employeeID,
		DaysOff:      req.DaysOff,
		StartingDate: startingDate,
		Message:      req.Message,
	}
	lr.CreatedBy = &employeeID
	lr.UpdatedBy = &employeeID

	if err := s.repo.LeaveRequest.Create(ctx, lr); err != nil {
		s.logger.Error("创建请假申请失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return toLeaveRequestResponse(lr), nil
}

// ────────────────────── List ──────────────────────

func (s *leaveService) List(ctx context.Context) ([]dto.LeaveRequestResponse, error) {
	requests, err := s.repo.LeaveRequest.List(ctx)
	if err != nil {
		s.logger.Error("列出请假申请失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LeaveRequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *toLeaveRequestResponse(&requests[i]))
	}
	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *leaveService) Delete(ctx context.Context, id string) error {
	if err := s.repo.LeaveRequest.Delete(ctx, id); err != nil {
		s.logger.Error("删除请假申请失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助 ──

func toLeaveRequestResponse(lr *model.LeaveRequest) *dto.LeaveRequestResponse {
	resp := &dto.LeaveRequestResponse{
		ID:           lr.LeaveRequestID,
		EmployeeID:   lr.EmployeeID,
		DaysOff:      lr.DaysOff,
		StartingDate: lr.StartingDate.Format("2006-01-02"),
		Message:      lr.Message,
		CreatedAt:    lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.Employee != nil {
		resp.EmployeeName = lr.Employee.Name
	}
	return resp
}

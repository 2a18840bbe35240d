package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/glennfor/presence/internal/model"
)

// LeaveRequestRepository 请假数据访问接口
type LeaveRequestRepository interface {
	Create(ctx context.Context, lr *model.LeaveRequest) error
	List(ctx context.Context) ([]model.LeaveRequest, error)
	Delete(ctx context.Context, id string) error
}

type leaveRequestRepo struct {
	db *gorm.DB
}

// NewLeaveRequestRepo 创建 LeaveRequestRepository 实例
func NewLeaveRequestRepo(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepo{db: db}
}

func (r *leaveRequestRepo) Create(ctx context.Context, lr *model.LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *leaveRequestRepo) List(ctx context.Context) ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// Delete 删除请假申请；id 不存在时为幂等空操作，不报错
func (r *leaveRequestRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("leave_request_id = ?", id).
		Delete(&model.LeaveRequest{}).Error
}

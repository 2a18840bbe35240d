package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User         UserRepository
	Location     LocationRepository
	Attendance   AttendanceRepository
	LeaveRequest LeaveRequestRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		User:         NewUserRepo(db),
		Location:     NewLocationRepo(db),
		Attendance:   NewAttendanceRepo(db),
		LeaveRequest: NewLeaveRequestRepo(db),
	}
}

// Transaction 在单个数据库事务中执行 fn，fn 收到的是绑定事务连接的聚合
// 打卡的 读取-判定-写入 必须走这里，配合行锁保证同日唯一
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		// 单元测试场景：Mock 聚合无真实连接，直接执行
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/glennfor/presence/internal/model"
)

// AttendanceRepository 考勤数据访问接口
type AttendanceRepository interface {
	Create(ctx context.Context, att *model.Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error)
	// GetForClocking 与 GetByEmployeeAndDate 同义，但加 FOR UPDATE 行锁，
	// 仅允许在事务内调用
	GetForClocking(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time) error
	List(ctx context.Context) ([]model.Attendance, error)
	CountByDate(ctx context.Context, date time.Time) (int64, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).Create(att).Error
}

func (r *attendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepo) GetForClocking(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

// SetClockOut 仅写 clock_out_time 一列，clock_in_time 与 date 保持不变
func (r *attendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("attendance_id = ?", id).
		Update("clock_out_time", clockOut).Error
}

func (r *attendanceRepo) List(ctx context.Context) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Location").
		Order("date DESC, clock_in_time DESC").
		Find(&atts).Error
	return atts, err
}

func (r *attendanceRepo) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

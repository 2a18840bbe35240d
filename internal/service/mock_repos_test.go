package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/glennfor/presence/internal/model"
	"github.com/glennfor/presence/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) CountEmployees(_ context.Context) (int64, error) {
	var count int64
	for _, u := range m.users {
		if !u.IsManager {
			count++
		}
	}
	return count, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	delete(m.users, id)
	return nil
}

// ── Mock LocationRepository ──

type mockLocationRepo struct {
	locations map[string]*model.Location
	// attendances 用于在 Delete 时模拟数据库的外键级联
	attendances *mockAttendanceRepo
}

func newMockLocationRepo() *mockLocationRepo {
	return &mockLocationRepo{locations: make(map[string]*model.Location)}
}

func (m *mockLocationRepo) Create(_ context.Context, loc *model.Location) error {
	if loc.LocationID == "" {
		loc.LocationID = fmt.Sprintf("loc-%d", len(m.locations)+1)
	}
	m.locations[loc.LocationID] = loc
	return nil
}

func (m *mockLocationRepo) GetByID(_ context.Context, id string) (*model.Location, error) {
	if l, ok := m.locations[id]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) GetByCode(_ context.Context, code string) (*model.Location, error) {
	for _, l := range m.locations {
		if l.Code == code {
			return l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLocationRepo) List(_ context.Context) ([]model.Location, error) {
	var result []model.Location
	for _, l := range m.locations {
		result = append(result, *l)
	}
	return result, nil
}

func (m *mockLocationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.locations)), nil
}

func (m *mockLocationRepo) Delete(_ context.Context, id string) error {
	delete(m.locations, id)
	// 模拟外键级联：抹除引用该地点的考勤
	if m.attendances != nil {
		for key, att := range m.attendances.records {
			if att.LocationID == id {
				delete(m.attendances.records, key)
			}
		}
	}
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance // key: employeeID|date
	nextID  int
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{records: make(map[string]*model.Attendance)}
}

func attKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (m *mockAttendanceRepo) Create(_ context.Context, att *model.Attendance) error {
	key := attKey(att.EmployeeID, att.Date)
	if _, exists := m.records[key]; exists {
		// 与真实唯一索引行为一致
		return &pgconn.PgError{Code: "23505"}
	}
	if att.AttendanceID == "" {
		m.nextID++
		att.AttendanceID = fmt.Sprintf("att-%d", m.nextID)
	}
	m.records[key] = att
	return nil
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	if att, ok := m.records[attKey(employeeID, date)]; ok {
		return att, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) GetForClocking(ctx context.Context, employeeID string, date time.Time) (*model.Attendance, error) {
	return m.GetByEmployeeAndDate(ctx, employeeID, date)
}

func (m *mockAttendanceRepo) SetClockOut(_ context.Context, id string, clockOut time.Time) error {
	for _, att := range m.records {
		if att.AttendanceID == id {
			t := clockOut
			att.ClockOutTime = &t
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, att := range m.records {
		result = append(result, *att)
	}
	return result, nil
}

func (m *mockAttendanceRepo) CountByDate(_ context.Context, date time.Time) (int64, error) {
	var count int64
	day := date.Format("2006-01-02")
	for _, att := range m.records {
		if att.Date.Format("2006-01-02") == day {
			count++
		}
	}
	return count, nil
}

// ── Mock LeaveRequestRepository ──

type mockLeaveRequestRepo struct {
	requests map[string]*model.LeaveRequest
	nextID   int
}

func newMockLeaveRequestRepo() *mockLeaveRequestRepo {
	return &mockLeaveRequestRepo{requests: make(map[string]*model.LeaveRequest)}
}

func (m *mockLeaveRequestRepo) Create(_ context.Context, lr *model.LeaveRequest) error {
	if lr.LeaveRequestID == "" {
		m.nextID++
		lr.LeaveRequestID = fmt.Sprintf("lr-%d", m.nextID)
	}
	m.requests[lr.LeaveRequestID] = lr
	return nil
}

func (m *mockLeaveRequestRepo) List(_ context.Context) ([]model.LeaveRequest, error) {
	var result []model.LeaveRequest
	for _, lr := range m.requests {
		result = append(result, *lr)
	}
	return result, nil
}

func (m *mockLeaveRequestRepo) Delete(_ context.Context, id string) error {
	// 不存在的 id 为幂等空操作
	delete(m.requests, id)
	return nil
}

// ── Mock QR Generator ──

type mockQRGenerator struct {
	generated []string
	err       error
}

func (m *mockQRGenerator) Generate(code string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.generated = append(m.generated, code)
	return "http://localhost:8080/static/qr/" + code + ".png", nil
}

// f64 构造坐标字段用的指针
func f64(v float64) *float64 { return &v }

// ── 聚合构造 ──

type mockRepos struct {
	user         *mockUserRepo
	location     *mockLocationRepo
	attendance   *mockAttendanceRepo
	leaveRequest *mockLeaveRequestRepo
}

// newMockRepository 返回绑定 Mock 实现的聚合；db 为空，Transaction 直接执行回调
func newMockRepository() (*repository.Repository, *mockRepos) {
	mocks := &mockRepos{
		user:         newMockUserRepo(),
		location:     newMockLocationRepo(),
		attendance:   newMockAttendanceRepo(),
		leaveRequest: newMockLeaveRequestRepo(),
	}
	mocks.location.attendances = mocks.attendance

	repo := &repository.Repository{
		User:         mocks.user,
		Location:     mocks.location,
		Attendance:   mocks.attendance,
		LeaveRequest: mocks.leaveRequest,
	}
	return repo, mocks
}

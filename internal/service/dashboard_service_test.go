package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/glennfor/presence/internal/model"
)

// ── 测试辅助 ──

func setupTestDashboardService() (*dashboardService, *mockRepos) {
	repo, mocks := newMockRepository()
	leaveSvc := NewLeaveService(repo, zap.NewNop())
	svc := NewDashboardService(repo, leaveSvc, zap.NewNop()).(*dashboardService)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)
	}
	return svc, mocks
}

// ── Manager 测试 ──

func TestDashboardService_Manager_Counts(t *testing.T) {
	svc, mocks := setupTestDashboardService()

	// 两名员工 + 一名管理员：员工数只统计非管理员
	mocks.user.users["emp-001"] = &model.User{UserID: "emp-001", Email: "a@example.com", Name: "甲"}
	mocks.user.users["emp-002"] = &model.User{UserID: "emp-002", Email: "b@example.com", Name: "乙"}
	mocks.user.users["mgr-001"] = &model.User{UserID: "mgr-001", Email: "m@example.com", Name: "经理", IsManager: true}

	mocks.location.locations["loc-001"] = &model.Location{LocationID: "loc-001", Name: "总部"}

	// 今日一条、昨日一条：今日到岗数只算当日
	mocks.attendance.records["emp-001|2026-03-02"] = &model.Attendance{
		AttendanceID: "att-001", EmployeeID: "emp-001", LocationID: "loc-001",
		Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local),
	}
	mocks.attendance.records["emp-002|2026-03-01"] = &model.Attendance{
		AttendanceID: "att-002", EmployeeID: "emp-002", LocationID: "loc-001",
		Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
	}

	mocks.leaveRequest.requests["lr-001"] = &model.LeaveRequest{
		LeaveRequestID: "lr-001", EmployeeID: "emp-002", DaysOff: 2,
		StartingDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local),
	}

	result, err := svc.Manager(context.Background())
	if err != nil {
		t.Fatalf("Manager 应成功: %v", err)
	}
	if result.EmployeeCount != 2 {
		t.Errorf("期望EmployeeCount=2，实际=%d", result.EmployeeCount)
	}
	if result.LocationCount != 1 {
		t.Errorf("期望LocationCount=1，实际=%d", result.LocationCount)
	}
	if result.PresentTodayCount != 1 {
		t.Errorf("期望PresentTodayCount=1，实际=%d", result.PresentTodayCount)
	}
	if len(result.LeaveRequests) != 1 {
		t.Errorf("期望 1 条请假申请，实际=%d", len(result.LeaveRequests))
	}
}

func TestDashboardService_Manager_EmptySystem(t *testing.T) {
	svc, _ := setupTestDashboardService()

	result, err := svc.Manager(context.Background())
	if err != nil {
		t.Fatalf("空系统下 Manager 应成功: %v", err)
	}
	if result.EmployeeCount != 0 || result.LocationCount != 0 || result.PresentTodayCount != 0 {
		t.Errorf("空系统下各计数应为 0，实际=%+v", result)
	}
	if len(result.LeaveRequests) != 0 {
		t.Errorf("空系统下请假列表应为空，实际=%d", len(result.LeaveRequests))
	}
}

// ── Employee 测试 ──

func TestDashboardService_Employee_NotClockedIn(t *testing.T) {
	svc, _ := setupTestDashboardService()

	result, err := svc.Employee(context.Background(), "emp-001")
	if err != nil {
		t.Fatalf("Employee 应成功: %v", err)
	}
	if result.ClockState != "can_clock_in" {
		t.Errorf("期望ClockState=can_clock_in，实际=%s", result.ClockState)
	}
	if result.Attendance != nil {
		t.Error("无当日记录时 Attendance 应为空")
	}
}

func TestDashboardService_Employee_ClockedIn(t *testing.T) {
	svc, mocks := setupTestDashboardService()
	mocks.attendance.records["emp-001|2026-03-02"] = &model.Attendance{
		AttendanceID: "att-001", EmployeeID: "emp-001", LocationID: "loc-001",
		Date:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local),
		ClockInTime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
	}

	result, err := svc.Employee(context.Background(), "emp-001")
	if err != nil {
		t.Fatalf("Employee 应成功: %v", err)
	}
	if result.ClockState != "can_clock_out" {
		t.Errorf("期望ClockState=can_clock_out，实际=%s", result.ClockState)
	}
	if result.Attendance == nil {
		t.Fatal("有当日记录时 Attendance 应存在")
	}
	if result.Attendance.ClockOutTime != "" {
		t.Error("未下班时 ClockOutTime 应为空")
	}
}

func TestDashboardService_Employee_DoneForToday(t *testing.T) {
	svc, mocks := setupTestDashboardService()
	clockOut := time.Date(2026, 3, 2, 17, 0, 0, 0, time.Local)
	mocks.attendance.records["emp-001|2026-03-02"] = &model.Attendance{
		AttendanceID: "att-001", EmployeeID: "emp-001", LocationID: "loc-001",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local),
		ClockInTime:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
		ClockOutTime: &clockOut,
	}

	result, err := svc.Employee(context.Background(), "emp-001")
	if err != nil {
		t.Fatalf("Employee 应成功: %v", err)
	}
	if result.ClockState != "done_for_today" {
		t.Errorf("期望ClockState=done_for_today，实际=%s", result.ClockState)
	}
}

func TestDashboardService_Employee_YesterdayRecordIgnored(t *testing.T) {
	svc, mocks := setupTestDashboardService()
	mocks.attendance.records["emp-001|2026-03-01"] = &model.Attendance{
		AttendanceID: "att-001", EmployeeID: "emp-001", LocationID: "loc-001",
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
		ClockInTime: time.Date(2026, 3, 1, 9, 0, 0, 0, time.Local),
	}

	result, err := svc.Employee(context.Background(), "emp-001")
	if err != nil {
		t.Fatalf("Employee 应成功: %v", err)
	}
	if result.ClockState != "can_clock_in" {
		t.Errorf("昨日记录不影响今日状态，期望can_clock_in，实际=%s", result.ClockState)
	}
}

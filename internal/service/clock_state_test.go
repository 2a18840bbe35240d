package service

import (
	"testing"
	"time"

	"github.com/glennfor/presence/internal/model"
)

// ── DeriveClockState 测试 ──

func TestDeriveClockState_NilRecord(t *testing.T) {
	if state := DeriveClockState(nil); state != NotClockedIn {
		t.Errorf("期望 NotClockedIn，实际=%v", state)
	}
}

func TestDeriveClockState_ClockedIn(t *testing.T) {
	att := &model.Attendance{
		AttendanceID: "att-001",
		ClockInTime:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
	}
	if state := DeriveClockState(att); state != ClockedIn {
		t.Errorf("期望 ClockedIn，实际=%v", state)
	}
}

func TestDeriveClockState_ClockedOut(t *testing.T) {
	clockOut := time.Date(2026, 3, 2, 17, 0, 0, 0, time.Local)
	att := &model.Attendance{
		AttendanceID: "att-001",
		ClockInTime:  time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local),
		ClockOutTime: &clockOut,
	}
	if state := DeriveClockState(att); state != ClockedOut {
		t.Errorf("期望 ClockedOut，实际=%v", state)
	}
}

// ── DashboardLabel 测试 ──

func TestClockState_DashboardLabel(t *testing.T) {
	cases := []struct {
		state ClockState
		want  string
	}{
		{NotClockedIn, "can_clock_in"},
		{ClockedIn, "can_clock_out"},
		{ClockedOut, "done_for_today"},
	}
	for _, tc := range cases {
		if got := tc.state.DashboardLabel(); got != tc.want {
			t.Errorf("状态 %v: 期望 %s，实际=%s", tc.state, tc.want, got)
		}
	}
}

package service

import "github.com/glennfor/presence/internal/model"

// ClockState 某员工在某个日历日内的打卡状态
// 状态只会单向推进: NotClockedIn → ClockedIn → ClockedOut，
// ClockedOut 为当日终态，不再允许任何转移
type ClockState int

const (
	// NotClockedIn 当日无考勤记录
	NotClockedIn ClockState = iota
	// ClockedIn 已有记录且 clock_out_time 为空
	ClockedIn
	// ClockedOut 已有记录且 clock_out_time 已设置
	ClockedOut
)

// DeriveClockState 从当日考勤记录（可为 nil）推导打卡状态
// 打卡操作与员工首页共用此唯一推导入口，避免两处状态口径分叉
func DeriveClockState(att *model.Attendance) ClockState {
	if att == nil {
		return NotClockedIn
	}
	if att.ClockOutTime != nil {
		return ClockedOut
	}
	return ClockedIn
}

// DashboardLabel 首页展示用的状态标识
func (s ClockState) DashboardLabel() string {
	switch s {
	case ClockedIn:
		return "can_clock_out"
	case ClockedOut:
		return "done_for_today"
	default:
		return "can_clock_in"
	}
}

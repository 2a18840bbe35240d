package dto

// ── 仪表盘模块 DTO ──

// ManagerDashboardResponse 管理员首页聚合响应
type ManagerDashboardResponse struct {
	EmployeeCount     int64                  `json:"employee_count"`      // 非管理员账号数
	LocationCount     int64                  `json:"location_count"`
	PresentTodayCount int64                  `json:"present_today_count"` // 今日已打卡人数
	LeaveRequests     []LeaveRequestResponse `json:"leave_requests"`
}

// EmployeeDashboardResponse 员工首页响应
// ClockState 取值: can_clock_in | can_clock_out | done_for_today
type EmployeeDashboardResponse struct {
	ClockState string              `json:"clock_state"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"` // 今日记录（存在时）
}

package dto

// ── 考勤模块 DTO ──

// ClockActionRequest 打卡请求
// latitude/longitude 独立绑定，二者缺一不可；
// 用指针区分“未提交”与合法坐标 0（赤道/本初子午线）
type ClockActionRequest struct {
	Code      string   `json:"code"      binding:"required,max=128"`
	Latitude  *float64 `json:"latitude"  binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

// ClockActionResponse 打卡响应 — 对外契约固定为 {success, message}
type ClockActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name,omitempty"`
	Date         string `json:"date"`
	ClockInTime  string `json:"clock_in_time"`
	ClockOutTime string `json:"clock_out_time,omitempty"`
}

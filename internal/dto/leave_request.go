package dto

// ── 请假模块 DTO ──

// CreateLeaveRequestRequest 员工提交请假申请
type CreateLeaveRequestRequest struct {
	DaysOff      int    `json:"days_off"      binding:"required,min=1,max=365"`
	StartingDate string `json:"starting_date" binding:"required,datetime=2006-01-02"`
	Message      string `json:"message"       binding:"omitempty,max=2048"`
}

// LeaveRequestResponse 请假申请响应
type LeaveRequestResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	DaysOff      int    `json:"days_off"`
	StartingDate string `json:"starting_date"`
	Message      string `json:"message,omitempty"`
	CreatedAt    string `json:"created_at"`
}

package model

import "time"

// LeaveRequest 请假申请表 — 对应 leave_requests
// 员工提交后不可修改，仅管理员可删除；无审批流
type LeaveRequest struct {
	LeaveRequestID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"leave_request_id"`
	EmployeeID     string    `gorm:"type:uuid;not null;index"                       json:"employee_id"`
	DaysOff        int       `gorm:"not null"                                       json:"days_off"`
	StartingDate   time.Time `gorm:"type:date;not null"                             json:"starting_date"`
	Message        string    `gorm:"type:varchar(2048)"                             json:"message,omitempty"`
	BaseModel

	// 关联
	Employee *User `gorm:"foreignKey:EmployeeID;references:UserID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }

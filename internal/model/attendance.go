package model

import "time"

// Attendance 考勤记录表 — 对应 attendances
// 每人每天至多一条记录（uq_attendances_employee_date 唯一约束兜底）；
// clock_in_time 创建后不可变，clock_out_time 仅被设置一次
type Attendance struct {
	AttendanceID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"        json:"attendance_id"`
	LocationID   string     `gorm:"type:uuid;not null;index"                              json:"location_id"`
	EmployeeID   string     `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_employee_date" json:"employee_id"`
	Date         time.Time  `gorm:"type:date;not null;uniqueIndex:uq_attendances_employee_date" json:"date"`
	ClockInTime  time.Time  `gorm:"not null" json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	BaseModel

	// 关联
	Location *Location `gorm:"foreignKey:LocationID;references:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
	Employee *User     `gorm:"foreignKey:EmployeeID;references:UserID;constraint:OnDelete:CASCADE"     json:"employee,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }

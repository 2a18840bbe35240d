package model

import "time"

// User 用户表 — 对应 users
// 员工与管理员共用同一张表，仅以 is_manager 区分角色
type User struct {
	UserID       string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null"                     json:"-"`
	Name         string     `gorm:"type:varchar(100);not null"                     json:"name"`
	DateOfBirth  *time.Time `gorm:"type:date"                                      json:"date_of_birth,omitempty"`
	Role         string     `gorm:"type:varchar(100)"                              json:"role"` // 岗位名称，非权限角色
	StartDate    *time.Time `gorm:"type:date"                                      json:"start_date,omitempty"`
	Address      string     `gorm:"type:varchar(255)"                              json:"address,omitempty"`
	Telephone    string     `gorm:"type:varchar(32)"                               json:"telephone,omitempty"`
	IsManager    bool       `gorm:"not null;default:false"                         json:"is_manager"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

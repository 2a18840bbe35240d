package dto

// ── 员工账号模块 DTO ──

// CreateEmployeeRequest 管理员创建员工账号请求
type CreateEmployeeRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	Password    string `json:"password"     binding:"required,min=6,max=72"`
	CPassword   string `json:"cpassword"    binding:"required,eqfield=Password"` // 确认密码
	Name        string `json:"name"         binding:"required,min=2,max=100"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Role        string `json:"role"         binding:"omitempty,max=100"`
	StartDate   string `json:"start_date"   binding:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address"      binding:"omitempty,max=255"`
	Telephone   string `json:"telephone"    binding:"omitempty,max=32"`
	IsManager   bool   `json:"is_manager"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Role        string `json:"role,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	Address     string `json:"address,omitempty"`
	Telephone   string `json:"telephone,omitempty"`
	IsManager   bool   `json:"is_manager"`
	CreatedAt   string `json:"created_at,omitempty"`
}

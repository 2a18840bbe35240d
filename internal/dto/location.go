package dto

// ── 地点模块 DTO ──

// CreateLocationRequest 创建地点请求
// code 与 qr_code_url 均由系统生成，不接受外部输入；
// 坐标用指针，保证 0 值（赤道/本初子午线）可通过 required 校验
type CreateLocationRequest struct {
	Name      string   `json:"name"      binding:"required,min=2,max=128"`
	Latitude  *float64 `json:"latitude"  binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
	Radius    int      `json:"radius"    binding:"omitempty,min=1,max=100000"`
}

// LocationResponse 地点信息响应
type LocationResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    int     `json:"radius"`
	QRCodeURL string  `json:"qr_code_url"`
	CreatedAt string  `json:"created_at"`
}

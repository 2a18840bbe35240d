package model

// Location 打卡地点表 — 对应 locations
// code 由系统生成，唯一且创建后不可变，二维码载荷即 code 本身
type Location struct {
	LocationID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"location_id"`
	Name       string  `gorm:"type:varchar(128);not null"                     json:"name"`
	Code       string  `gorm:"type:varchar(128);not null;uniqueIndex"         json:"code"`
	Latitude   float64 `gorm:"type:decimal(8,4);not null"                     json:"latitude"`
	Longitude  float64 `gorm:"type:decimal(8,4);not null"                     json:"longitude"`
	Radius     int     `gorm:"not null;default:100"                           json:"radius"` // 地理围栏半径（米）
	QRCodeURL  string  `gorm:"column:qr_code_url;type:text;not null"          json:"qr_code_url"`
	BaseModel
}

// TableName 指定表名
func (Location) TableName() string { return "locations" }

package service

import (
	"math"

	"github.com/glennfor/presence/internal/model"
)

const earthRadiusMeters = 6371000

// HaversineDistanceMeters 计算两个经纬度坐标间的球面距离（米）
func HaversineDistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	latRad1 := lat1 * math.Pi / 180
	lonRad1 := lon1 * math.Pi / 180
	latRad2 := lat2 * math.Pi / 180
	lonRad2 := lon2 * math.Pi / 180

	diffLat := latRad2 - latRad1
	diffLon := lonRad2 - lonRad1

	a := math.Sin(diffLat/2)*math.Sin(diffLat/2) +
		math.Cos(latRad1)*math.Cos(latRad2)*
			math.Sin(diffLon/2)*math.Sin(diffLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// ProximityValidator 地理围栏校验步骤
// 打卡流程中这是一个具名的可插拔环节，由 feature.geofence_enabled 决定是否启用
type ProximityValidator func(loc *model.Location, lat, lon float64) bool

// WithinRadius 默认实现：提交坐标与地点中心的距离不超过其半径
func WithinRadius(loc *model.Location, lat, lon float64) bool {
	dist := HaversineDistanceMeters(loc.Latitude, loc.Longitude, lat, lon)
	return dist <= float64(loc.Radius)
}

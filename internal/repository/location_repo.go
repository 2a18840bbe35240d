package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/glennfor/presence/internal/model"
)

// LocationRepository 地点数据访问接口
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	GetByID(ctx context.Context, id string) (*model.Location, error)
	GetByCode(ctx context.Context, code string) (*model.Location, error)
	List(ctx context.Context) ([]model.Location, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo 创建 LocationRepository 实例
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *locationRepo) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Where("location_id = ?", id).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// GetByCode 按编码查找地点，打卡入口使用
func (r *locationRepo) GetByCode(ctx context.Context, code string) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepo) List(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Location{}).Count(&count).Error
	return count, err
}

// Delete 硬删除地点，引用该地点的考勤记录由外键级联清除
// 不可恢复，调用方需提示历史考勤同时被抹除
func (r *locationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("location_id = ?", id).
		Delete(&model.Location{}).Error
}

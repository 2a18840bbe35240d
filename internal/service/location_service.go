package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/glennfor/presence/internal/dto"
	"github.com/glennfor/presence/internal/model"
	"github.com/glennfor/presence/internal/repository"
	"github.com/glennfor/presence/pkg/qrcode"
)

// ── 地点模块业务错误 ──

var (
	ErrLocationNotFound = errors.New("地点不存在")
)

const defaultRadiusMeters = 100

// LocationService 地点业务接口
type LocationService interface {
	// Create 校验输入 → 生成唯一编码 → 生成二维码 → 持久化
	Create(ctx context.Context, req *dto.CreateLocationRequest, callerID string) (*dto.LocationResponse, error)
	List(ctx context.Context) ([]dto.LocationResponse, error)
	// Delete 硬删除地点，并级联抹除该地点全部历史考勤
	Delete(ctx context.Context, id string) error
}

type locationService struct {
	repo   *repository.Repository
	qrGen  qrcode.Generator
	logger *zap.Logger
}

// NewLocationService 创建 LocationService 实例
func NewLocationService(repo *repository.Repository, qrGen qrcode.Generator, logger *zap.Logger) LocationService {
	return &locationService{repo: repo, qrGen: qrGen, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *locationService) Create(ctx context.Context, req *dto.CreateLocationRequest, callerID string) (*dto.LocationResponse, error) {
	// 编码为随机 128 位标识，构造上免碰撞，创建后不可变
	code := uuid.New().String()

	qrURL, err := s.qrGen.Generate(code)
	if err != nil {
		s.logger.Error("生成地点二维码失败", zap.String("code", code), zap.Error(err))
		return nil, err
	}

	radius := req.Radius
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	loc := &model.Location{
		Name:      req.Name,
		Code:      code,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Radius:    radius,
		QRCodeURL: qrURL,
	}
	loc.CreatedBy = &callerID
	loc.UpdatedBy = &callerID

	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("创建地点失败", zap.Error(err))
		return nil, err
	}

	return s.toLocationResponse(loc), nil
}

// ────────────────────── List ──────────────────────

func (s *locationService) List(ctx context.Context) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx)
	if err != nil {
		s.logger.Error("列出地点失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		result = append(result, *s.toLocationResponse(&locations[i]))
	}
	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *locationService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Location.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLocationNotFound
		}
		s.logger.Error("查询地点失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Location.Delete(ctx, id); err != nil {
		s.logger.Error("删除地点失败", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("地点已删除，历史考勤随之级联抹除", zap.String("id", id))
	return nil
}

// ── 内部辅助方法 ──

func (s *locationService) toLocationResponse(loc *model.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        loc.LocationID,
		Name:      loc.Name,
		Code:      loc.Code,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Radius:    loc.Radius,
		QRCodeURL: loc.QRCodeURL,
		CreatedAt: loc.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

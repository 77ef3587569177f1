package service

import (
	"context"

	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/repository"
	"github.com/jmkcontents/jmkcontents/pkg/cache"
	"github.com/jmkcontents/jmkcontents/pkg/logger"
)

// adminListLimit caps the admin list pages, newest first.
const adminListLimit = 50

// AppService defines the business logic for apps
type AppService interface {
	ListPublished(ctx context.Context) (*domain.AppListResponse, error)
	GetByBundleID(ctx context.Context, bundleID string) (*domain.App, error)
	ListAll(ctx context.Context) (*domain.AppListResponse, error)
	Create(ctx context.Context, req *domain.CreateAppRequest) error
	Update(ctx context.Context, bundleID string, req *domain.UpdateAppRequest) error
	Delete(ctx context.Context, bundleID string) error
}

type appService struct {
	repo  repository.AppRepository
	cache cache.Service
}

// NewAppService creates a new AppService
func NewAppService(repo repository.AppRepository, cache cache.Service) AppService {
	return &appService{repo: repo, cache: cache}
}

// ListPublished serves the public app list through the 1h catalog cache.
func (s *appService) ListPublished(ctx context.Context) (*domain.AppListResponse, error) {
	if s.cache != nil {
		var cached domain.AppListResponse
		if err := s.cache.GetPublishedApps(ctx, &cached); err == nil {
			return &cached, nil
		}
	}

	apps, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	resp := &domain.AppListResponse{Apps: apps, Total: len(apps)}

	if s.cache != nil {
		if err := s.cache.SetPublishedApps(ctx, resp); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("app list cache write failed")
		}
	}
	return resp, nil
}

func (s *appService) GetByBundleID(ctx context.Context, bundleID string) (*domain.App, error) {
	return s.repo.GetByBundleID(ctx, bundleID)
}

func (s *appService) ListAll(ctx context.Context) (*domain.AppListResponse, error) {
	apps, err := s.repo.List(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}
	return &domain.AppListResponse{Apps: apps, Total: len(apps)}, nil
}

// Create persists a new app. 관리자 입력이므로 필드 검증은 하지 않는다.
func (s *appService) Create(ctx context.Context, req *domain.CreateAppRequest) error {
	app := &domain.App{
		BundleID:        req.BundleID,
		AppName:         req.AppName,
		AppNameFull:     req.AppNameFull,
		Description:     req.Description,
		DescriptionFull: req.DescriptionFull,
		AppStoreURL:     req.AppStoreURL,
		IconURL:         req.IconURL,
		AppCategory:     req.AppCategory,
		Categories:      req.Categories,
		Status:          req.Status,
		IsFeatured:      req.IsFeatured,
		Rating:          req.Rating,
		DownloadCount:   req.DownloadCount,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *appService) Update(ctx context.Context, bundleID string, req *domain.UpdateAppRequest) error {
	if err := s.repo.Update(ctx, bundleID, req); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *appService) Delete(ctx context.Context, bundleID string) error {
	if err := s.repo.Delete(ctx, bundleID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *appService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateApps(ctx); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("app list cache invalidation failed")
	}
}

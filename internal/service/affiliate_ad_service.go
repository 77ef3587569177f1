package service

import (
	"context"
	"errors"
	"time"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/repository"
)

// AffiliateAdService defines the business logic for affiliate ads.
// 광고 내용은 관리자 입력이므로 필드 검증을 하지 않는다.
type AffiliateAdService interface {
	ListAll(ctx context.Context) (*domain.AffiliateAdListResponse, error)
	ListActive(ctx context.Context, appID string) (*domain.AffiliateAdListResponse, error)
	Create(ctx context.Context, req *domain.CreateAffiliateAdRequest) (string, error)
	Update(ctx context.Context, id string, req *domain.UpdateAffiliateAdRequest) error
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	TrackImpression(ctx context.Context, id string) error
	TrackClick(ctx context.Context, id string) error
}

type affiliateAdService struct {
	repo repository.AffiliateAdRepository
}

// NewAffiliateAdService creates a new AffiliateAdService
func NewAffiliateAdService(repo repository.AffiliateAdRepository) AffiliateAdService {
	return &affiliateAdService{repo: repo}
}

func (s *affiliateAdService) ListAll(ctx context.Context) (*domain.AffiliateAdListResponse, error) {
	ads, err := s.repo.List(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}
	return &domain.AffiliateAdListResponse{Ads: ads, Total: len(ads)}, nil
}

func (s *affiliateAdService) ListActive(ctx context.Context, appID string) (*domain.AffiliateAdListResponse, error) {
	ads, err := s.repo.ListActive(ctx, appID, time.Now())
	if err != nil {
		return nil, err
	}
	return &domain.AffiliateAdListResponse{Ads: ads, Total: len(ads)}, nil
}

func (s *affiliateAdService) Create(ctx context.Context, req *domain.CreateAffiliateAdRequest) (string, error) {
	ad := &domain.AffiliateAd{
		Type:            req.Type,
		Title:           req.Title,
		ImageURL:        req.ImageURL,
		LinkURL:         req.LinkURL,
		IsActive:        req.IsActive,
		Priority:        req.Priority,
		AppIDs:          req.AppIDs,
		ExperimentGroup: req.ExperimentGroup,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}
	return s.repo.Create(ctx, ad)
}

func (s *affiliateAdService) Update(ctx context.Context, id string, req *domain.UpdateAffiliateAdRequest) error {
	return s.repo.Update(ctx, id, req)
}

func (s *affiliateAdService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Toggle flips isActive, failing with a localized message when the ad
// does not exist.
func (s *affiliateAdService) Toggle(ctx context.Context, id string) error {
	err := s.repo.Toggle(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return common.ErrAdNotFound
	}
	return err
}

func (s *affiliateAdService) TrackImpression(ctx context.Context, id string) error {
	err := s.repo.IncrementImpressions(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return common.ErrAdNotFound
	}
	return err
}

func (s *affiliateAdService) TrackClick(ctx context.Context, id string) error {
	err := s.repo.IncrementClicks(ctx, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return common.ErrAdNotFound
	}
	return err
}

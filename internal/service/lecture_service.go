package service

import (
	"context"

	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/repository"
	"github.com/jmkcontents/jmkcontents/pkg/cache"
	"github.com/jmkcontents/jmkcontents/pkg/logger"
)

// LectureService defines the business logic for lectures
type LectureService interface {
	ListByApp(ctx context.Context, appID string) (*domain.LectureListResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Lecture, error)
	ListAll(ctx context.Context) (*domain.LectureListResponse, error)
	Create(ctx context.Context, req *domain.CreateLectureRequest) (string, error)
	Update(ctx context.Context, id string, req *domain.UpdateLectureRequest) error
	Delete(ctx context.Context, id string) error
}

type lectureService struct {
	repo  repository.LectureRepository
	cache cache.Service
}

// NewLectureService creates a new LectureService
func NewLectureService(repo repository.LectureRepository, cache cache.Service) LectureService {
	return &lectureService{repo: repo, cache: cache}
}

// ListByApp serves the public per-app lecture list through the catalog cache.
func (s *lectureService) ListByApp(ctx context.Context, appID string) (*domain.LectureListResponse, error) {
	if s.cache != nil {
		var cached domain.LectureListResponse
		if err := s.cache.GetAppLectures(ctx, appID, &cached); err == nil {
			return &cached, nil
		}
	}

	lectures, err := s.repo.ListByApp(ctx, appID)
	if err != nil {
		return nil, err
	}
	resp := &domain.LectureListResponse{Lectures: lectures, Total: len(lectures)}

	if s.cache != nil {
		if err := s.cache.SetAppLectures(ctx, appID, resp); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("lecture cache write failed")
		}
	}
	return resp, nil
}

func (s *lectureService) GetByID(ctx context.Context, id string) (*domain.Lecture, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *lectureService) ListAll(ctx context.Context) (*domain.LectureListResponse, error) {
	lectures, err := s.repo.List(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}
	return &domain.LectureListResponse{Lectures: lectures, Total: len(lectures)}, nil
}

// Create persists a new lecture. 관리자 입력이므로 필드 검증은 하지 않는다.
func (s *lectureService) Create(ctx context.Context, req *domain.CreateLectureRequest) (string, error) {
	lecture := &domain.Lecture{
		AppID:           req.AppID,
		Category:        req.Category,
		Title:           req.Title,
		Description:     req.Description,
		AudioURL:        req.AudioURL,
		YoutubeVideoID:  req.YoutubeVideoID,
		DurationSeconds: req.DurationSeconds,
		Transcript:      req.Transcript,
	}
	id, err := s.repo.Create(ctx, lecture)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx, req.AppID)
	return id, nil
}

func (s *lectureService) Update(ctx context.Context, id string, req *domain.UpdateLectureRequest) error {
	appID := s.ownerApp(ctx, id)
	if err := s.repo.Update(ctx, id, req); err != nil {
		return err
	}
	s.invalidate(ctx, appID)
	return nil
}

func (s *lectureService) Delete(ctx context.Context, id string) error {
	appID := s.ownerApp(ctx, id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, appID)
	return nil
}

func (s *lectureService) ownerApp(ctx context.Context, id string) string {
	lecture, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return lecture.AppID
}

func (s *lectureService) invalidate(ctx context.Context, appID string) {
	if s.cache == nil || appID == "" {
		return
	}
	if err := s.cache.InvalidateAppLectures(ctx, appID); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("lecture cache invalidation failed")
	}
}

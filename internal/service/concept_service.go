package service

import (
	"context"

	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/repository"
	"github.com/jmkcontents/jmkcontents/pkg/cache"
	"github.com/jmkcontents/jmkcontents/pkg/logger"
)

// ConceptService defines the business logic for study concepts
type ConceptService interface {
	ListByApp(ctx context.Context, appID string) (*domain.ConceptListResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Concept, error)
	ListAll(ctx context.Context) (*domain.ConceptListResponse, error)
	Create(ctx context.Context, req *domain.CreateConceptRequest) (string, error)
	Update(ctx context.Context, id string, req *domain.UpdateConceptRequest) error
	Delete(ctx context.Context, id string) error
}

type conceptService struct {
	repo  repository.ConceptRepository
	cache cache.Service
}

// NewConceptService creates a new ConceptService
func NewConceptService(repo repository.ConceptRepository, cache cache.Service) ConceptService {
	return &conceptService{repo: repo, cache: cache}
}

// ListByApp serves the public per-app concept list through the catalog cache.
func (s *conceptService) ListByApp(ctx context.Context, appID string) (*domain.ConceptListResponse, error) {
	if s.cache != nil {
		var cached domain.ConceptListResponse
		if err := s.cache.GetAppConcepts(ctx, appID, &cached); err == nil {
			return &cached, nil
		}
	}

	concepts, err := s.repo.ListByApp(ctx, appID)
	if err != nil {
		return nil, err
	}
	resp := &domain.ConceptListResponse{Concepts: concepts, Total: len(concepts)}

	if s.cache != nil {
		if err := s.cache.SetAppConcepts(ctx, appID, resp); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("concept cache write failed")
		}
	}
	return resp, nil
}

func (s *conceptService) GetByID(ctx context.Context, id string) (*domain.Concept, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *conceptService) ListAll(ctx context.Context) (*domain.ConceptListResponse, error) {
	concepts, err := s.repo.List(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}
	return &domain.ConceptListResponse{Concepts: concepts, Total: len(concepts)}, nil
}

// Create persists a new concept. 관리자 입력이므로 필드 검증은 하지 않는다.
func (s *conceptService) Create(ctx context.Context, req *domain.CreateConceptRequest) (string, error) {
	concept := &domain.Concept{
		AppID:              req.AppID,
		Category:           req.Category,
		Title:              req.Title,
		Content:            req.Content,
		Importance:         req.Importance,
		Keywords:           req.Keywords,
		StudyNote:          req.StudyNote,
		RelatedQuestionIDs: req.RelatedQuestionIDs,
	}
	id, err := s.repo.Create(ctx, concept)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx, req.AppID)
	return id, nil
}

func (s *conceptService) Update(ctx context.Context, id string, req *domain.UpdateConceptRequest) error {
	appID := s.ownerApp(ctx, id)
	if err := s.repo.Update(ctx, id, req); err != nil {
		return err
	}
	s.invalidate(ctx, appID)
	return nil
}

func (s *conceptService) Delete(ctx context.Context, id string) error {
	appID := s.ownerApp(ctx, id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, appID)
	return nil
}

// ownerApp looks up the owning app for cache invalidation. A miss just
// skips invalidation; the entry expires on its own TTL.
func (s *conceptService) ownerApp(ctx context.Context, id string) string {
	concept, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return concept.AppID
}

func (s *conceptService) invalidate(ctx context.Context, appID string) {
	if s.cache == nil || appID == "" {
		return
	}
	if err := s.cache.InvalidateAppConcepts(ctx, appID); err != nil {
		logger.GetLogger().Warn().Err(err).Msg("concept cache invalidation failed")
	}
}

package service

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/jmkcontents/jmkcontents/internal/common"
	"github.com/jmkcontents/jmkcontents/internal/domain"
	"github.com/jmkcontents/jmkcontents/internal/repository"
)

// emailPattern: local@domain.tld, 공백 없음, @ 뒤에 점이 하나 이상.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactService handles the public contact form and its admin side.
// 비인증 외부 입력을 받는 유일한 컴포넌트라서 여기만 필드 검증이 있다.
type ContactService interface {
	Submit(ctx context.Context, req *domain.ContactFormRequest) (string, error)
	ListAll(ctx context.Context) (*domain.ContactSubmissionListResponse, error)
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

// Submit validates and persists a contact form submission.
// 검증 순서는 고정: 필수 필드 → 이메일 형식 → 메시지 길이.
// 첫 실패에서 바로 해당 메시지로 반환한다.
func (s *contactService) Submit(ctx context.Context, req *domain.ContactFormRequest) (string, error) {
	if req.Email == "" || req.Message == "" {
		return "", common.ErrContactRequiredFields
	}
	if !emailPattern.MatchString(req.Email) {
		return "", common.ErrContactInvalidEmail
	}
	length := utf8.RuneCountInString(req.Message)
	if length < domain.ContactMessageMinLen {
		return "", common.ErrContactMessageShort
	}
	if length > domain.ContactMessageMaxLen {
		return "", common.ErrContactMessageLong
	}

	sub := &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	return s.repo.Create(ctx, sub)
}

func (s *contactService) ListAll(ctx context.Context) (*domain.ContactSubmissionListResponse, error) {
	subs, err := s.repo.List(ctx, adminListLimit)
	if err != nil {
		return nil, err
	}
	return &domain.ContactSubmissionListResponse{Submissions: subs, Total: len(subs)}, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

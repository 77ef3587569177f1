package repository

import (
	"context"
	"time"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
)

// ContactRepository handles contact submission data access
type ContactRepository interface {
	Create(ctx context.Context, sub *domain.ContactSubmission) (string, error)
	GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error)
	List(ctx context.Context, limit int) ([]domain.ContactSubmission, error)
	UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error
}

type contactRepository struct {
	store docstore.Store
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(store docstore.Store) ContactRepository {
	return &contactRepository{store: store}
}

func (r *contactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) (string, error) {
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	if sub.Name == "" {
		sub.Name = domain.DefaultContactName
	}
	if sub.Subject == "" {
		sub.Subject = domain.DefaultContactSubject
	}
	sub.Status = domain.SubmissionStatusPending
	return r.store.Add(ctx, docstore.CollectionContactSubmissions, submissionToDoc(sub))
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionContactSubmissions, id)
	if err != nil {
		return nil, err
	}
	return docToSubmission(id, doc), nil
}

func (r *contactRepository) List(ctx context.Context, limit int) ([]domain.ContactSubmission, error) {
	snapshots, err := r.store.All(ctx, docstore.CollectionContactSubmissions)
	if err != nil {
		return nil, err
	}

	subs := make([]domain.ContactSubmission, 0, len(snapshots))
	for _, snap := range snapshots {
		subs = append(subs, *docToSubmission(snap.ID, snap.Data))
	}
	sortByCreatedDesc(subs, func(s domain.ContactSubmission) time.Time { return s.CreatedAt })
	if limit > 0 && len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status domain.SubmissionStatus) error {
	return r.store.Update(ctx, docstore.CollectionContactSubmissions, id, docstore.Document{
		"status":     string(status),
		"updated_at": formatTime(time.Now()),
	})
}

func submissionToDoc(s *domain.ContactSubmission) docstore.Document {
	return docstore.Document{
		"name":       s.Name,
		"email":      s.Email,
		"subject":    s.Subject,
		"message":    s.Message,
		"status":     string(s.Status),
		"created_at": formatTime(s.CreatedAt),
		"updated_at": formatTime(s.UpdatedAt),
	}
}

func docToSubmission(id string, doc docstore.Document) *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:        id,
		Name:      docString(doc, "name"),
		Email:     docString(doc, "email"),
		Subject:   docString(doc, "subject"),
		Message:   docString(doc, "message"),
		Status:    domain.SubmissionStatus(docString(doc, "status")),
		CreatedAt: docTime(doc, "created_at"),
		UpdatedAt: docTime(doc, "updated_at"),
	}
}

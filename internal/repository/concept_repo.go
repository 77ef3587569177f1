package repository

import (
	"context"
	"time"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
)

// ConceptRepository handles concept data access
type ConceptRepository interface {
	Create(ctx context.Context, concept *domain.Concept) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Concept, error)
	List(ctx context.Context, limit int) ([]domain.Concept, error)
	ListByApp(ctx context.Context, appID string) ([]domain.Concept, error)
	Update(ctx context.Context, id string, req *domain.UpdateConceptRequest) error
	Delete(ctx context.Context, id string) error
}

type conceptRepository struct {
	store docstore.Store
}

// NewConceptRepository creates a new ConceptRepository
func NewConceptRepository(store docstore.Store) ConceptRepository {
	return &conceptRepository{store: store}
}

func (r *conceptRepository) Create(ctx context.Context, concept *domain.Concept) (string, error) {
	now := time.Now()
	concept.CreatedAt = now
	concept.UpdatedAt = now
	if concept.Importance == 0 {
		concept.Importance = domain.DefaultImportance
	}
	if concept.RelatedQuestionIDs == nil {
		concept.RelatedQuestionIDs = []string{}
	}
	return r.store.Add(ctx, docstore.CollectionConcepts, conceptToDoc(concept))
}

func (r *conceptRepository) GetByID(ctx context.Context, id string) (*domain.Concept, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionConcepts, id)
	if err != nil {
		return nil, err
	}
	return docToConcept(id, doc), nil
}

func (r *conceptRepository) List(ctx context.Context, limit int) ([]domain.Concept, error) {
	snapshots, err := r.store.All(ctx, docstore.CollectionConcepts)
	if err != nil {
		return nil, err
	}

	concepts := make([]domain.Concept, 0, len(snapshots))
	for _, snap := range snapshots {
		concepts = append(concepts, *docToConcept(snap.ID, snap.Data))
	}
	sortByCreatedDesc(concepts, func(c domain.Concept) time.Time { return c.CreatedAt })
	if limit > 0 && len(concepts) > limit {
		concepts = concepts[:limit]
	}
	return concepts, nil
}

func (r *conceptRepository) ListByApp(ctx context.Context, appID string) ([]domain.Concept, error) {
	all, err := r.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Concept, 0, len(all))
	for _, c := range all {
		if c.AppID == appID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (r *conceptRepository) Update(ctx context.Context, id string, req *domain.UpdateConceptRequest) error {
	fields := docstore.Document{}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Importance != nil {
		fields["importance"] = *req.Importance
	}
	if req.Keywords != nil {
		fields["keywords"] = *req.Keywords
	}
	if req.StudyNote != nil {
		fields["study_note"] = *req.StudyNote
	}
	if req.RelatedQuestionIDs != nil {
		fields["related_question_ids"] = *req.RelatedQuestionIDs
	}
	fields["updated_at"] = formatTime(time.Now())
	return r.store.Update(ctx, docstore.CollectionConcepts, id, fields)
}

func (r *conceptRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionConcepts, id)
}

func conceptToDoc(c *domain.Concept) docstore.Document {
	return docstore.Document{
		"app_id":               c.AppID,
		"category":             c.Category,
		"title":                c.Title,
		"content":              c.Content,
		"importance":           c.Importance,
		"keywords":             c.Keywords,
		"study_note":           c.StudyNote,
		"related_question_ids": c.RelatedQuestionIDs,
		"created_at":           formatTime(c.CreatedAt),
		"updated_at":           formatTime(c.UpdatedAt),
	}
}

func docToConcept(id string, doc docstore.Document) *domain.Concept {
	return &domain.Concept{
		ID:                 id,
		AppID:              docString(doc, "app_id"),
		Category:           docString(doc, "category"),
		Title:              docString(doc, "title"),
		Content:            docString(doc, "content"),
		Importance:         docInt(doc, "importance"),
		Keywords:           docString(doc, "keywords"),
		StudyNote:          docString(doc, "study_note"),
		RelatedQuestionIDs: docStringSlice(doc, "related_question_ids"),
		CreatedAt:          docTime(doc, "created_at"),
		UpdatedAt:          docTime(doc, "updated_at"),
	}
}

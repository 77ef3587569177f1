package repository

import (
	"context"
	"time"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
)

// LectureRepository handles lecture data access
type LectureRepository interface {
	Create(ctx context.Context, lecture *domain.Lecture) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Lecture, error)
	List(ctx context.Context, limit int) ([]domain.Lecture, error)
	ListByApp(ctx context.Context, appID string) ([]domain.Lecture, error)
	Update(ctx context.Context, id string, req *domain.UpdateLectureRequest) error
	Delete(ctx context.Context, id string) error
}

type lectureRepository struct {
	store docstore.Store
}

// NewLectureRepository creates a new LectureRepository
func NewLectureRepository(store docstore.Store) LectureRepository {
	return &lectureRepository{store: store}
}

func (r *lectureRepository) Create(ctx context.Context, lecture *domain.Lecture) (string, error) {
	now := time.Now()
	lecture.CreatedAt = now
	lecture.UpdatedAt = now
	if lecture.DurationSeconds < 0 {
		lecture.DurationSeconds = 0
	}
	return r.store.Add(ctx, docstore.CollectionLectures, lectureToDoc(lecture))
}

func (r *lectureRepository) GetByID(ctx context.Context, id string) (*domain.Lecture, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionLectures, id)
	if err != nil {
		return nil, err
	}
	return docToLecture(id, doc), nil
}

func (r *lectureRepository) List(ctx context.Context, limit int) ([]domain.Lecture, error) {
	snapshots, err := r.store.All(ctx, docstore.CollectionLectures)
	if err != nil {
		return nil, err
	}

	lectures := make([]domain.Lecture, 0, len(snapshots))
	for _, snap := range snapshots {
		lectures = append(lectures, *docToLecture(snap.ID, snap.Data))
	}
	sortByCreatedDesc(lectures, func(l domain.Lecture) time.Time { return l.CreatedAt })
	if limit > 0 && len(lectures) > limit {
		lectures = lectures[:limit]
	}
	return lectures, nil
}

func (r *lectureRepository) ListByApp(ctx context.Context, appID string) ([]domain.Lecture, error) {
	all, err := r.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	matched := make([]domain.Lecture, 0, len(all))
	for _, l := range all {
		if l.AppID == appID {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

func (r *lectureRepository) Update(ctx context.Context, id string, req *domain.UpdateLectureRequest) error {
	fields := docstore.Document{}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.AudioURL != nil {
		fields["audio_url"] = *req.AudioURL
	}
	if req.YoutubeVideoID != nil {
		fields["youtube_video_id"] = *req.YoutubeVideoID
	}
	if req.DurationSeconds != nil {
		fields["duration_seconds"] = *req.DurationSeconds
	}
	if req.Transcript != nil {
		fields["transcript"] = *req.Transcript
	}
	fields["updated_at"] = formatTime(time.Now())
	return r.store.Update(ctx, docstore.CollectionLectures, id, fields)
}

func (r *lectureRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionLectures, id)
}

func lectureToDoc(l *domain.Lecture) docstore.Document {
	return docstore.Document{
		"app_id":           l.AppID,
		"category":         l.Category,
		"title":            l.Title,
		"description":      l.Description,
		"audio_url":        l.AudioURL,
		"youtube_video_id": l.YoutubeVideoID,
		"duration_seconds": l.DurationSeconds,
		"transcript":       l.Transcript,
		"created_at":       formatTime(l.CreatedAt),
		"updated_at":       formatTime(l.UpdatedAt),
	}
}

func docToLecture(id string, doc docstore.Document) *domain.Lecture {
	return &domain.Lecture{
		ID:              id,
		AppID:           docString(doc, "app_id"),
		Category:        docString(doc, "category"),
		Title:           docString(doc, "title"),
		Description:     docString(doc, "description"),
		AudioURL:        docString(doc, "audio_url"),
		YoutubeVideoID:  docString(doc, "youtube_video_id"),
		DurationSeconds: docInt(doc, "duration_seconds"),
		Transcript:      docString(doc, "transcript"),
		CreatedAt:       docTime(doc, "created_at"),
		UpdatedAt:       docTime(doc, "updated_at"),
	}
}

package repository

import (
	"context"
	"sort"
	"time"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
)

// AffiliateAdRepository handles affiliate ad data access
type AffiliateAdRepository interface {
	Create(ctx context.Context, ad *domain.AffiliateAd) (string, error)
	GetByID(ctx context.Context, id string) (*domain.AffiliateAd, error)
	List(ctx context.Context, limit int) ([]domain.AffiliateAd, error)
	ListActive(ctx context.Context, appID string, now time.Time) ([]domain.AffiliateAd, error)
	Update(ctx context.Context, id string, req *domain.UpdateAffiliateAdRequest) error
	Delete(ctx context.Context, id string) error
	Toggle(ctx context.Context, id string) error
	IncrementImpressions(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error
}

type affiliateAdRepository struct {
	store docstore.Store
}

// NewAffiliateAdRepository creates a new AffiliateAdRepository
func NewAffiliateAdRepository(store docstore.Store) AffiliateAdRepository {
	return &affiliateAdRepository{store: store}
}

func (r *affiliateAdRepository) Create(ctx context.Context, ad *domain.AffiliateAd) (string, error) {
	now := time.Now()
	ad.CreatedAt = now
	ad.UpdatedAt = now
	ad.Impressions = 0
	ad.Clicks = 0
	if ad.AppIDs == nil {
		ad.AppIDs = []string{domain.AppIDWildcard}
	}
	return r.store.Add(ctx, docstore.CollectionAffiliateAds, adToDoc(ad))
}

func (r *affiliateAdRepository) GetByID(ctx context.Context, id string) (*domain.AffiliateAd, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionAffiliateAds, id)
	if err != nil {
		return nil, err
	}
	return docToAd(id, doc), nil
}

func (r *affiliateAdRepository) List(ctx context.Context, limit int) ([]domain.AffiliateAd, error) {
	snapshots, err := r.store.All(ctx, docstore.CollectionAffiliateAds)
	if err != nil {
		return nil, err
	}

	ads := make([]domain.AffiliateAd, 0, len(snapshots))
	for _, snap := range snapshots {
		ads = append(ads, *docToAd(snap.ID, snap.Data))
	}
	sortByCreatedDesc(ads, func(a domain.AffiliateAd) time.Time { return a.CreatedAt })
	if limit > 0 && len(ads) > limit {
		ads = ads[:limit]
	}
	return ads, nil
}

// ListActive returns ads that are active, inside their date window and
// targeted at the given app (or at "all"), ordered by priority desc.
func (r *affiliateAdRepository) ListActive(ctx context.Context, appID string, now time.Time) ([]domain.AffiliateAd, error) {
	all, err := r.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	active := make([]domain.AffiliateAd, 0, len(all))
	for _, ad := range all {
		if !ad.IsActive || !ad.InWindow(now) {
			continue
		}
		if appID != "" && !ad.MatchesApp(appID) {
			continue
		}
		active = append(active, ad)
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})
	return active, nil
}

func (r *affiliateAdRepository) Update(ctx context.Context, id string, req *domain.UpdateAffiliateAdRequest) error {
	fields := docstore.Document{}
	if req.Type != nil {
		fields["type"] = string(*req.Type)
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.ImageURL != nil {
		fields["imageUrl"] = *req.ImageURL
	}
	if req.LinkURL != nil {
		fields["linkUrl"] = *req.LinkURL
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.AppIDs != nil {
		fields["appIds"] = *req.AppIDs
	}
	if req.ExperimentGroup != nil {
		fields["experimentGroup"] = *req.ExperimentGroup
	}
	if req.StartDate != nil {
		fields["startDate"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["endDate"] = *req.EndDate
	}
	fields["updated_at"] = formatTime(time.Now())
	return r.store.Update(ctx, docstore.CollectionAffiliateAds, id, fields)
}

func (r *affiliateAdRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, docstore.CollectionAffiliateAds, id)
}

// Toggle flips isActive. Unlike Update, it checks existence first and
// returns docstore.ErrNotFound for a missing document.
func (r *affiliateAdRepository) Toggle(ctx context.Context, id string) error {
	doc, err := r.store.Get(ctx, docstore.CollectionAffiliateAds, id)
	if err != nil {
		return err
	}
	return r.store.Update(ctx, docstore.CollectionAffiliateAds, id, docstore.Document{
		"isActive":   !docBool(doc, "isActive"),
		"updated_at": formatTime(time.Now()),
	})
}

func (r *affiliateAdRepository) IncrementImpressions(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "impressions")
}

func (r *affiliateAdRepository) IncrementClicks(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "clicks")
}

// incrementCounter is read-modify-write: concurrent bumps race at
// last-write-wins, which is acceptable for rough ad stats.
func (r *affiliateAdRepository) incrementCounter(ctx context.Context, id, field string) error {
	doc, err := r.store.Get(ctx, docstore.CollectionAffiliateAds, id)
	if err != nil {
		return err
	}
	return r.store.Update(ctx, docstore.CollectionAffiliateAds, id, docstore.Document{
		field: docInt(doc, field) + 1,
	})
}

func adToDoc(ad *domain.AffiliateAd) docstore.Document {
	doc := docstore.Document{
		"type":        string(ad.Type),
		"title":       ad.Title,
		"imageUrl":    ad.ImageURL,
		"linkUrl":     ad.LinkURL,
		"isActive":    ad.IsActive,
		"priority":    ad.Priority,
		"appIds":      ad.AppIDs,
		"impressions": ad.Impressions,
		"clicks":      ad.Clicks,
		"created_at":  formatTime(ad.CreatedAt),
		"updated_at":  formatTime(ad.UpdatedAt),
	}
	if ad.ExperimentGroup != "" {
		doc["experimentGroup"] = ad.ExperimentGroup
	}
	if ad.StartDate != "" {
		doc["startDate"] = ad.StartDate
	}
	if ad.EndDate != "" {
		doc["endDate"] = ad.EndDate
	}
	return doc
}

func docToAd(id string, doc docstore.Document) *domain.AffiliateAd {
	return &domain.AffiliateAd{
		ID:              id,
		Type:            domain.AdType(docString(doc, "type")),
		Title:           docString(doc, "title"),
		ImageURL:        docString(doc, "imageUrl"),
		LinkURL:         docString(doc, "linkUrl"),
		IsActive:        docBool(doc, "isActive"),
		Priority:        docInt(doc, "priority"),
		AppIDs:          docStringSlice(doc, "appIds"),
		ExperimentGroup: docString(doc, "experimentGroup"),
		Impressions:     docInt(doc, "impressions"),
		Clicks:          docInt(doc, "clicks"),
		StartDate:       docString(doc, "startDate"),
		EndDate:         docString(doc, "endDate"),
		CreatedAt:       docTime(doc, "created_at"),
		UpdatedAt:       docTime(doc, "updated_at"),
	}
}

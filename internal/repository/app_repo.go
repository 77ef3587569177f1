package repository

import (
	"context"
	"sort"
	"time"

	"github.com/jmkcontents/jmkcontents/internal/docstore"
	"github.com/jmkcontents/jmkcontents/internal/domain"
)

// AppRepository handles app data access
type AppRepository interface {
	Create(ctx context.Context, app *domain.App) error
	GetByBundleID(ctx context.Context, bundleID string) (*domain.App, error)
	List(ctx context.Context, limit int) ([]domain.App, error)
	ListPublished(ctx context.Context) ([]domain.App, error)
	Update(ctx context.Context, bundleID string, req *domain.UpdateAppRequest) error
	Delete(ctx context.Context, bundleID string) error
}

type appRepository struct {
	store docstore.Store
}

// NewAppRepository creates a new AppRepository
func NewAppRepository(store docstore.Store) AppRepository {
	return &appRepository{store: store}
}

func (r *appRepository) Create(ctx context.Context, app *domain.App) error {
	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.AppStatusDraft
	}
	if app.Categories == nil {
		app.Categories = []string{}
	}
	return r.store.Set(ctx, docstore.CollectionApps, app.BundleID, appToDoc(app))
}

func (r *appRepository) GetByBundleID(ctx context.Context, bundleID string) (*domain.App, error) {
	doc, err := r.store.Get(ctx, docstore.CollectionApps, bundleID)
	if err != nil {
		return nil, err
	}
	return docToApp(bundleID, doc), nil
}

func (r *appRepository) List(ctx context.Context, limit int) ([]domain.App, error) {
	snapshots, err := r.store.All(ctx, docstore.CollectionApps)
	if err != nil {
		return nil, err
	}

	apps := make([]domain.App, 0, len(snapshots))
	for _, snap := range snapshots {
		apps = append(apps, *docToApp(snap.ID, snap.Data))
	}
	sortByCreatedDesc(apps, func(a domain.App) time.Time { return a.CreatedAt })
	if limit > 0 && len(apps) > limit {
		apps = apps[:limit]
	}
	return apps, nil
}

func (r *appRepository) ListPublished(ctx context.Context) ([]domain.App, error) {
	all, err := r.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	published := make([]domain.App, 0, len(all))
	for _, app := range all {
		if app.Status == domain.AppStatusPublished {
			published = append(published, app)
		}
	}
	return published, nil
}

// Update writes only the supplied fields. bundle_id는 변경 불가.
func (r *appRepository) Update(ctx context.Context, bundleID string, req *domain.UpdateAppRequest) error {
	fields := docstore.Document{}
	if req.AppName != nil {
		fields["app_name"] = *req.AppName
	}
	if req.AppNameFull != nil {
		fields["app_name_full"] = *req.AppNameFull
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.DescriptionFull != nil {
		fields["description_full"] = *req.DescriptionFull
	}
	if req.AppStoreURL != nil {
		fields["app_store_url"] = *req.AppStoreURL
	}
	if req.IconURL != nil {
		fields["icon_url"] = *req.IconURL
	}
	if req.AppCategory != nil {
		fields["app_category"] = string(*req.AppCategory)
	}
	if req.Categories != nil {
		fields["categories"] = *req.Categories
	}
	if req.Status != nil {
		fields["status"] = string(*req.Status)
	}
	if req.IsFeatured != nil {
		fields["is_featured"] = *req.IsFeatured
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}
	if req.DownloadCount != nil {
		fields["download_count"] = *req.DownloadCount
	}
	fields["updated_at"] = formatTime(time.Now())
	return r.store.Update(ctx, docstore.CollectionApps, bundleID, fields)
}

func (r *appRepository) Delete(ctx context.Context, bundleID string) error {
	return r.store.Delete(ctx, docstore.CollectionApps, bundleID)
}

func appToDoc(app *domain.App) docstore.Document {
	return docstore.Document{
		"app_name":         app.AppName,
		"app_name_full":    app.AppNameFull,
		"description":      app.Description,
		"description_full": app.DescriptionFull,
		"app_store_url":    app.AppStoreURL,
		"icon_url":         app.IconURL,
		"app_category":     string(app.AppCategory),
		"categories":       app.Categories,
		"status":           string(app.Status),
		"is_featured":      app.IsFeatured,
		"rating":           app.Rating,
		"download_count":   app.DownloadCount,
		"created_at":       formatTime(app.CreatedAt),
		"updated_at":       formatTime(app.UpdatedAt),
	}
}

func docToApp(bundleID string, doc docstore.Document) *domain.App {
	return &domain.App{
		BundleID:        bundleID,
		AppName:         docString(doc, "app_name"),
		AppNameFull:     docString(doc, "app_name_full"),
		Description:     docString(doc, "description"),
		DescriptionFull: docString(doc, "description_full"),
		AppStoreURL:     docString(doc, "app_store_url"),
		IconURL:         docString(doc, "icon_url"),
		AppCategory:     domain.AppCategory(docString(doc, "app_category")),
		Categories:      docStringSlice(doc, "categories"),
		Status:          domain.AppStatus(docString(doc, "status")),
		IsFeatured:      docBool(doc, "is_featured"),
		Rating:          docFloat(doc, "rating"),
		DownloadCount:   docInt(doc, "download_count"),
		CreatedAt:       docTime(doc, "created_at"),
		UpdatedAt:       docTime(doc, "updated_at"),
	}
}

// sortByCreatedDesc orders newest first, matching the admin list pages.
func sortByCreatedDesc[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}

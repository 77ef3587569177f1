package domain

import "time"

// AppStatus 앱 공개 상태
type AppStatus string

const (
	AppStatusDraft     AppStatus = "draft"
	AppStatusPublished AppStatus = "published"
)

// AppCategory 앱 분류
type AppCategory string

const (
	AppCategoryGisa       AppCategory = "기사"
	AppCategorySanupGisa  AppCategory = "산업기사"
	AppCategoryGinungsa   AppCategory = "기능사"
	AppCategoryEtc        AppCategory = "기타"
)

// App 시험 대비 모바일 앱. 문서 키는 bundle_id이며 생성 후 변경 불가.
type App struct {
	BundleID        string      `json:"bundle_id"`
	AppName         string      `json:"app_name"`
	AppNameFull     string      `json:"app_name_full"`
	Description     string      `json:"description"`
	DescriptionFull string      `json:"description_full"`
	AppStoreURL     string      `json:"app_store_url"`
	IconURL         string      `json:"icon_url"`
	AppCategory     AppCategory `json:"app_category"`
	Categories      []string    `json:"categories"`
	Status          AppStatus   `json:"status"`
	IsFeatured      bool        `json:"is_featured"`
	Rating          float64     `json:"rating"`
	DownloadCount   int         `json:"download_count"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// CreateAppRequest is the request body for creating an app
type CreateAppRequest struct {
	BundleID        string      `json:"bundle_id" binding:"required"`
	AppName         string      `json:"app_name" binding:"required"`
	AppNameFull     string      `json:"app_name_full"`
	Description     string      `json:"description"`
	DescriptionFull string      `json:"description_full"`
	AppStoreURL     string      `json:"app_store_url"`
	IconURL         string      `json:"icon_url"`
	AppCategory     AppCategory `json:"app_category"`
	Categories      []string    `json:"categories"`
	Status          AppStatus   `json:"status"`
	IsFeatured      bool        `json:"is_featured"`
	Rating          float64     `json:"rating"`
	DownloadCount   int         `json:"download_count"`
}

// UpdateAppRequest is the request body for updating an app.
// Nil fields are left untouched (partial update).
type UpdateAppRequest struct {
	AppName         *string      `json:"app_name"`
	AppNameFull     *string      `json:"app_name_full"`
	Description     *string      `json:"description"`
	DescriptionFull *string      `json:"description_full"`
	AppStoreURL     *string      `json:"app_store_url"`
	IconURL         *string      `json:"icon_url"`
	AppCategory     *AppCategory `json:"app_category"`
	Categories      *[]string    `json:"categories"`
	Status          *AppStatus   `json:"status"`
	IsFeatured      *bool        `json:"is_featured"`
	Rating          *float64     `json:"rating"`
	DownloadCount   *int         `json:"download_count"`
}

// AppListResponse is the response for a list of apps
type AppListResponse struct {
	Apps  []App `json:"apps"`
	Total int   `json:"total"`
}

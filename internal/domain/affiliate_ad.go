package domain

import "time"

// AdType 광고 게재 형식
type AdType string

const (
	AdTypeBanner       AdType = "banner"
	AdTypeInterstitial AdType = "interstitial"
)

// AppIDWildcard matches every app when present in AppIDs.
const AppIDWildcard = "all"

// AffiliateAd 제휴 광고. 문서 필드 키는 기존 데이터 호환을 위해
// camelCase를 유지한다.
type AffiliateAd struct {
	ID              string    `json:"id"`
	Type            AdType    `json:"type"`
	Title           string    `json:"title"`
	ImageURL        string    `json:"imageUrl"`
	LinkURL         string    `json:"linkUrl"`
	IsActive        bool      `json:"isActive"`
	Priority        int       `json:"priority"`
	AppIDs          []string  `json:"appIds"` // "all"은 전체 앱 대상
	ExperimentGroup string    `json:"experimentGroup,omitempty"`
	Impressions     int       `json:"impressions"`
	Clicks          int       `json:"clicks"`
	StartDate       string    `json:"startDate,omitempty"` // ISO 날짜 문자열
	EndDate         string    `json:"endDate,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MatchesApp reports whether the ad targets the given app.
func (a *AffiliateAd) MatchesApp(appID string) bool {
	for _, id := range a.AppIDs {
		if id == AppIDWildcard || id == appID {
			return true
		}
	}
	return false
}

// InWindow reports whether now falls inside the ad's optional date window.
func (a *AffiliateAd) InWindow(now time.Time) bool {
	if a.StartDate != "" {
		if start, err := time.Parse("2006-01-02", a.StartDate); err == nil && now.Before(start) {
			return false
		}
	}
	if a.EndDate != "" {
		if end, err := time.Parse("2006-01-02", a.EndDate); err == nil && now.After(end.Add(24*time.Hour)) {
			return false
		}
	}
	return true
}

// CreateAffiliateAdRequest is the request body for creating an affiliate ad
type CreateAffiliateAdRequest struct {
	Type            AdType   `json:"type" binding:"required"`
	Title           string   `json:"title"`
	ImageURL        string   `json:"imageUrl"`
	LinkURL         string   `json:"linkUrl"`
	IsActive        bool     `json:"isActive"`
	Priority        int      `json:"priority"`
	AppIDs          []string `json:"appIds"`
	ExperimentGroup string   `json:"experimentGroup"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
}

// UpdateAffiliateAdRequest is the request body for updating an affiliate ad.
// Nil fields are left untouched (partial update).
type UpdateAffiliateAdRequest struct {
	Type            *AdType   `json:"type"`
	Title           *string   `json:"title"`
	ImageURL        *string   `json:"imageUrl"`
	LinkURL         *string   `json:"linkUrl"`
	IsActive        *bool     `json:"isActive"`
	Priority        *int      `json:"priority"`
	AppIDs          *[]string `json:"appIds"`
	ExperimentGroup *string   `json:"experimentGroup"`
	StartDate       *string   `json:"startDate"`
	EndDate         *string   `json:"endDate"`
}

// AffiliateAdListResponse is the response for a list of affiliate ads
type AffiliateAdListResponse struct {
	Ads   []AffiliateAd `json:"ads"`
	Total int           `json:"total"`
}

package domain

import "time"

// Lecture 앱에 속한 오디오/영상 강의.
// youtube_video_id와 audio_url이 모두 있으면 유튜브가 우선한다.
type Lecture struct {
	ID              string    `json:"id"`
	AppID           string    `json:"app_id"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	AudioURL        string    `json:"audio_url"`
	YoutubeVideoID  string    `json:"youtube_video_id"`
	DurationSeconds int       `json:"duration_seconds"`
	Transcript      string    `json:"transcript"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasVideo reports whether the lecture plays as a YouTube video.
func (l *Lecture) HasVideo() bool {
	return l.YoutubeVideoID != ""
}

// CreateLectureRequest is the request body for creating a lecture
type CreateLectureRequest struct {
	AppID           string `json:"app_id" binding:"required"`
	Category        string `json:"category"`
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	AudioURL        string `json:"audio_url"`
	YoutubeVideoID  string `json:"youtube_video_id"`
	DurationSeconds int    `json:"duration_seconds"`
	Transcript      string `json:"transcript"`
}

// UpdateLectureRequest is the request body for updating a lecture.
// Nil fields are left untouched (partial update).
type UpdateLectureRequest struct {
	Category        *string `json:"category"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	AudioURL        *string `json:"audio_url"`
	YoutubeVideoID  *string `json:"youtube_video_id"`
	DurationSeconds *int    `json:"duration_seconds"`
	Transcript      *string `json:"transcript"`
}

// LectureListResponse is the response for a list of lectures
type LectureListResponse struct {
	Lectures []Lecture `json:"lectures"`
	Total    int       `json:"total"`
}

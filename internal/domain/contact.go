package domain

import "time"

// SubmissionStatus 문의 처리 상태
type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "pending"
	SubmissionStatusInProgress SubmissionStatus = "in_progress"
	SubmissionStatusResolved   SubmissionStatus = "resolved"
)

// 미입력 시 기본값
const (
	DefaultContactName    = "익명"
	DefaultContactSubject = "(제목 없음)"
)

// 메시지 길이 제한
const (
	ContactMessageMinLen = 10
	ContactMessageMaxLen = 5000
)

// ContactSubmission 공개 문의 폼 제출 기록
type ContactSubmission struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Subject   string           `json:"subject"`
	Message   string           `json:"message"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ContactFormRequest is the request body for the public contact form
type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UpdateSubmissionStatusRequest is the admin request for moving a
// submission through pending → in_progress → resolved.
type UpdateSubmissionStatusRequest struct {
	Status SubmissionStatus `json:"status" binding:"required"`
}

// ContactSubmissionListResponse is the response for a list of submissions
type ContactSubmissionListResponse struct {
	Submissions []ContactSubmission `json:"submissions"`
	Total       int                 `json:"total"`
}

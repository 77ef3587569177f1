package domain

import "time"

// Concept 앱에 속한 핵심 학습 개념
type Concept struct {
	ID                 string    `json:"id"`
	AppID              string    `json:"app_id"`
	Category           string    `json:"category"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	Importance         int       `json:"importance"` // 1-5
	Keywords           string    `json:"keywords"`   // 쉼표로 구분된 문자열 그대로 저장
	StudyNote          string    `json:"study_note"`
	RelatedQuestionIDs []string  `json:"related_question_ids"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultImportance is used when the admin form leaves importance unset.
const DefaultImportance = 3

// CreateConceptRequest is the request body for creating a concept
type CreateConceptRequest struct {
	AppID              string   `json:"app_id" binding:"required"`
	Category           string   `json:"category"`
	Title              string   `json:"title" binding:"required"`
	Content            string   `json:"content" binding:"required"`
	Importance         int      `json:"importance"`
	Keywords           string   `json:"keywords"`
	StudyNote          string   `json:"study_note"`
	RelatedQuestionIDs []string `json:"related_question_ids"`
}

// UpdateConceptRequest is the request body for updating a concept.
// Nil fields are left untouched (partial update).
type UpdateConceptRequest struct {
	Category           *string   `json:"category"`
	Title              *string   `json:"title"`
	Content            *string   `json:"content"`
	Importance         *int      `json:"importance"`
	Keywords           *string   `json:"keywords"`
	StudyNote          *string   `json:"study_note"`
	RelatedQuestionIDs *[]string `json:"related_question_ids"`
}

// ConceptListResponse is the response for a list of concepts
type ConceptListResponse struct {
	Concepts []Concept `json:"concepts"`
	Total    int       `json:"total"`
}

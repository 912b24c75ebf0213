package dto

import (
	"github.com/sophiaacademy/careerguide/internal/app/models"
	"github.com/sophiaacademy/careerguide/internal/app/scoring"
)

// StudentInfoRequest represents the registration part of a submission.
// Every field must be present as a string; empty strings are accepted.
type StudentInfoRequest struct {
	Name     *string `json:"name" binding:"required" example:"Asha"`
	School   *string `json:"school" binding:"required" example:"Govt High School"`
	District *string `json:"district" binding:"required" example:"Mysuru"`
	Mobile   *string `json:"mobile" binding:"required" example:"9876543210"`
	Board    *string `json:"board" binding:"required" example:"SSLC"`
}

// SubmitAssessmentRequest represents a completed questionnaire.
// Responses are keyed by question id ("1".."60"). Missing questions count as
// neutral and keys that are not question ids are ignored.
type SubmitAssessmentRequest struct {
	StudentInfo *StudentInfoRequest `json:"student_info" binding:"required"`
	Responses   map[string]int      `json:"responses" binding:"required"`
}

// ToStudentInfo converts the bound request into the domain model.
func (r *StudentInfoRequest) ToStudentInfo() models.StudentInfo {
	return models.StudentInfo{
		Name:     deref(r.Name),
		School:   deref(r.School),
		District: deref(r.District),
		Mobile:   deref(r.Mobile),
		Board:    deref(r.Board),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SubmitAssessmentResponse is returned after a submission is stored
type SubmitAssessmentResponse struct {
	ID            int64            `json:"id" example:"1"`
	Scores        scoring.Scores   `json:"scores"`
	DominantTrait scoring.Category `json:"dominant_trait" example:"Realistic"`
}

// NewSubmitAssessmentResponse builds the response for a stored record
func NewSubmitAssessmentResponse(record *models.StudentRecord) SubmitAssessmentResponse {
	return SubmitAssessmentResponse{
		ID:            record.ID,
		Scores:        record.Scores,
		DominantTrait: record.DominantTrait,
	}
}

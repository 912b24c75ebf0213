package models

import (
	"time"

	"github.com/sophiaacademy/careerguide/internal/app/scoring"
)

// StudentInfo is the registration data captured with an assessment. Values are
// stored verbatim.
type StudentInfo struct {
	Name     string `json:"name" example:"Asha"`
	School   string `json:"school" example:"Govt High School"`
	District string `json:"district" example:"Mysuru"`
	Mobile   string `json:"mobile" example:"9876543210"`
	Board    string `json:"board" example:"SSLC"`
}

// StudentRecord defines a scored assessment based on the 'student_scores' table.
// A record is written once and never updated.
type StudentRecord struct {
	ID int64 `json:"id" db:"id" example:"1"`
	StudentInfo
	Scores        scoring.Scores   `json:"scores" db:"scores"`
	DominantTrait scoring.Category `json:"dominant_trait" db:"dominant_trait" example:"Realistic"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
}

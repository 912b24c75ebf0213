package services

import (
	"context"

	"github.com/sophiaacademy/careerguide/internal/app/models"
)

// Services defined in this package:
// - AssessmentService: scores questionnaires and stores the results
// - ReportService: renders the PDF guidance report of a stored result

// StudentRecordStore is the persistence used by the services.
// *repositories.StudentRecordRepository satisfies it.
type StudentRecordStore interface {
	Create(ctx context.Context, record *models.StudentRecord) (*models.StudentRecord, error)
	GetByID(ctx context.Context, id int64) (*models.StudentRecord, error)
}

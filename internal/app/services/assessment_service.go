package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sophiaacademy/careerguide/internal/app/models"
	"github.com/sophiaacademy/careerguide/internal/app/scoring"
	"github.com/sophiaacademy/careerguide/internal/pkg/apperrors"
)

// AssessmentService defines the interface for assessment operations
type AssessmentService interface {
	Submit(ctx context.Context, info models.StudentInfo, responses map[string]int) (*models.StudentRecord, error)
	GetRecord(ctx context.Context, id int64) (*models.StudentRecord, error)
}

// assessmentServiceImpl implements the AssessmentService interface
type assessmentServiceImpl struct {
	store  StudentRecordStore
	engine *scoring.Engine
	logger zerolog.Logger
}

// NewAssessmentService creates a new assessment service instance
func NewAssessmentService(store StudentRecordStore, engine *scoring.Engine, lgr zerolog.Logger) AssessmentService {
	return &assessmentServiceImpl{
		store:  store,
		engine: engine,
		logger: lgr.With().Str("service", "assessment").Logger(),
	}
}

// Submit scores the responses and persists them together with the student
// information. Nothing is stored when scoring can not be completed.
func (s *assessmentServiceImpl) Submit(ctx context.Context, info models.StudentInfo, responses map[string]int) (*models.StudentRecord, error) {
	if unknown := s.engine.UnknownKeys(responses); len(unknown) > 0 {
		s.logger.Warn().Strs("keys", unknown).Msg("Ignoring responses that do not name a question")
	}

	result := s.engine.Score(responses)

	record, err := s.store.Create(ctx, &models.StudentRecord{
		StudentInfo:   info,
		Scores:        result.Scores,
		DominantTrait: result.Dominant,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store assessment: %w", err)
	}

	s.logger.Info().
		Int64("studentID", record.ID).
		Str("dominantTrait", string(record.DominantTrait)).
		Msg("Assessment stored")
	return record, nil
}

// GetRecord retrieves a stored assessment. Identifiers the database can never
// assign are reported as not found without a lookup.
func (s *assessmentServiceImpl) GetRecord(ctx context.Context, id int64) (*models.StudentRecord, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}

	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return record, nil
}

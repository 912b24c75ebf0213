package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sophiaacademy/careerguide/internal/app/models"
	"github.com/sophiaacademy/careerguide/internal/app/scoring"
	"github.com/sophiaacademy/careerguide/internal/pkg/apperrors"
	"github.com/sophiaacademy/careerguide/internal/pkg/report"
)

// ReportService defines the interface for report generation
type ReportService interface {
	Generate(ctx context.Context, id int64) (*report.File, error)
}

// DocumentRenderer turns report content into a file.
// *report.Renderer satisfies it.
type DocumentRenderer interface {
	RenderFile(doc report.Document) (*report.File, error)
}

type reportServiceImpl struct {
	assessments AssessmentService
	engine      *scoring.Engine
	renderer    DocumentRenderer
	logger      zerolog.Logger
	now         func() time.Time
}

// NewReportService creates a new report service instance
func NewReportService(assessments AssessmentService, engine *scoring.Engine, renderer DocumentRenderer, lgr zerolog.Logger) ReportService {
	return &reportServiceImpl{
		assessments: assessments,
		engine:      engine,
		renderer:    renderer,
		logger:      lgr.With().Str("service", "report").Logger(),
		now:         time.Now,
	}
}

// Generate renders the report of a stored assessment. The stored scores and
// dominant trait are printed as they were saved.
func (s *reportServiceImpl) Generate(ctx context.Context, id int64) (*report.File, error) {
	record, err := s.assessments.GetRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	file, err := s.renderer.RenderFile(s.document(record))
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", id).Msg("Error rendering report")
		return nil, fmt.Errorf("%w: %w", apperrors.ErrReportRenderFailed, err)
	}
	return file, nil
}

// document lays the scores out in category order. Categories missing from the
// stored scores are skipped.
func (s *reportServiceImpl) document(record *models.StudentRecord) report.Document {
	lines := make([]report.ScoreLine, 0, len(record.Scores))
	for _, c := range s.engine.Categories() {
		v, ok := record.Scores[c]
		if !ok {
			continue
		}
		lines = append(lines, report.ScoreLine{Label: string(c), Value: v})
	}

	return report.Document{
		Name:          record.Name,
		School:        record.School,
		DominantTrait: string(record.DominantTrait),
		Scores:        lines,
		GeneratedAt:   s.now(),
	}
}

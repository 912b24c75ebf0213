package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiaacademy/careerguide/internal/app/models"
	"github.com/sophiaacademy/careerguide/internal/app/scoring"
	"github.com/sophiaacademy/careerguide/internal/pkg/apperrors"
	"github.com/sophiaacademy/careerguide/internal/pkg/report"
)

// recordingRenderer captures the document it was asked to render
type recordingRenderer struct {
	doc report.Document
	err error
}

func (r *recordingRenderer) RenderFile(doc report.Document) (*report.File, error) {
	r.doc = doc
	if r.err != nil {
		return nil, r.err
	}
	return &report.File{Filename: report.Filename(doc.Name), ContentType: report.ContentType, Data: []byte("%PDF-fake")}, nil
}

func TestGenerateReport(t *testing.T) {
	store := newMemoryStore()
	engine := scoring.NewStandard()
	assessments := NewAssessmentService(store, engine, zerolog.Nop())
	renderer := &recordingRenderer{}
	svc := NewReportService(assessments, engine, renderer, zerolog.Nop())

	created, err := assessments.Submit(context.Background(), asha, map[string]int{"10": 1})
	require.NoError(t, err)

	file, err := svc.Generate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sophia_Report_Asha.pdf", file.Filename)

	doc := renderer.doc
	assert.Equal(t, "Asha", doc.Name)
	assert.Equal(t, "X", doc.School)
	assert.Equal(t, "Social", doc.DominantTrait)
	require.Len(t, doc.Scores, 6)
	for i, c := range engine.Categories() {
		assert.Equal(t, string(c), doc.Scores[i].Label)
	}
	assert.InDelta(t, 64.0, doc.Scores[3].Value, 1e-9)
}

func TestGenerateReportUsesStoredValues(t *testing.T) {
	store := newMemoryStore()
	store.records[5] = models.StudentRecord{
		ID:            5,
		StudentInfo:   asha,
		Scores:        scoring.Scores{scoring.Artistic: 12.5, scoring.Realistic: 99},
		DominantTrait: scoring.Artistic,
	}
	engine := scoring.NewStandard()
	renderer := &recordingRenderer{}
	svc := NewReportService(NewAssessmentService(store, engine, zerolog.Nop()), engine, renderer, zerolog.Nop())

	_, err := svc.Generate(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, "Artistic", renderer.doc.DominantTrait)
	assert.Equal(t, []report.ScoreLine{
		{Label: "Realistic", Value: 99},
		{Label: "Artistic", Value: 12.5},
	}, renderer.doc.Scores)
}

func TestGenerateReportNotFound(t *testing.T) {
	engine := scoring.NewStandard()
	renderer := &recordingRenderer{}
	svc := NewReportService(NewAssessmentService(newMemoryStore(), engine, zerolog.Nop()), engine, renderer, zerolog.Nop())

	_, err := svc.Generate(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, renderer.doc.Name, "renderer must not be called")
}

func TestGenerateReportRenderFailure(t *testing.T) {
	store := newMemoryStore()
	engine := scoring.NewStandard()
	assessments := NewAssessmentService(store, engine, zerolog.Nop())
	renderErr := errors.New("font missing")
	svc := NewReportService(assessments, engine, &recordingRenderer{err: renderErr}, zerolog.Nop())

	created, err := assessments.Submit(context.Background(), asha, nil)
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), created.ID)
	assert.ErrorIs(t, err, apperrors.ErrReportRenderFailed)
	assert.ErrorIs(t, err, renderErr)
}

func TestGenerateReportWithPDFRenderer(t *testing.T) {
	store := newMemoryStore()
	engine := scoring.NewStandard()
	assessments := NewAssessmentService(store, engine, zerolog.Nop())
	svc := NewReportService(assessments, engine, report.NewRenderer(), zerolog.Nop()).(*reportServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC) }

	created, err := assessments.Submit(context.Background(), asha, nil)
	require.NoError(t, err)

	file, err := svc.Generate(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ContentType, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF-")))
}

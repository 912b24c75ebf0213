package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sophiaacademy/careerguide/internal/app/models"
	"github.com/sophiaacademy/careerguide/internal/app/models/dto"
	"github.com/sophiaacademy/careerguide/internal/app/scoring"
	"github.com/sophiaacademy/careerguide/internal/middleware"
	"github.com/sophiaacademy/careerguide/internal/pkg/apperrors"
	"github.com/sophiaacademy/careerguide/internal/pkg/report"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidation()
}

type fakeAssessmentService struct {
	gotInfo      models.StudentInfo
	gotResponses map[string]int
	called       bool
	err          error
}

func (f *fakeAssessmentService) Submit(_ context.Context, info models.StudentInfo, responses map[string]int) (*models.StudentRecord, error) {
	f.called = true
	f.gotInfo = info
	f.gotResponses = responses
	if f.err != nil {
		return nil, f.err
	}
	return &models.StudentRecord{
		ID:            11,
		StudentInfo:   info,
		Scores:        scoring.Scores{scoring.Realistic: 60, scoring.Social: 64},
		DominantTrait: scoring.Social,
	}, nil
}

func (f *fakeAssessmentService) GetRecord(context.Context, int64) (*models.StudentRecord, error) {
	return nil, errors.New("not used")
}

type fakeReportService struct {
	gotID int64
	err   error
}

func (f *fakeReportService) Generate(_ context.Context, id int64) (*report.File, error) {
	f.gotID = id
	if f.err != nil {
		return nil, f.err
	}
	return &report.File{
		Filename:    report.Filename("Asha"),
		ContentType: report.ContentType,
		Data:        []byte("%PDF-1.3 fake"),
	}, nil
}

func newTestRouter(assessments *fakeAssessmentService, reports *fakeReportService) *gin.Engine {
	r := gin.New()
	r.POST("/api/submit", NewAssessmentController(assessments).Submit)
	r.GET("/api/report/:student_id", NewReportController(reports).GetReport)
	r.GET("/api/health", NewHealthController().Health)
	return r
}

const validSubmission = `{
	"student_info": {"name": "Asha", "school": "X", "district": "Y", "mobile": "123", "board": "Z"},
	"responses": {"1": 5, "10": 1}
}`

func postSubmit(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/submit", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit(t *testing.T) {
	svc := &fakeAssessmentService{}
	r := newTestRouter(svc, &fakeReportService{})

	w := postSubmit(r, validSubmission)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, models.StudentInfo{Name: "Asha", School: "X", District: "Y", Mobile: "123", Board: "Z"}, svc.gotInfo)
	assert.Equal(t, map[string]int{"1": 5, "10": 1}, svc.gotResponses)

	assert.Contains(t, w.Body.String(), `"scores":{"Realistic":60,"Social":64}`)

	var resp dto.SubmitAssessmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, scoring.Social, resp.DominantTrait)
	assert.InDelta(t, 64.0, resp.Scores[scoring.Social], 1e-9)
}

func TestSubmitAcceptsEmptyStrings(t *testing.T) {
	svc := &fakeAssessmentService{}
	r := newTestRouter(svc, &fakeReportService{})

	w := postSubmit(r, `{"student_info":{"name":"","school":"","district":"","mobile":"","board":""},"responses":{}}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.called)
}

func TestSubmitValidation(t *testing.T) {
	// field is a prefix: type errors inside maps may carry the key.
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing student info", `{"responses":{}}`, "student_info"},
		{"null student info", `{"student_info":null,"responses":{}}`, "student_info"},
		{"missing name", `{"student_info":{"school":"X","district":"Y","mobile":"1","board":"Z"},"responses":{}}`, "student_info.name"},
		{"missing responses", `{"student_info":{"name":"A","school":"X","district":"Y","mobile":"1","board":"Z"}}`, "responses"},
		{"non-integer response", `{"student_info":{"name":"A","school":"X","district":"Y","mobile":"1","board":"Z"},"responses":{"1":"five"}}`, "responses"},
		{"numeric name", `{"student_info":{"name":5,"school":"X","district":"Y","mobile":"1","board":"Z"},"responses":{}}`, "student_info.name"},
		{"malformed json", `{"student_info":`, ""},
		{"empty body", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAssessmentService{}
			r := newTestRouter(svc, &fakeReportService{})

			w := postSubmit(r, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
			assert.False(t, svc.called)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Validation failed", resp.Detail)
			require.NotEmpty(t, resp.Errors)
			assert.True(t, strings.HasPrefix(resp.Errors[0].Field, tt.field), resp.Errors[0].Field)
		})
	}
}

func TestSubmitServiceError(t *testing.T) {
	svc := &fakeAssessmentService{err: errors.New("insert failed")}
	r := newTestRouter(svc, &fakeReportService{})

	w := postSubmit(r, validSubmission)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
}

func TestGetReport(t *testing.T) {
	reports := &fakeReportService{}
	r := newTestRouter(&fakeAssessmentService{}, reports)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report/11", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(11), reports.gotID)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3 fake", w.Body.String())

	disposition, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.Equal(t, "Sophia_Report_Asha.pdf", params["filename"])
}

func TestGetReportNotFound(t *testing.T) {
	r := newTestRouter(&fakeAssessmentService{}, &fakeReportService{err: apperrors.ErrStudentNotFound})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Student not found"}`, w.Body.String())
}

func TestGetReportInvalidID(t *testing.T) {
	for _, id := range []string{"abc", "1.5", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			reports := &fakeReportService{}
			r := newTestRouter(&fakeAssessmentService{}, reports)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report/"+id, nil))

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Zero(t, reports.gotID)
		})
	}
}

func TestGetReportRenderFailure(t *testing.T) {
	r := newTestRouter(&fakeAssessmentService{}, &fakeReportService{err: apperrors.ErrReportRenderFailed})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/report/1", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&fakeAssessmentService{}, &fakeReportService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

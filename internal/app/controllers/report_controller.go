package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sophiaacademy/careerguide/internal/app/services"
	"github.com/sophiaacademy/careerguide/internal/middleware"
	"github.com/sophiaacademy/careerguide/internal/pkg/report"
)

// ReportController serves generated guidance reports
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetReport downloads the PDF report of a stored assessment
// @Summary Download a guidance report
// @Description Renders the stored scores of a student as a PDF attachment named Sophia_Report_<name>.pdf
// @Tags reports
// @Produce application/pdf
// @Produce json
// @Param student_id path int true "Student ID" Format(int64)
// @Success 200 {file} file "PDF report"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /report/{student_id} [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("student_id"), 10, 64)
	if err != nil {
		middleware.RespondInvalidParam(ctx, "student_id", "student_id must be an integer")
		return
	}

	file, err := c.reportService.Generate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", report.ContentDisposition(file.Filename))
	ctx.Data(http.StatusOK, file.ContentType, file.Data)
}

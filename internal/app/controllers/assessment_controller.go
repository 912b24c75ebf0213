package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sophiaacademy/careerguide/internal/app/models/dto"
	"github.com/sophiaacademy/careerguide/internal/app/services"
	"github.com/sophiaacademy/careerguide/internal/middleware"
)

// AssessmentController handles questionnaire submissions
type AssessmentController struct {
	assessmentService services.AssessmentService
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService services.AssessmentService) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
	}
}

// Submit scores and stores a completed questionnaire
// @Summary Submit a questionnaire
// @Description Scores the responses, stores them with the student information and returns the result.
// @Description Unanswered questions count as neutral (3). Keys that are not question ids 1..60 are ignored.
// @Tags assessments
// @Accept json
// @Produce json
// @Param request body dto.SubmitAssessmentRequest true "Student information and responses"
// @Success 200 {object} dto.SubmitAssessmentResponse "Assessment stored"
// @Failure 422 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	var req dto.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondBindingError(ctx, err)
		return
	}

	record, err := c.assessmentService.Submit(ctx, req.StudentInfo.ToStudentInfo(), req.Responses)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSubmitAssessmentResponse(record))
}

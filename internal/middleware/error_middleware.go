package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sophiaacademy/careerguide/internal/app/models/dto"
	"github.com/sophiaacademy/careerguide/internal/pkg/apperrors"
	"github.com/sophiaacademy/careerguide/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every body carries a
// "detail" message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			apperrors.StatusMessage(err, "Resource not found"),
		))
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
			"Validation failed",
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))
	case errors.Is(err, apperrors.ErrReportRenderFailed):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Report rendering failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			"Report could not be generated",
			dto.NewErrorDetail(dto.ErrorCodeRenderFailed, "Report could not be generated"),
		))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}

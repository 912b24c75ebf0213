package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sophiaacademy/careerguide/internal/app/models/dto"
	"github.com/sophiaacademy/careerguide/internal/pkg/validation"
)

// RegisterValidation makes gin's binding validator report JSON field names.
func RegisterValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterJSONTagNames(v)
	}
}

// RespondBindingError writes the 422 response for a request that could not be
// bound.
func RespondBindingError(c *gin.Context, err error) {
	fieldErrs := validation.Describe(err)
	details := make([]dto.ErrorDetail, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		code := dto.ErrorCodeValidationFailed
		if fe.Field == "" {
			code = dto.ErrorCodeInvalidJSON
		}
		details = append(details, dto.NewErrorDetail(code, fe.Message).WithField(fe.Field))
	}

	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("Validation failed", details...))
}

// RespondInvalidParam writes the 422 response for a malformed path parameter.
func RespondInvalidParam(c *gin.Context, param, message string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(
		"Validation failed",
		dto.NewErrorDetail(dto.ErrorCodeInvalidParam, message).WithField(param),
	))
}

package dto

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeInvalidJSON      ErrorCode = "VAL_002"
	ErrorCodeInvalidParam     ErrorCode = "VAL_003"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeRenderFailed   ErrorCode = "SRV_004"
)

// ErrorDetail describes a single problem with a request
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VAL_001"`
	Message string    `json:"message" example:"name is required"`
	Field   string    `json:"field,omitempty" example:"student_info.name"`
}

// ErrorResponse is the body of every non-2xx response. Detail is always set;
// Errors is only present for validation failures.
type ErrorResponse struct {
	Detail string        `json:"detail" example:"Student not found"`
	Errors []ErrorDetail `json:"errors,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) ErrorDetail {
	return ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e ErrorDetail) WithField(field string) ErrorDetail {
	e.Field = field
	return e
}

// NewErrorResponse creates an error body with optional details
func NewErrorResponse(detail string, errs ...ErrorDetail) ErrorResponse {
	return ErrorResponse{
		Detail: detail,
		Errors: errs,
	}
}

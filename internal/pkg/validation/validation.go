package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a human readable problem with one request field
type FieldError struct {
	Field   string
	Message string
}

// JSONTagName makes validator report fields by their JSON name.
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// RegisterJSONTagNames configures v to use JSON field names in errors.
func RegisterJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(JSONTagName)
}

// Describe turns a binding error into field errors. Errors that are not
// about a particular field yield a single entry with an empty Field.
func Describe(err error) []FieldError {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
	)

	switch {
	case errors.As(err, &validationErrs):
		out := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			out = append(out, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: formatValidationError(fe),
			})
		}
		return out
	case errors.As(err, &typeErr):
		field := typeErr.Field
		return []FieldError{{
			Field:   field,
			Message: field + " must be of type " + typeErr.Type.String(),
		}}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []FieldError{{Message: "request body is not valid JSON"}}
	case errors.Is(err, io.EOF):
		return []FieldError{{Message: "request body is empty"}}
	default:
		return []FieldError{{Message: err.Error()}}
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fieldPath(e.Namespace()) + " is required"
	case "min":
		return fieldPath(e.Namespace()) + " must be at least " + e.Param()
	case "max":
		return fieldPath(e.Namespace()) + " must be at most " + e.Param()
	case "oneof":
		return fieldPath(e.Namespace()) + " must be one of: " + e.Param()
	default:
		return fieldPath(e.Namespace()) + " validation failed: " + e.Tag()
	}
}

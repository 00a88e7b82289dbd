package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/ayeshchamikara/gradepoint/internal/app/models/dto"
)

// HandleValidationError turns a binding failure into the standard error
// detail, with per-field messages when the failure came from struct
// validation.
func HandleValidationError(err error) *dto.ErrorDetail {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, formatValidationError(fe))
		}
		return detail.WithDetails(messages)
	}

	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

package exceptions

import (
	"brokerage-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError turns the first field error from the validator
// into a client-readable message using the tag message catalog.
func FormatFirstValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	fieldError := validationErrors[0]
	message, ok := constvars.CustomValidationErrorMessages[fieldError.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid", strings.ToLower(fieldError.Field()))
	}
	if strings.Contains(message, "%s") {
		message = fmt.Sprintf(message, fieldError.Param())
	}
	return fmt.Sprintf("%s %s", strings.ToLower(fieldError.Field()), message)
}

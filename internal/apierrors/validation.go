package apierrors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ValidationError builds a 400 APIError from binding failures, keyed by the
// request's snake_case field names.
func ValidationError(validationErrs validator.ValidationErrors) *APIError {
	details := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details[fieldName(fieldErr)] = validationMessage(fieldErr)
	}
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Code:       CodeValidationFailed,
		Message:    joinDetails(details),
		Details:    details,
	}
}

func joinDetails(details map[string]string) string {
	if len(details) == 0 {
		return "Invalid request"
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, details[k])
	}
	return strings.Join(messages, "; ")
}

func validationMessage(fieldErr validator.FieldError) string {
	field := fieldName(fieldErr)

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldName converts a Go field name such as ClientID to client_id.
func fieldName(fieldErr validator.FieldError) string {
	name := fieldErr.Field()
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

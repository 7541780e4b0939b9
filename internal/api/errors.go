package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AdrianTrill/travel-content-hub/internal/generation"
	"github.com/AdrianTrill/travel-content-hub/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Upstream quota exhaustion is surfaced distinctly so clients can tell
	// it apart from a transient outage.
	case errors.Is(err, generation.ErrQuotaExceeded):
		return http.StatusTooManyRequests

	// Every candidate model failed
	case errors.Is(err, generation.ErrDispatchExhausted),
		errors.Is(err, generation.ErrNoCandidates):
		return http.StatusBadGateway

	// Not found errors
	case errors.Is(err, store.ErrContentNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrQuotaExceeded):
		return "Text generation quota exceeded, please try again later"

	case errors.Is(err, generation.ErrDispatchExhausted),
		errors.Is(err, generation.ErrNoCandidates):
		return "Text generation is currently unavailable"

	case errors.Is(err, store.ErrContentNotFound):
		return "Content not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid content data"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'GenerateContentRequest.Destination' Error:Field
		// validation for 'Destination' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

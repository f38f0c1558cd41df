package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/task-api/internal/domain"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Not-found is reported as 400 rather than 404 to stay compatible with
// existing clients of this API.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err. Domain
// errors carry their own message; anything else gets a generic one so
// internal details do not leak.
func GetSafeErrorMessage(err error) string {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message

	case errors.As(err, &notFoundErr):
		return notFoundErr.Error()

	default:
		return "An unexpected error occurred"
	}
}

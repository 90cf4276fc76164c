package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/jobfit-analyzer/internal/analysis"
	"github.com/jonathan/jobfit-analyzer/internal/fetch"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates the requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrStoreUnavailable indicates the server runs without a database
type ErrStoreUnavailable struct{}

func (e *ErrStoreUnavailable) Error() string {
	return "persistence is not configured; start the server with a database URL"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr   *ErrValidation
		notFoundErr     *ErrNotFound
		storeErr        *ErrStoreUnavailable
		missingInputErr *analysis.MissingInputError
		fetchErr        *fetch.Error
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &missingInputErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &storeErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

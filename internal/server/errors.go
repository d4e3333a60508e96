// Package server provides the HTTP REST API for the crowdwork analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/crowdwork-analyzer/internal/runs"
)

// ErrValidation indicates a request body that failed validation.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
//
// A run's eventual failure is never surfaced here: submissions always
// succeed once accepted, and callers observe run failures by polling.
func HTTPStatus(err error) int {
	var notFound *runs.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var validation *ErrValidation
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

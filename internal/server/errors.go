// Package server provides the HTTP REST API for the cv-optimizer pipeline.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/optimization"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Client-side input problems map to 4xx; capability faults surface as 502 so
// callers can distinguish them from bugs in this service.
func HTTPStatus(err error) int {
	var ingErr *ingestion.Error
	if errors.As(err, &ingErr) {
		switch ingErr.Category {
		case ingestion.CategoryUnsupportedFormat,
			ingestion.CategoryPasswordProtected,
			ingestion.CategoryCorruptDocument,
			ingestion.CategoryDocxReadFailure:
			return http.StatusBadRequest
		case ingestion.CategoryRenderFailure,
			ingestion.CategoryOCREmptyResult:
			return http.StatusUnprocessableEntity
		case ingestion.CategoryOCRCapabilityFailure:
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	}

	switch {
	case errors.Is(err, optimization.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, optimization.ErrMalformedOutput),
		errors.Is(err, optimization.ErrGenerationFailure):
		return http.StatusBadGateway
	}

	var valErr *ErrValidation
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

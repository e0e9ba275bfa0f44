package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-optimizer/internal/ingestion"
	"github.com/jonathan/cv-optimizer/internal/optimization"
)

func TestHTTPStatusIngestionCategories(t *testing.T) {
	tests := []struct {
		category ingestion.Category
		want     int
	}{
		{ingestion.CategoryUnsupportedFormat, http.StatusBadRequest},
		{ingestion.CategoryPasswordProtected, http.StatusBadRequest},
		{ingestion.CategoryCorruptDocument, http.StatusBadRequest},
		{ingestion.CategoryDocxReadFailure, http.StatusBadRequest},
		{ingestion.CategoryRenderFailure, http.StatusUnprocessableEntity},
		{ingestion.CategoryOCREmptyResult, http.StatusUnprocessableEntity},
		{ingestion.CategoryOCRCapabilityFailure, http.StatusBadGateway},
		{ingestion.CategoryGenericReadFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			err := &ingestion.Error{Category: tt.category}
			assert.Equal(t, tt.want, HTTPStatus(err))
		})
	}
}

func TestHTTPStatusOptimizationErrors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(optimization.ErrInvalidCredential))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(optimization.ErrMalformedOutput))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(optimization.ErrGenerationFailure))

	wrapped := fmt.Errorf("optimize: %w", optimization.ErrInvalidCredential)
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(wrapped))
}

func TestHTTPStatusValidationAndUnknown(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "cv_text", Message: "required"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("something broke")))
}

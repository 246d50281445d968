// Package server provides the HTTP REST API for the lead scripter.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/lead-scripter/internal/pipeline"
)

// processingErrorMessage is the generic error string returned for all
// processing (non-validation) failures.
const processingErrorMessage = "Failed to generate script"

// HTTPStatus returns the appropriate HTTP status code for an error.
// Validation failures map to 400; everything else that escapes the pipeline
// (missing credentials, generation failures) is a processing failure.
func HTTPStatus(err error) int {
	var validationErr *pipeline.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

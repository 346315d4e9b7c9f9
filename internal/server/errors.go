// Package server provides the HTTP REST API for ScholarSync.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/ingestion"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/scholar"
	"github.com/Devarora13/scholarsync-resume-integration-Dev-Arora/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrMissingFile indicates the multipart upload did not carry the expected file field
type ErrMissingFile struct {
	Field string
}

func (e *ErrMissingFile) Error() string {
	return fmt.Sprintf("missing file: no %q field in upload", e.Field)
}

// ErrFileTooLarge indicates an upload exceeding the configured size cap
type ErrFileTooLarge struct {
	MaxBytes int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("file too large: limit is %d bytes", e.MaxBytes)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr   *ErrValidation
		missingFileErr  *ErrMissingFile
		tooLargeErr     *ErrFileTooLarge
		unsupportedErr  *ingestion.UnsupportedTypeError
		decodeErr       *ingestion.DecodeError
		invalidURLErr   *scholar.InvalidURLError
		schemaErr       *schemas.ValidationError
		blockedErr      *scholar.BlockedError
		fetchErr        *scholar.FetchError
		unresolvableErr *scholar.ProfileUnresolvableError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &missingFileErr),
		errors.As(err, &unsupportedErr),
		errors.As(err, &decodeErr),
		errors.As(err, &invalidURLErr),
		errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &blockedErr),
		errors.As(err, &fetchErr),
		errors.As(err, &unresolvableErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

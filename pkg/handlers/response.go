// Package handlers contains the HTTP layer: request decoding, response
// encoding, and error-to-status translation.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/querylab/analytics-engine/pkg/apperrors"
)

// ErrorResponse writes a JSON error body and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, errorCode, detail string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":  errorCode,
		"detail": detail,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteServiceError translates a service error into an HTTP status and
// `{error, detail}` body using the sentinel error taxonomy.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		_ = ErrorResponse(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		_ = ErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, apperrors.ErrUpstream):
		_ = ErrorResponse(w, http.StatusBadGateway, "upstream_failure", err.Error())
	case errors.Is(err, apperrors.ErrExecution):
		_ = ErrorResponse(w, http.StatusInternalServerError, "execution_failure", err.Error())
	case errors.Is(err, apperrors.ErrPersistence):
		_ = ErrorResponse(w, http.StatusInternalServerError, "persistence_failure", err.Error())
	default:
		_ = ErrorResponse(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

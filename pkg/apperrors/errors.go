// Package apperrors defines the closed error taxonomy shared across services.
// Handlers translate these sentinels to HTTP status codes at the boundary;
// nothing below the handler layer knows about transport codes.
package apperrors

import "errors"

var (
	// ErrNotFound indicates a requested table (or other entity) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a malformed request: empty required fields,
	// columns not present in the schema, bad filter operators.
	ErrValidation = errors.New("validation failed")

	// ErrUpstream indicates an LLM provider failure (auth, rate limit, timeout).
	ErrUpstream = errors.New("upstream provider failure")

	// ErrExecution indicates a SQL execution failure in the report executor.
	ErrExecution = errors.New("query execution failed")

	// ErrPersistence indicates an admin ticket write failure.
	ErrPersistence = errors.New("persistence failure")
)

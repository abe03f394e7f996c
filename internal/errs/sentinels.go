// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates a field failed validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingFields indicates a required field was absent from the payload.
	ErrMissingFields = errors.New("missing required fields")

	// ErrBadReference indicates a foreign key points to a nonexistent record.
	ErrBadReference = errors.New("bad reference")

	// ErrHasDependents indicates a delete was blocked by referencing records.
	ErrHasDependents = errors.New("has dependents")
)

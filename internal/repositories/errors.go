package repositories

import "errors"

// Sentinel errors shared by all repositories. Services and handlers branch
// on these with errors.Is to map persistence failures to HTTP statuses.
var (
	// ErrNotFound is returned when an identifier does not resolve to a record.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a write would violate a uniqueness or
	// referential constraint, e.g. deleting a doctor that still has patients.
	ErrConflict = errors.New("constraint conflict")
)

package store

import "errors"

// Error Handling Guidelines:
// - Stores: return these sentinels or wrap driver errors with fmt.Errorf("context: %w", err)
// - Services: translate sentinels into apperrors for handlers

var (
	// ErrNotFound indicates that a requested trip does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict indicates a trip with the same id already exists.
	ErrConflict = errors.New("conflict")
)

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSnapshot indicates an import payload that is not a
	// full-store snapshot (bad JSON or missing folders/documents).
	// Nothing is written when it is returned.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidDocument indicates a single-document import payload
	// missing its title or sections. Nothing is written.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrStorage indicates the underlying persistence medium failed.
	// Services surface this single generic signal on write failures;
	// the cause is logged, not propagated.
	ErrStorage = errors.New("storage failure")
)

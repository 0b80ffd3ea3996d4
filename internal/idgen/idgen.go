// Package idgen generates unique identifiers for folders, documents
// and versions.
//
// Identifiers are UUIDv7 strings: time-prefixed, so ids sort roughly
// by creation order, and collision-resistant within a store. They are
// NOT assumed globally unique across stores; the backup import path
// detects and regenerates colliding ids explicitly.
package idgen

import "github.com/google/uuid"

// New returns a fresh identifier.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Entropy exhaustion is the only failure mode; a random v4
		// keeps ids unique at the cost of time ordering.
		return uuid.NewString()
	}
	return id.String()
}

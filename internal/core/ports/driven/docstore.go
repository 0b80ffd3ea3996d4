package driven

import (
	"context"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// DocumentStore persists documents with their version histories.
// Backed by SQLite for durable storage.
//
// List may return records persisted by an old release that lack a
// history; the service layer normalises those on read. The store
// itself never rewrites them.
type DocumentStore interface {
	// List returns all documents, most recently created first.
	List(ctx context.Context) ([]domain.Document, error)

	// Save stores or updates a document (keyed by surrogate id).
	Save(ctx context.Context, doc *domain.Document) error

	// Delete removes a document by id. Deleting an unknown id is not
	// an error.
	Delete(ctx context.Context, id string) error

	// ReplaceAll overwrites the entire document set. Used only by the
	// full-snapshot import path.
	ReplaceAll(ctx context.Context, docs []domain.Document) error
}

package driving

import (
	"context"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// BackupService serialises the whole store to a transportable
// snapshot and restores from one. It also imports single documents
// shared from another store.
type BackupService interface {
	// Export gathers folders, documents and settings into a snapshot.
	// Pure read; the store is not mutated.
	Export(ctx context.Context) (*domain.Snapshot, error)

	// ExportJSON returns the snapshot as indented JSON, the on-disk
	// backup format.
	ExportJSON(ctx context.Context) ([]byte, error)

	// Import wholesale-replaces folders, documents and (when present)
	// settings from a snapshot. A payload missing folders or
	// documents fails with ErrInvalidSnapshot and writes nothing.
	// The caller is expected to have confirmed the overwrite.
	Import(ctx context.Context, raw []byte) error

	// ImportDocument inserts one document from an external export.
	// A colliding id is regenerated (the existing document is never
	// touched), an unknown folder falls back to the default folder,
	// and a payload without title or sections fails with
	// ErrInvalidDocument.
	ImportDocument(ctx context.Context, raw []byte) (*domain.Document, error)
}

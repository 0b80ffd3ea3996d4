package driven

import (
	"context"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// FolderStore persists the folder forest.
//
// There is deliberately no Delete: folder deletion is not part of the
// current scope, so the port does not pretend to support it.
type FolderStore interface {
	// List returns all folders in insertion order.
	List(ctx context.Context) ([]domain.Folder, error)

	// Save stores or updates a folder.
	Save(ctx context.Context, folder domain.Folder) error

	// ReplaceAll overwrites the entire folder set. Used only by the
	// full-snapshot import path.
	ReplaceAll(ctx context.Context, folders []domain.Folder) error
}

package driving

import (
	"context"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// FolderService manages the folder hierarchy.
type FolderService interface {
	// List returns all folders. An empty store yields the lazily
	// created default folder; repeated calls are idempotent.
	List(ctx context.Context) ([]domain.Folder, error)

	// Create appends a folder. A nil parentID creates a root folder.
	// The parent is not validated; the caller is trusted.
	Create(ctx context.Context, name string, parentID *string) (*domain.Folder, error)

	// Children returns the folders directly under the given folder.
	Children(ctx context.Context, folderID string) ([]domain.Folder, error)
}

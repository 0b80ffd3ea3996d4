package driving

import (
	"context"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// DocumentService manages stored analyses and their histories.
type DocumentService interface {
	// List returns all documents with legacy records normalised.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByFolder returns the documents directly in a folder,
	// most recently touched first.
	ListByFolder(ctx context.Context, folderID string) ([]domain.Document, error)

	// Get retrieves a document by id.
	Get(ctx context.Context, docID string) (*domain.Document, error)

	// Save stores an analysis for (folderID, fileName). If a document
	// with that identity exists it gains a new revision; otherwise a
	// new document is created. At most one document exists per
	// identity at any time.
	Save(ctx context.Context, content domain.AnalysisContent, folderID, fileName string) (*domain.Document, error)

	// Move reassigns a document to another folder and returns the
	// full updated list. The target folder is not validated.
	Move(ctx context.Context, docID, targetFolderID string) ([]domain.Document, error)

	// Delete removes a document permanently. The caller is expected
	// to have confirmed the action with the user.
	Delete(ctx context.Context, docID string) error
}

package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/core/ports/driven"
	"github.com/markpy98/masteryai/internal/core/ports/driving"
	"github.com/markpy98/masteryai/internal/idgen"
	"github.com/markpy98/masteryai/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages stored analyses and their histories.
type DocumentService struct {
	mu       sync.Mutex
	docStore driven.DocumentStore
}

// NewDocumentService creates a new document service.
func NewDocumentService(docStore driven.DocumentStore) *DocumentService {
	return &DocumentService{
		docStore: docStore,
	}
}

// List returns all documents with legacy records normalised.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(ctx), nil
}

// list reads and migrates without the lock, for callers holding it.
// A storage failure degrades to an empty library.
func (s *DocumentService) list(ctx context.Context) []domain.Document {
	records, err := s.docStore.List(ctx)
	if err != nil {
		logger.Warn("listing documents: %v", err)
		return []domain.Document{}
	}

	docs := make([]domain.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, migrateDocument(rec))
	}
	return docs
}

// ListByFolder returns the documents directly in a folder, most
// recently touched first.
func (s *DocumentService) ListByFolder(ctx context.Context, folderID string) ([]domain.Document, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	inFolder := make([]domain.Document, 0)
	for _, d := range docs {
		if d.FolderID == folderID {
			inFolder = append(inFolder, d)
		}
	}
	sort.SliceStable(inFolder, func(i, j int) bool {
		return inFolder[i].CreatedAt.After(inFolder[j].CreatedAt)
	})
	return inFolder, nil
}

// Get retrieves a document by id.
func (s *DocumentService) Get(ctx context.Context, docID string) (*domain.Document, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == docID {
			return &docs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// Save stores an analysis under the (folderID, fileName) identity.
// Re-saving an existing identity prepends a revision and refreshes the
// mirrored content; a new identity creates a new document. Prior
// content is always recoverable through the history.
func (s *DocumentService) Save(ctx context.Context, content domain.AnalysisContent, folderID, fileName string) (*domain.Document, error) {
	if folderID == "" || fileName == "" {
		return nil, fmt.Errorf("folder id and file name are required: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.docStore.List(ctx)
	if err != nil {
		logger.Warn("reading documents before save: %v", err)
		return nil, fmt.Errorf("reading documents: %w", domain.ErrStorage)
	}

	now := time.Now().UTC()

	for i := range records {
		if !records[i].SameIdentity(folderID, fileName) {
			continue
		}

		// Re-analysis of a known source: new revision on top.
		doc := migrateDocument(records[i])
		version := domain.AnalysisVersion{
			ID:        idgen.New(),
			Timestamp: now,
			Data:      content,
			Note:      domain.RevisionNote(len(doc.History) + 1),
		}
		doc.History = append([]domain.AnalysisVersion{version}, doc.History...)
		doc.AnalysisContent = content
		doc.CreatedAt = now

		if err := s.docStore.Save(ctx, &doc); err != nil {
			logger.Warn("saving revision: %v", err)
			return nil, fmt.Errorf("saving document: %w", domain.ErrStorage)
		}
		logger.Debug("saved %s to document %s", version.Note, doc.ID)
		return &doc, nil
	}

	// First analysis of this source.
	version := domain.AnalysisVersion{
		ID:        idgen.New(),
		Timestamp: now,
		Data:      content,
		Note:      domain.NoteOriginalVersion,
	}
	doc := domain.Document{
		ID:              idgen.New(),
		FolderID:        folderID,
		FileName:        fileName,
		CreatedAt:       now,
		AnalysisContent: content,
		History:         []domain.AnalysisVersion{version},
	}

	if err := s.docStore.Save(ctx, &doc); err != nil {
		logger.Warn("saving new document: %v", err)
		return nil, fmt.Errorf("saving document: %w", domain.ErrStorage)
	}
	logger.Debug("created document %s for %s/%s", doc.ID, folderID, fileName)
	return &doc, nil
}

// Move reassigns a document to another folder. Only the matching
// document is rewritten; the full updated list is returned.
func (s *DocumentService) Move(ctx context.Context, docID, targetFolderID string) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.docStore.List(ctx)
	if err != nil {
		logger.Warn("reading documents before move: %v", err)
		return nil, fmt.Errorf("reading documents: %w", domain.ErrStorage)
	}

	for i := range records {
		if records[i].ID != docID {
			continue
		}
		records[i].FolderID = targetFolderID
		if err := s.docStore.Save(ctx, &records[i]); err != nil {
			logger.Warn("moving document: %v", err)
			return nil, fmt.Errorf("moving document: %w", domain.ErrStorage)
		}
		break
	}

	return s.list(ctx), nil
}

// Delete removes a document permanently. There is no undo and no
// cascade; versions go with the document.
func (s *DocumentService) Delete(ctx context.Context, docID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.docStore.Delete(ctx, docID); err != nil {
		logger.Warn("deleting document: %v", err)
		return fmt.Errorf("deleting document: %w", domain.ErrStorage)
	}
	return nil
}

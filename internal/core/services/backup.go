package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/core/ports/driven"
	"github.com/markpy98/masteryai/internal/core/ports/driving"
	"github.com/markpy98/masteryai/internal/idgen"
	"github.com/markpy98/masteryai/internal/logger"
)

// importedTitleSuffix marks a document whose id collided on import.
const importedTitleSuffix = " (Imported)"

// Ensure BackupService implements the interface.
var _ driving.BackupService = (*BackupService)(nil)

// BackupService composes the folder, document and settings services
// for bulk export and import.
type BackupService struct {
	mu          sync.Mutex
	folders     driving.FolderService
	documents   driving.DocumentService
	settings    driving.SettingsService
	folderStore driven.FolderStore
	docStore    driven.DocumentStore
}

// NewBackupService creates a new backup service.
func NewBackupService(
	folders driving.FolderService,
	documents driving.DocumentService,
	settings driving.SettingsService,
	folderStore driven.FolderStore,
	docStore driven.DocumentStore,
) *BackupService {
	return &BackupService{
		folders:     folders,
		documents:   documents,
		settings:    settings,
		folderStore: folderStore,
		docStore:    docStore,
	}
}

// Export gathers the current folders, documents and settings into a
// snapshot. Documents are exported in the migrated (current) shape so
// a snapshot never carries the legacy format forward.
func (s *BackupService) Export(ctx context.Context) (*domain.Snapshot, error) {
	folders, err := s.folders.List(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.documents.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Folders:    folders,
		Documents:  docs,
		Settings:   settings,
		Version:    domain.SnapshotVersion,
		ExportedAt: time.Now().UTC(),
	}, nil
}

// ExportJSON returns the snapshot as indented JSON. The export file
// is user-facing, so readability wins over compactness.
func (s *BackupService) ExportJSON(ctx context.Context) ([]byte, error) {
	snapshot, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// snapshotPayload is the import-side view of a snapshot. Pointer
// slices distinguish an absent key from an empty list: a snapshot
// with zero documents is valid, one without a documents key is not.
type snapshotPayload struct {
	Folders    *[]domain.Folder   `json:"folders"`
	Documents  *[]domain.Document `json:"documents"`
	Settings   *domain.Settings   `json:"settings"`
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exportedAt"`
}

// Validate checks that the payload carries both mandatory keys.
func (p snapshotPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Folders, validation.NotNil),
		validation.Field(&p.Documents, validation.NotNil),
	)
}

// Import wholesale-replaces the store's contents from a snapshot.
// This is a destructive overwrite, not a merge; validation happens
// before the first write so a malformed payload leaves the store
// untouched.
func (s *BackupService) Import(ctx context.Context, raw []byte) error {
	var payload snapshotPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		logger.Warn("parsing snapshot: %v", err)
		return fmt.Errorf("parsing snapshot: %w", domain.ErrInvalidSnapshot)
	}
	if err := payload.Validate(); err != nil {
		logger.Warn("rejecting snapshot: %v", err)
		return fmt.Errorf("%v: %w", err, domain.ErrInvalidSnapshot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.folderStore.ReplaceAll(ctx, *payload.Folders); err != nil {
		logger.Warn("replacing folders: %v", err)
		return fmt.Errorf("replacing folders: %w", domain.ErrStorage)
	}
	if err := s.docStore.ReplaceAll(ctx, *payload.Documents); err != nil {
		logger.Warn("replacing documents: %v", err)
		return fmt.Errorf("replacing documents: %w", domain.ErrStorage)
	}

	if payload.Settings != nil {
		// Foreign snapshots may carry enum values this release does
		// not know; normalise instead of failing a half-done import.
		normalized := payload.Settings.Normalized()
		if err := s.settings.Save(&normalized); err != nil {
			logger.Warn("restoring settings: %v", err)
			return fmt.Errorf("restoring settings: %w", domain.ErrStorage)
		}
	}

	logger.Info("imported snapshot: %d folders, %d documents", len(*payload.Folders), len(*payload.Documents))
	return nil
}

// ImportDocument inserts one document from an external export.
//
// An id collision with a stored document never merges: the import is
// treated as a new entity with a fresh id, a marked title and a reset
// creation time. A folder reference the store cannot resolve falls
// back to the default folder.
func (s *BackupService) ImportDocument(ctx context.Context, raw []byte) (*domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		logger.Warn("parsing document: %v", err)
		return nil, fmt.Errorf("parsing document: %w", domain.ErrInvalidDocument)
	}
	if err := validateImportedContent(doc.AnalysisContent); err != nil {
		logger.Warn("rejecting document: %v", err)
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidDocument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.docStore.List(ctx)
	if err != nil {
		logger.Warn("reading documents before import: %v", err)
		return nil, fmt.Errorf("reading documents: %w", domain.ErrStorage)
	}

	for _, d := range existing {
		if d.ID == doc.ID {
			// Same surrogate id from another store: regenerate rather
			// than trust it, leaving the stored document untouched.
			doc.ID = idgen.New()
			doc.Title += importedTitleSuffix
			doc.CreatedAt = time.Now().UTC()
			break
		}
	}

	folders, err := s.folders.List(ctx)
	if err != nil {
		return nil, err
	}
	repairFolderID(&doc, folders)

	if err := s.docStore.Save(ctx, &doc); err != nil {
		logger.Warn("saving imported document: %v", err)
		return nil, fmt.Errorf("saving imported document: %w", domain.ErrStorage)
	}
	return &doc, nil
}

// validateImportedContent checks the only two things the store cares
// about in an analysis payload: a title and a sections list. Section
// contents stay opaque.
func validateImportedContent(content domain.AnalysisContent) error {
	return validation.ValidateStruct(&content,
		validation.Field(&content.Title, validation.Required),
		validation.Field(&content.Sections, validation.NotNil),
	)
}

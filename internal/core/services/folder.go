package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/core/ports/driven"
	"github.com/markpy98/masteryai/internal/core/ports/driving"
	"github.com/markpy98/masteryai/internal/idgen"
	"github.com/markpy98/masteryai/internal/logger"
)

// Ensure FolderService implements the interface.
var _ driving.FolderService = (*FolderService)(nil)

// FolderService manages the folder hierarchy.
type FolderService struct {
	mu          sync.Mutex
	folderStore driven.FolderStore
}

// NewFolderService creates a new folder service.
func NewFolderService(folderStore driven.FolderStore) *FolderService {
	return &FolderService{
		folderStore: folderStore,
	}
}

// List returns all folders, lazily creating the default folder when
// the store is empty.
func (s *FolderService) List(ctx context.Context) ([]domain.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list(ctx)
}

// list is List without the lock, for callers that already hold it.
func (s *FolderService) list(ctx context.Context) ([]domain.Folder, error) {
	folders, err := s.folderStore.List(ctx)
	if err != nil {
		logger.Warn("listing folders: %v", err)
		folders = nil
	}

	if len(folders) > 0 {
		return folders, nil
	}

	// Empty store: seed the default folder. The returned list stays
	// usable even if persisting the seed fails.
	def := domain.NewDefaultFolder(time.Now().UTC())
	if err := s.folderStore.Save(ctx, def); err != nil {
		logger.Warn("persisting default folder: %v", err)
	} else {
		logger.Debug("created default folder %q", def.Name)
	}
	return []domain.Folder{def}, nil
}

// Create appends a folder under the given parent (nil for a root).
func (s *FolderService) Create(ctx context.Context, name string, parentID *string) (*domain.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("folder name must not be blank: %w", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Seed the default folder first so a brand-new store never ends
	// up with a user folder but no fallback target.
	if _, err := s.list(ctx); err != nil {
		return nil, err
	}

	folder := domain.Folder{
		ID:        idgen.New(),
		Name:      name,
		ParentID:  parentID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.folderStore.Save(ctx, folder); err != nil {
		logger.Warn("saving folder: %v", err)
		return nil, fmt.Errorf("saving folder: %w", domain.ErrStorage)
	}
	return &folder, nil
}

// Children returns the folders directly under the given folder.
func (s *FolderService) Children(ctx context.Context, folderID string) ([]domain.Folder, error) {
	folders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	children := make([]domain.Folder, 0)
	for _, f := range folders {
		if f.ParentID != nil && *f.ParentID == folderID {
			children = append(children, f)
		}
	}
	return children, nil
}

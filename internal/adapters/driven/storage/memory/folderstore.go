package memory

import (
	"context"
	"sync"

	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/core/ports/driven"
)

// Ensure FolderStore implements the interface.
var _ driven.FolderStore = (*FolderStore)(nil)

// FolderStore is an in-memory implementation of driven.FolderStore.
type FolderStore struct {
	mu      sync.RWMutex
	folders []domain.Folder
}

// NewFolderStore creates a new in-memory folder store.
func NewFolderStore() *FolderStore {
	return &FolderStore{}
}

// List returns all folders in insertion order.
func (s *FolderStore) List(_ context.Context) ([]domain.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Folder, len(s.folders))
	copy(out, s.folders)
	return out, nil
}

// Save stores or updates a folder.
func (s *FolderStore) Save(_ context.Context, folder domain.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.folders {
		if s.folders[i].ID == folder.ID {
			s.folders[i] = folder
			return nil
		}
	}
	s.folders = append(s.folders, folder)
	return nil
}

// ReplaceAll overwrites the entire folder set.
func (s *FolderStore) ReplaceAll(_ context.Context, folders []domain.Folder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = make([]domain.Folder, len(folders))
	copy(s.folders, folders)
	return nil
}

package services

import (
	"context"
	"errors"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// errDisk simulates a failing persistence medium.
var errDisk = errors.New("disk exploded")

// failingFolderStore fails every operation.
type failingFolderStore struct{}

func (failingFolderStore) List(context.Context) ([]domain.Folder, error) { return nil, errDisk }
func (failingFolderStore) Save(context.Context, domain.Folder) error     { return errDisk }
func (failingFolderStore) ReplaceAll(context.Context, []domain.Folder) error {
	return errDisk
}

// failingDocStore fails every operation.
type failingDocStore struct{}

func (failingDocStore) List(context.Context) ([]domain.Document, error) { return nil, errDisk }
func (failingDocStore) Save(context.Context, *domain.Document) error    { return errDisk }
func (failingDocStore) Delete(context.Context, string) error            { return errDisk }
func (failingDocStore) ReplaceAll(context.Context, []domain.Document) error {
	return errDisk
}

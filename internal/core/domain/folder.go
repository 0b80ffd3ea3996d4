package domain

import "time"

// DefaultFolderID is the well-known id of the fallback folder.
// It always exists (the library lazily creates it) and receives
// documents whose own folder can no longer be resolved.
const DefaultFolderID = "default"

// DefaultFolderName is the display name of the default folder.
const DefaultFolderName = "General"

// Folder is a named node in the user's organisational hierarchy.
// Folders form a forest: roots have a nil ParentID.
type Folder struct {
	// ID is the unique identifier for the folder.
	ID string `json:"id"`

	// Name is the human-readable folder name.
	Name string `json:"name"`

	// ParentID points to the containing folder, nil for roots.
	ParentID *string `json:"parentId"`

	// CreatedAt is when the folder was created.
	CreatedAt time.Time `json:"createdAt"`
}

// IsRoot returns true if the folder has no parent.
func (f Folder) IsRoot() bool {
	return f.ParentID == nil
}

// NewDefaultFolder returns the well-known default folder record.
func NewDefaultFolder(createdAt time.Time) Folder {
	return Folder{
		ID:        DefaultFolderID,
		Name:      DefaultFolderName,
		ParentID:  nil,
		CreatedAt: createdAt,
	}
}

// FolderExists reports whether a folder with the given id is present.
func FolderExists(folders []Folder, id string) bool {
	for _, f := range folders {
		if f.ID == id {
			return true
		}
	}
	return false
}

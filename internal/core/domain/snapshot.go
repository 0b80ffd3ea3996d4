package domain

import "time"

// SnapshotVersion is the schema version written into exports.
const SnapshotVersion = 1

// Snapshot is a complete, serialisable copy of the store: all
// folders, all documents (with histories) and the settings record.
// It is the wire format for backup export and full-store import.
type Snapshot struct {
	// Folders holds every folder in the store.
	Folders []Folder `json:"folders"`

	// Documents holds every document, each embedding its history.
	Documents []Document `json:"documents"`

	// Settings is the user preference record, if the exporting
	// store had one.
	Settings *Settings `json:"settings,omitempty"`

	// Version is the snapshot schema version.
	Version int `json:"version"`

	// ExportedAt is when the snapshot was produced.
	ExportedAt time.Time `json:"exportedAt"`
}

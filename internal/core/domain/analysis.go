package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// NoteOriginalVersion marks the first version of a document.
const NoteOriginalVersion = "Original version"

// RevisionNote returns the note for the nth saved revision.
func RevisionNote(n int) string {
	return fmt.Sprintf("Revision %d", n)
}

// AnalysisContent is the payload produced by the external analysis
// generator. The store treats it as opaque: sections are raw records
// rendered elsewhere, never interpreted here.
type AnalysisContent struct {
	// Title is the analysis title.
	Title string `json:"title"`

	// Summary is the general summary text.
	Summary string `json:"summary"`

	// Author is the detected author, if any.
	Author string `json:"author,omitempty"`

	// Sections holds the opaque per-section records.
	Sections []json.RawMessage `json:"sections"`
}

// AnalysisVersion is one immutable past snapshot of a document's
// content. Versions are created only by the save path and are never
// mutated or deleted afterwards.
type AnalysisVersion struct {
	// ID is the unique identifier for the version.
	ID string `json:"id"`

	// Timestamp is when the version was written.
	Timestamp time.Time `json:"timestamp"`

	// Data is the full content snapshot at that time.
	Data AnalysisContent `json:"data"`

	// Note is a human-readable label, e.g. "Original version".
	Note string `json:"note"`
}

// Document is a stored analysis tied to one source file, one folder
// and a full revision history (most recent first).
//
// The embedded AnalysisContent mirrors History[0].Data for render
// convenience. History[0].Data is the source of truth; the mirror is
// rewritten only by the save path and must never drift on its own.
type Document struct {
	// ID is the unique identifier for the document.
	ID string `json:"id"`

	// FolderID is the containing folder.
	FolderID string `json:"folderId"`

	// FileName is the source file name. Together with FolderID it
	// forms the document's logical identity: re-analysing the same
	// file in the same folder updates this document.
	FileName string `json:"fileName"`

	// CreatedAt doubles as last-modified: the save path bumps it on
	// every revision so listings surface recent work first.
	CreatedAt time.Time `json:"createdAt"`

	AnalysisContent

	// History holds all versions, most recent first. Records persisted
	// by old releases may lack it; reads normalise that shape.
	History []AnalysisVersion `json:"history,omitempty"`
}

// SameIdentity reports whether the document represents the given
// (folder, file name) pair.
func (d Document) SameIdentity(folderID, fileName string) bool {
	return d.FolderID == folderID && d.FileName == fileName
}

// ContentAt returns the content of the version with the given id.
// An unknown or empty id falls back to the current content, so a
// stale version reference from a caller degrades instead of failing.
func (d Document) ContentAt(versionID string) AnalysisContent {
	for _, v := range d.History {
		if v.ID == versionID {
			return v.Data
		}
	}
	return d.AnalysisContent
}

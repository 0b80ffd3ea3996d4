package services

import (
	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/idgen"
	"github.com/markpy98/masteryai/internal/logger"
)

// migrateDocument normalises a persisted record into the current
// shape. Records written before version history existed carry their
// content only in the top-level fields; they gain a single synthetic
// version timestamped at the record's creation.
//
// The migration is read-time only and idempotent: it never rewrites
// storage, so it runs again on every read until the document is next
// explicitly saved (at which point the write path produces the
// current shape naturally).
func migrateDocument(doc domain.Document) domain.Document {
	if len(doc.History) > 0 {
		return doc
	}

	doc.History = []domain.AnalysisVersion{{
		ID:        idgen.New(),
		Timestamp: doc.CreatedAt,
		Data:      doc.AnalysisContent,
		Note:      domain.NoteOriginalVersion,
	}}
	return doc
}

// repairFolderID reassigns a document to the default folder when its
// folder cannot be resolved, e.g. after importing from another store.
// Returns true if the document was changed.
func repairFolderID(doc *domain.Document, folders []domain.Folder) bool {
	if domain.FolderExists(folders, doc.FolderID) {
		return false
	}
	logger.Info("document %s references unknown folder %s, reassigning to default", doc.ID, doc.FolderID)
	doc.FolderID = domain.DefaultFolderID
	return true
}

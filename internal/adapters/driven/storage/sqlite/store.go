package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/markpy98/masteryai/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/markpy98/masteryai/internal/core/domain"
	"github.com/markpy98/masteryai/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all library store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.masteryai/data/library.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".masteryai", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "library.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FolderStore returns a FolderStore interface backed by this store.
func (s *Store) FolderStore() driven.FolderStore {
	return &folderStore{store: s}
}

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Folder Store ====================

// folderStore implements driven.FolderStore.
type folderStore struct {
	store *Store
}

var _ driven.FolderStore = (*folderStore)(nil)

// List returns all folders in insertion order.
func (s *folderStore) List(ctx context.Context) ([]domain.Folder, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, parent_id, created_at
		FROM folders
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying folders: %w", err)
	}
	defer rows.Close()

	var folders []domain.Folder //nolint:prealloc // size unknown from query
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		folders = append(folders, *folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating folders: %w", err)
	}

	return folders, nil
}

// Save stores or updates a folder.
func (s *folderStore) Save(ctx context.Context, folder domain.Folder) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO folders (id, name, parent_id, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			parent_id = excluded.parent_id,
			created_at = excluded.created_at
	`, folder.ID, folder.Name, folder.ParentID, folder.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving folder: %w", err)
	}
	return nil
}

// ReplaceAll overwrites the entire folder set.
func (s *folderStore) ReplaceAll(ctx context.Context, folders []domain.Folder) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM folders"); err != nil {
		return fmt.Errorf("clearing folders: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO folders (id, name, parent_id, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, folder := range folders {
		if _, err := stmt.ExecContext(ctx, folder.ID, folder.Name,
			folder.ParentID, folder.CreatedAt.UTC()); err != nil {
			return fmt.Errorf("inserting folder: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// scanFolder scans a folder from *sql.Rows.
func scanFolder(rows *sql.Rows) (*domain.Folder, error) {
	var folder domain.Folder
	var parentID sql.NullString
	var createdAt sql.NullTime

	if err := rows.Scan(&folder.ID, &folder.Name, &parentID, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning folder: %w", err)
	}

	if parentID.Valid {
		folder.ParentID = &parentID.String
	}
	if createdAt.Valid {
		folder.CreatedAt = createdAt.Time.UTC()
	}

	return &folder, nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// List returns all documents, most recently created first.
func (s *documentStore) List(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, folder_id, file_name, created_at, content, history
		FROM documents
		ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// Save stores or updates a document.
func (s *documentStore) Save(ctx context.Context, doc *domain.Document) error {
	contentJSON, historyJSON, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, folder_id, file_name, created_at, content, history)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			folder_id = excluded.folder_id,
			file_name = excluded.file_name,
			created_at = excluded.created_at,
			content = excluded.content,
			history = excluded.history
	`, doc.ID, doc.FolderID, doc.FileName, doc.CreatedAt.UTC(), contentJSON, historyJSON)

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Delete removes a document by id.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// ReplaceAll overwrites the entire document set.
func (s *documentStore) ReplaceAll(ctx context.Context, docs []domain.Document) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO documents (id, folder_id, file_name, created_at, content, history)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i := range docs {
		doc := &docs[i]
		contentJSON, historyJSON, err := encodeDocument(doc)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, doc.ID, doc.FolderID, doc.FileName,
			doc.CreatedAt.UTC(), contentJSON, historyJSON); err != nil {
			return fmt.Errorf("inserting document: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// encodeDocument serialises a document's content and history columns.
// A document without history gets a NULL history column, preserving
// the legacy shape unchanged.
func encodeDocument(doc *domain.Document) (string, sql.NullString, error) {
	contentJSON, err := json.Marshal(doc.AnalysisContent)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("marshalling content: %w", err)
	}

	var historyJSON sql.NullString
	if doc.History != nil {
		raw, err := json.Marshal(doc.History)
		if err != nil {
			return "", sql.NullString{}, fmt.Errorf("marshalling history: %w", err)
		}
		historyJSON = sql.NullString{String: string(raw), Valid: true}
	}

	return string(contentJSON), historyJSON, nil
}

// scanDocument scans a document from *sql.Rows.
func scanDocument(rows *sql.Rows) (*domain.Document, error) {
	var doc domain.Document
	var createdAt sql.NullTime
	var contentJSON string
	var historyJSON sql.NullString

	if err := rows.Scan(&doc.ID, &doc.FolderID, &doc.FileName,
		&createdAt, &contentJSON, &historyJSON); err != nil {
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	if createdAt.Valid {
		doc.CreatedAt = createdAt.Time.UTC()
	}

	if err := json.Unmarshal([]byte(contentJSON), &doc.AnalysisContent); err != nil {
		return nil, fmt.Errorf("unmarshaling content: %w", err)
	}

	if historyJSON.Valid {
		if err := json.Unmarshal([]byte(historyJSON.String), &doc.History); err != nil {
			return nil, fmt.Errorf("unmarshaling history: %w", err)
		}
	}

	return &doc, nil
}

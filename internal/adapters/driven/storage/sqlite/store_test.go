package sqlite

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markpy98/masteryai/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func testDocument(id, folderID, fileName string) *domain.Document {
	now := time.Now().UTC().Truncate(time.Second)
	content := domain.AnalysisContent{
		Title:    "Doc " + id,
		Summary:  "summary",
		Sections: []json.RawMessage{json.RawMessage(`{"heading":"h","body":"b"}`)},
	}
	return &domain.Document{
		ID:              id,
		FolderID:        folderID,
		FileName:        fileName,
		CreatedAt:       now,
		AnalysisContent: content,
		History: []domain.AnalysisVersion{
			{ID: id + "-v1", Timestamp: now, Data: content, Note: domain.NoteOriginalVersion},
		},
	}
}

// ==================== Store Creation and Initialization Tests ====================

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	// Verify database file was created
	dbPath := filepath.Join(tempDir, "library.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	// Verify database connection is working
	err = store.db.Ping()
	assert.NoError(t, err)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same database must not re-run applied migrations.
	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	var version int
	err = store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	if os.Getenv("HOME") == "" {
		t.Skip("no home directory available")
	}

	store, err := NewStore("")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	assert.Contains(t, store.Path(), ".masteryai")
	assert.Contains(t, store.Path(), "data")
	assert.Contains(t, store.Path(), "library.db")
}

// ==================== Folder Store Tests ====================

func TestFolderStore_SaveAndList(t *testing.T) {
	store := setupTestStore(t)
	folders := store.FolderStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	parent := domain.Folder{ID: "f1", Name: "Math", CreatedAt: now}
	parentID := parent.ID
	child := domain.Folder{ID: "f2", Name: "Algebra", ParentID: &parentID, CreatedAt: now}

	require.NoError(t, folders.Save(ctx, parent))
	require.NoError(t, folders.Save(ctx, child))

	got, err := folders.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, parent, got[0], "insertion order is preserved")
	require.NotNil(t, got[1].ParentID)
	assert.Equal(t, "f1", *got[1].ParentID)
}

func TestFolderStore_Save_UpdatesExisting(t *testing.T) {
	store := setupTestStore(t)
	folders := store.FolderStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, folders.Save(ctx, domain.Folder{ID: "f1", Name: "Math", CreatedAt: now}))
	require.NoError(t, folders.Save(ctx, domain.Folder{ID: "f1", Name: "Maths", CreatedAt: now}))

	got, err := folders.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Maths", got[0].Name)
}

func TestFolderStore_List_Empty(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.FolderStore().List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFolderStore_ReplaceAll(t *testing.T) {
	store := setupTestStore(t)
	folders := store.FolderStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, folders.Save(ctx, domain.Folder{ID: "old", Name: "Old", CreatedAt: now}))

	replacement := []domain.Folder{
		{ID: "a", Name: "A", CreatedAt: now},
		{ID: "b", Name: "B", CreatedAt: now},
	}
	require.NoError(t, folders.ReplaceAll(ctx, replacement))

	got, err := folders.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestFolderStore_ReplaceAll_EmptySetClears(t *testing.T) {
	store := setupTestStore(t)
	folders := store.FolderStore()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, folders.Save(ctx, domain.Folder{ID: "f1", Name: "Math", CreatedAt: now}))
	require.NoError(t, folders.ReplaceAll(ctx, nil))

	got, err := folders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ==================== Document Store Tests ====================

func TestDocumentStore_SaveAndList_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	doc := testDocument("d1", "default", "notes.pdf")
	require.NoError(t, docs.Save(ctx, doc))

	got, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, *doc, got[0])
}

func TestDocumentStore_Save_UpdatesExisting(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	doc := testDocument("d1", "default", "notes.pdf")
	require.NoError(t, docs.Save(ctx, doc))

	doc.Title = "Updated"
	doc.History = append([]domain.AnalysisVersion{
		{ID: "d1-v2", Timestamp: doc.CreatedAt, Data: doc.AnalysisContent, Note: domain.RevisionNote(2)},
	}, doc.History...)
	require.NoError(t, docs.Save(ctx, doc))

	got, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Updated", got[0].Title)
	assert.Len(t, got[0].History, 2)
}

func TestDocumentStore_List_MostRecentFirst(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	older := testDocument("d1", "default", "a.pdf")
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := testDocument("d2", "default", "b.pdf")

	require.NoError(t, docs.Save(ctx, older))
	require.NoError(t, docs.Save(ctx, newer))

	got, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d2", got[0].ID)
	assert.Equal(t, "d1", got[1].ID)
}

func TestDocumentStore_List_LegacyRowWithoutHistory(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// A row written before version history existed: NULL history column.
	content, err := json.Marshal(domain.AnalysisContent{
		Title:    "Legacy",
		Summary:  "s",
		Sections: []json.RawMessage{},
	})
	require.NoError(t, err)
	_, err = store.db.ExecContext(ctx, `
		INSERT INTO documents (id, folder_id, file_name, created_at, content, history)
		VALUES (?, ?, ?, ?, ?, NULL)
	`, "legacy-1", "default", "old.pdf", time.Now().UTC(), string(content))
	require.NoError(t, err)

	got, err := store.DocumentStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Legacy", got[0].Title)
	assert.Nil(t, got[0].History, "legacy shape is surfaced as-is")
}

func TestDocumentStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.Save(ctx, testDocument("d1", "default", "a.pdf")))
	require.NoError(t, docs.Delete(ctx, "d1"))

	got, err := docs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDocumentStore_Delete_UnknownIDIsNotAnError(t *testing.T) {
	store := setupTestStore(t)

	err := store.DocumentStore().Delete(context.Background(), "missing")

	assert.NoError(t, err)
}

func TestDocumentStore_ReplaceAll(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	require.NoError(t, docs.Save(ctx, testDocument("old", "default", "old.pdf")))

	replacement := []domain.Document{
		*testDocument("a", "default", "a.pdf"),
		*testDocument("b", "f1", "b.pdf"),
	}
	require.NoError(t, docs.ReplaceAll(ctx, replacement))

	got, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestDocumentStore_SectionBytesSurviveRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	docs := store.DocumentStore()
	ctx := context.Background()

	doc := testDocument("d1", "default", "a.pdf")
	doc.Sections = []json.RawMessage{
		json.RawMessage(`{"heading":"Key ideas","items":[1,2,3],"nested":{"deep":true}}`),
	}
	require.NoError(t, docs.Save(ctx, doc))

	got, err := docs.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Sections, 1)
	assert.JSONEq(t, string(doc.Sections[0]), string(got[0].Sections[0]))
}

func TestStore_DataSurvivesReopen(t *testing.T) {
	tempDir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, store.DocumentStore().Save(ctx, testDocument("d1", "default", "a.pdf")))
	require.NoError(t, store.Close())

	store, err = NewStore(tempDir)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.DocumentStore().List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "d1", got[0].ID)
}

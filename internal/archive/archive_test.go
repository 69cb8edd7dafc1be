// ABOUTME: Tests for JSON and markdown export and import.
// ABOUTME: Round-trips notes through a temp SQLite store.

package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/notebox/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.OpenStore(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func seed(t *testing.T, store *db.Store, pairs ...string) {
	t.Helper()
	for i := 0; i < len(pairs); i += 2 {
		_, err := store.Create(context.Background(), pairs[i], pairs[i+1])
		require.NoError(t, err)
	}
}

func TestExportImportJSON(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	seed(t, src, "Shopping", "eggs", "Ideas", "build a boat")

	var buf bytes.Buffer
	n, err := ExportJSON(ctx, src, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var export Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))
	assert.Equal(t, formatVersion, export.Version)
	require.Len(t, export.Notes, 2)

	dst := newTestStore(t)
	res, err := ImportJSON(ctx, dst, &buf)
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 2}, res)

	notes, err := dst.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	titles := []string{notes[0].Title, notes[1].Title}
	assert.ElementsMatch(t, []string{"Shopping", "Ideas"}, titles)
}

func TestImportJSONSkipsBlankEntries(t *testing.T) {
	store := newTestStore(t)
	doc := `{"version":"1.0","notes":[{"title":"ok","content":"x"},{"title":"","content":"x"},{"title":"t","content":"  "}]}`

	res, err := ImportJSON(context.Background(), store, strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1, Skipped: 2}, res)
}

func TestImportJSONMalformed(t *testing.T) {
	store := newTestStore(t)
	_, err := ImportJSON(context.Background(), store, strings.NewReader(`{"notes":`))
	assert.Error(t, err)
}

func TestExportImportMarkdown(t *testing.T) {
	ctx := context.Background()
	src := newTestStore(t)
	seed(t, src, "Plans: 2024/25", "line one\nline two", "Plans: 2024/25", "duplicate title")

	dir := filepath.Join(t.TempDir(), "out")
	n, err := ExportMarkdown(ctx, src, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.True(t, strings.HasPrefix(e.Name(), "Plans- 2024-25"), e.Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\n"))
	assert.Contains(t, string(data), "title: 'Plans: 2024/25'")

	dst := newTestStore(t)
	res, err := ImportPath(ctx, dst, dir)
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 2}, res)

	notes, err := dst.Search(ctx, "line two")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Plans: 2024/25", notes[0].Title)
	assert.Equal(t, "line one\nline two", notes[0].Content)
}

func TestExportMarkdownNeverOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seed(t, store, "a", "first a", "a", "second a", "a-1", "titled a-1", "A", "upper a")

	dir := t.TempDir()
	n, err := ExportMarkdown(ctx, store, dir)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	var bodies []string
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		_, content := parseMarkdown(string(data))
		bodies = append(bodies, content)
	}
	assert.ElementsMatch(t, []string{"first a", "second a", "titled a-1", "upper a"}, bodies)
}

func TestUniqueName(t *testing.T) {
	used := map[string]bool{}
	assert.Equal(t, "a", uniqueName(used, "a", 1))
	assert.Equal(t, "a-1", uniqueName(used, "a-1", 3))
	assert.Equal(t, "a-1-2", uniqueName(used, "a", 1))
	assert.Equal(t, "A-4", uniqueName(used, "A", 4))
}

func TestImportMarkdownFileWithoutFrontmatter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	path := filepath.Join(t.TempDir(), "todo.md")
	require.NoError(t, os.WriteFile(path, []byte("buy milk\n"), 0644))

	res, err := ImportPath(ctx, store, path)
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1}, res)

	notes, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "todo", notes[0].Title)
	assert.Equal(t, "buy milk", notes[0].Content)
}

func TestImportMarkdownDirSkipsEmpty(t *testing.T) {
	store := newTestStore(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.md"), []byte("---\ntitle: x\n---\n\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "full.md"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("nope"), 0644))

	res, err := ImportMarkdownDir(context.Background(), store, dir)
	require.NoError(t, err)
	assert.Equal(t, Result{Imported: 1, Skipped: 1}, res)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a-b-c", sanitizeFilename("a/b\\c"))
	assert.Equal(t, "note", sanitizeFilename("   "))
	assert.Equal(t, "note", sanitizeFilename(".."))
	assert.Len(t, []rune(sanitizeFilename(strings.Repeat("é", 150))), 100)
}

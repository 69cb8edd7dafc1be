// ABOUTME: Export notes to JSON or a directory of markdown files.
// ABOUTME: Markdown files carry YAML frontmatter with id, title and timestamps.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
	"gopkg.in/yaml.v3"
)

const formatVersion = "1.0"

// Export is the JSON archive document.
type Export struct {
	ExportedAt time.Time      `json:"exported_at"`
	Version    string         `json:"version"`
	Notes      []*models.Note `json:"notes"`
}

type frontmatter struct {
	ID      models.NoteID `yaml:"id,omitempty"`
	Title   string        `yaml:"title"`
	Created time.Time     `yaml:"created,omitempty"`
	Updated time.Time     `yaml:"updated,omitempty"`
}

// ExportJSON writes every note in store to w and returns how many were written.
func ExportJSON(ctx context.Context, store db.NoteStore, w io.Writer) (int, error) {
	notes, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list notes: %w", err)
	}

	export := Export{
		ExportedAt: time.Now().UTC(),
		Version:    formatVersion,
		Notes:      notes,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(export); err != nil {
		return 0, err
	}
	return len(notes), nil
}

// ExportMarkdown writes one file per note into dir, creating it if needed.
// Every note gets its own file even when titles sanitize to the same name.
func ExportMarkdown(ctx context.Context, store db.NoteStore, dir string) (int, error) {
	notes, err := store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list notes: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}

	used := make(map[string]bool, len(notes))
	for _, n := range notes {
		name := uniqueName(used, sanitizeFilename(n.Title), n.ID)

		data, err := renderMarkdown(n)
		if err != nil {
			return 0, fmt.Errorf("render note %d: %w", n.ID, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name+".md"), data, 0644); err != nil {
			return 0, err
		}
	}
	return len(notes), nil
}

// uniqueName returns base, then base-<id>, then base-<id>-<k> for the first
// name not yet in used, and records it. Names compare case-insensitively.
func uniqueName(used map[string]bool, base string, id models.NoteID) string {
	name := base
	if used[strings.ToLower(name)] {
		name = fmt.Sprintf("%s-%d", base, id)
	}
	for k := 2; used[strings.ToLower(name)]; k++ {
		name = fmt.Sprintf("%s-%d-%d", base, id, k)
	}
	used[strings.ToLower(name)] = true
	return name
}

func renderMarkdown(n *models.Note) ([]byte, error) {
	fm, err := yaml.Marshal(frontmatter{
		ID:      n.ID,
		Title:   n.Title,
		Created: n.CreatedAt,
		Updated: n.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.Write(fm)
	sb.WriteString("---\n\n")
	sb.WriteString(n.Content)
	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	name = strings.TrimSpace(replacer.Replace(name))
	if r := []rune(name); len(r) > 100 {
		name = string(r[:100])
	}
	if name == "" || name == "." || name == ".." {
		name = "note"
	}
	return name
}

// ABOUTME: Import notes from a JSON archive or markdown files.
// ABOUTME: Imported notes get fresh ids and timestamps from the store.

package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/notebox/internal/db"
	"gopkg.in/yaml.v3"
)

// ErrEmptyNote is returned for an entry with a blank title or content.
var ErrEmptyNote = errors.New("note title and content cannot be empty")

// Result counts the outcome of an import.
type Result struct {
	Imported int
	Skipped  int
}

// ImportPath dispatches on path: a directory imports every markdown file in it,
// a .json file imports an archive, anything else is a single markdown file.
func ImportPath(ctx context.Context, store db.NoteStore, path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, err
	}
	if info.IsDir() {
		return ImportMarkdownDir(ctx, store, path)
	}
	if strings.HasSuffix(path, ".json") {
		f, err := os.Open(path) //nolint:gosec // user-specified path
		if err != nil {
			return Result{}, err
		}
		defer func() { _ = f.Close() }()
		return ImportJSON(ctx, store, f)
	}

	if err := ImportMarkdownFile(ctx, store, path); err != nil {
		if errors.Is(err, ErrEmptyNote) {
			return Result{Skipped: 1}, nil
		}
		return Result{}, err
	}
	return Result{Imported: 1}, nil
}

// ImportJSON reads an archive written by ExportJSON. Blank entries are skipped.
func ImportJSON(ctx context.Context, store db.NoteStore, r io.Reader) (Result, error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return Result{}, fmt.Errorf("decode archive: %w", err)
	}

	var res Result
	for _, n := range export.Notes {
		if n == nil || blank(n.Title) || blank(n.Content) {
			res.Skipped++
			continue
		}
		if _, err := store.Create(ctx, n.Title, n.Content); err != nil {
			return res, fmt.Errorf("import %q: %w", n.Title, err)
		}
		res.Imported++
	}
	return res, nil
}

// ImportMarkdownDir imports every .md file under dir. Files without content are skipped.
func ImportMarkdownDir(ctx context.Context, store db.NoteStore, dir string) (Result, error) {
	var res Result
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		if err := ImportMarkdownFile(ctx, store, path); err != nil {
			if errors.Is(err, ErrEmptyNote) {
				res.Skipped++
				return nil
			}
			return err
		}
		res.Imported++
		return nil
	})
	return res, err
}

// ImportMarkdownFile creates one note from path. The title comes from the
// frontmatter when present, otherwise from the file name.
func ImportMarkdownFile(ctx context.Context, store db.NoteStore, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-specified path
	if err != nil {
		return err
	}

	title, content := parseMarkdown(string(data))
	if blank(title) {
		title = strings.TrimSuffix(filepath.Base(path), ".md")
	}
	if blank(title) || blank(content) {
		return fmt.Errorf("%s: %w", path, ErrEmptyNote)
	}

	if _, err := store.Create(ctx, title, content); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	return nil
}

// parseMarkdown splits optional YAML frontmatter from the body.
func parseMarkdown(doc string) (title, content string) {
	doc = strings.ReplaceAll(doc, "\r\n", "\n")
	content = doc
	if strings.HasPrefix(doc, "---\n") {
		parts := strings.SplitN(doc, "---\n", 3)
		if len(parts) == 3 {
			var fm frontmatter
			if err := yaml.Unmarshal([]byte(parts[1]), &fm); err == nil {
				title = fm.Title
				content = parts[2]
			}
		}
	}
	return strings.TrimSpace(title), strings.TrimSpace(content)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates note display and markdown rendering.

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/notebox/internal/models"
)

func TestFormatNoteListItem(t *testing.T) {
	note := &models.Note{
		ID:        42,
		Title:     "Test Note",
		Content:   "first line\nsecond line",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	output := FormatNoteListItem(note)

	if !strings.Contains(output, "42") {
		t.Error("expected output to contain ID")
	}
	if !strings.Contains(output, "Test Note") {
		t.Error("expected output to contain title")
	}
	if !strings.Contains(output, "first line second line") {
		t.Error("expected output to contain flattened preview")
	}
}

func TestFormatNoteListEmpty(t *testing.T) {
	if !strings.Contains(FormatNoteList(nil), "No notes found") {
		t.Error("expected empty hint")
	}
}

func TestPreview(t *testing.T) {
	if got := Preview("  short  ", 10); got != "short" {
		t.Errorf("expected %q, got %q", "short", got)
	}
	got := Preview(strings.Repeat("x", 20), 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "…") {
		t.Errorf("expected truncated preview, got %q", got)
	}
}

func TestFormatNoteContent(t *testing.T) {
	content := "# Hello\n\nThis is **bold** text."

	output, err := FormatNoteContent(content)
	if err != nil {
		t.Fatalf("failed to format content: %v", err)
	}

	if output == "" {
		t.Error("expected non-empty output")
	}
}

func TestFormatSearchSummary(t *testing.T) {
	if !strings.Contains(FormatSearchSummary("eggs", 1), `1 note matching "eggs"`) {
		t.Error("expected singular summary")
	}
	if !strings.Contains(FormatSearchSummary("eggs", 3), "3 notes") {
		t.Error("expected plural summary")
	}
}

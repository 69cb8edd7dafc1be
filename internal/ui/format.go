// ABOUTME: Terminal UI formatting for notebox output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/notebox/internal/models"
)

const (
	timeLayout   = "2006-01-02 15:04"
	previewWidth = 60
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatNoteListItem(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s\n", cyan(fmt.Sprintf("#%-4d", note.ID)), bold(note.Title)))
	if preview := Preview(note.Content, previewWidth); preview != "" {
		sb.WriteString(fmt.Sprintf("         %s\n", preview))
	}
	sb.WriteString(fmt.Sprintf("         %s %s\n",
		faint("Updated:"),
		faint(note.UpdatedAt.Local().Format(timeLayout))))

	return sb.String()
}

// FormatNoteList renders notes in the order given, or a hint when there are none.
func FormatNoteList(notes []*models.Note) string {
	if len(notes) == 0 {
		return faint("No notes found.") + "\n"
	}
	var sb strings.Builder
	for _, n := range notes {
		sb.WriteString(FormatNoteListItem(n))
	}
	return sb.String()
}

// Preview flattens content to a single line of at most width runes.
func Preview(content string, width int) string {
	line := strings.Join(strings.Fields(content), " ")
	r := []rune(line)
	if len(r) <= width {
		return line
	}
	return string(r[:width-1]) + "…"
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatNoteHeader(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(note.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt.Local().Format(timeLayout))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(note.UpdatedAt.Local().Format(timeLayout))))

	sb.WriteString(Separator())
	return sb.String()
}

func FormatSearchSummary(term string, count int) string {
	noun := "notes"
	if count == 1 {
		noun = "note"
	}
	return faint(fmt.Sprintf("%d %s matching %q", count, noun, term)) + "\n"
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

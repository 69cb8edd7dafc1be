// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders markdown content with glamour.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/notebox/internal/db"
	"github.com/harper/notebox/internal/models"
	"github.com/harper/notebox/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
	Long:  `Display a note's full content with rendered markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := lookupNote(cmd, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatNoteHeader(note))
		content, _ := ui.FormatNoteContent(note.Content)
		fmt.Fprint(out, content)
		return nil
	},
}

// lookupNote parses arg as a note id and fetches the note.
func lookupNote(cmd *cobra.Command, arg string) (*models.Note, error) {
	id, err := models.ParseNoteID(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid note ID %q", arg)
	}
	note, err := store.GetByID(cmd.Context(), id)
	if errors.Is(err, db.ErrNoteNotFound) {
		return nil, fmt.Errorf("note %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// ABOUTME: List and search commands for displaying notes.
// ABOUTME: Notes print most recently updated first.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/notebox/internal/models"
	"github.com/harper/notebox/internal/ui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `List all notes, most recently updated first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		notes, err := store.ListAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.FormatNoteList(truncate(notes, limit)))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search notes",
	Long:  `Case-insensitive substring search over note titles and content. An empty query lists every note.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		query := strings.Join(args, " ")

		var (
			notes []*models.Note
			err   error
		)
		if strings.TrimSpace(query) == "" {
			notes, err = store.ListAll(cmd.Context())
		} else {
			notes, err = store.Search(cmd.Context(), query)
		}
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatNoteList(truncate(notes, limit)))
		if query != "" {
			fmt.Fprint(out, ui.FormatSearchSummary(query, len(notes)))
		}
		return nil
	},
}

// truncate keeps the first limit notes; limit <= 0 keeps all of them.
func truncate(notes []*models.Note, limit int) []*models.Note {
	if limit > 0 && len(notes) > limit {
		return notes[:limit]
	}
	return notes
}

func init() {
	listCmd.Flags().IntP("limit", "n", 0, "maximum notes to show (0 for all)")
	searchCmd.Flags().IntP("limit", "n", 0, "maximum notes to show (0 for all)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
}

// ABOUTME: Edit command for modifying existing notes.
// ABOUTME: Takes new values from flags or opens the content in $EDITOR.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harper/notebox/internal/models"
	"github.com/harper/notebox/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note",
	Long:  `Change a note's title or content. Without --title or --content the content opens in $EDITOR.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := lookupNote(cmd, args[0])
		if err != nil {
			return err
		}

		var patch models.NotePatch
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			patch.Title = &title
		}
		if cmd.Flags().Changed("content") {
			content, _ := cmd.Flags().GetString("content")
			patch.Content = &content
		}

		if patch.Title == nil && patch.Content == nil {
			newContent, err := openEditor(note.Content)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			if newContent == note.Content {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes made.")
				return nil
			}
			patch.Content = &newContent
		}

		for _, field := range []*string{patch.Title, patch.Content} {
			if field != nil && strings.TrimSpace(*field) == "" {
				return errors.New("title and content cannot be empty")
			}
		}

		updated, err := store.Update(cmd.Context(), note.ID, patch)
		if err != nil {
			return fmt.Errorf("failed to update note: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Updated note %s", updated.ID)))
		return nil
	},
}

func init() {
	editCmd.Flags().String("title", "", "new title")
	editCmd.Flags().String("content", "", "new content")
	rootCmd.AddCommand(editCmd)
}

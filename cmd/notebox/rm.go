// ABOUTME: Remove command for deleting notes.
// ABOUTME: Includes confirmation prompt before deletion.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/harper/notebox/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a note",
	Long:  `Delete a note permanently.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		note, err := lookupNote(cmd, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !force {
			fmt.Fprintf(out, "Delete note %q (%s)? [y/N] ", note.Title, note.ID)
			reader := bufio.NewReader(cmd.InOrStdin())
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		deleted, err := store.Delete(cmd.Context(), note.ID)
		if err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}
		if !deleted {
			return fmt.Errorf("note %s not found", note.ID)
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted note %s", note.ID)))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}

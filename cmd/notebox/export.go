// ABOUTME: Export and import commands for backing up notes.
// ABOUTME: Supports JSON archives and markdown directories.

package main

import (
	"fmt"
	"os"

	"github.com/harper/notebox/internal/archive"
	"github.com/harper/notebox/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes",
	Long:  `Export notes to a JSON archive or a directory of markdown files.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")
		ctx := cmd.Context()

		switch format {
		case "json":
			if outputPath == "" || outputPath == "-" {
				_, err := archive.ExportJSON(ctx, store, cmd.OutOrStdout())
				return err
			}
			f, err := os.Create(outputPath) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return err
			}
			n, err := archive.ExportJSON(ctx, store, f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", n, outputPath)))
			return nil
		case "md":
			if outputPath == "" {
				outputPath = "export"
			}
			n, err := archive.ExportMarkdown(ctx, store, outputPath)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", n, outputPath)))
			return nil
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	},
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import notes",
	Long:  `Import notes from a JSON archive, a markdown file, or a directory of markdown files.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := archive.ImportPath(cmd.Context(), store, args[0])
		if err != nil {
			return fmt.Errorf("import failed after %d notes: %w", res.Imported, err)
		}

		msg := fmt.Sprintf("Imported %d notes", res.Imported)
		if res.Skipped > 0 {
			msg += fmt.Sprintf(" (skipped %d empty)", res.Skipped)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(msg))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format (json|md)")
	exportCmd.Flags().StringP("output", "o", "", "output path")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

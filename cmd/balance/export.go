// ABOUTME: CLI commands for exporting and importing one user's data.
// ABOUTME: Export supports JSON and YAML; import is a full overwrite, never a merge.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the active user's data",
	Long: `Export the active user's profile and logs.

FORMATS:

  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

EXAMPLES:

  balance export json                # Print JSON to stdout
  balance export json -o backup.json # Save to file
  balance export yaml                # Print YAML to stdout`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
			fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("user %s", store.UserID()))
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a backup into the active user's namespace",
	Long: `Import a backup into the active user's namespace.

The backup replaces the user's profile and logs entirely. Nothing is
written until the whole backup has been validated, so a malformed
file leaves existing data untouched. Files ending in .yaml or .yml
are read as YAML; everything else as JSON.

EXAMPLES:

  balance import backup.json
  balance import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
			err = store.ImportYAML(data)
		} else {
			err = store.ImportJSON(data)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

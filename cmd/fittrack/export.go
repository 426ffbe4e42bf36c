// ABOUTME: CLI command for exporting workouts and measurements.
// ABOUTME: One-way dump as JSON or YAML; there is no import path.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [json|yaml]",
	Short: "Export workouts and measurements",
	Long: `Export workouts and body measurements as a one-way backup snapshot.

The snapshot contains workouts, measurements, the export date, and the
app name. It is not re-importable.

FORMATS:

  json   (default) indented JSON
  yaml   human-readable YAML

EXAMPLES:

  fittrack export                       # JSON to training-backup-<date>.json
  fittrack export yaml                  # YAML to training-backup-<date>.yaml
  fittrack export json --output -       # JSON to stdout`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "json"
		if len(args) == 1 {
			format = args[0]
		}

		export := store.NewExport(appState)

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = export.JSON()
		case "yaml":
			data, err = export.YAML()
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput == "-" {
			fmt.Println(string(data))
			return nil
		}

		filename := exportOutput
		if filename == "" {
			filename = store.DefaultExportFilename(format)
		}
		if err := os.WriteFile(filename, data, 0600); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		color.Green("✓ Exported to %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file ('-' for stdout)")
	rootCmd.AddCommand(exportCmd)
}

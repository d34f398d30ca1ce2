package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/s0up4200/codexport/codility"
	"github.com/s0up4200/codexport/export"
)

var (
	exportTestID      string
	exportTestName    string
	exportOutput      string
	exportConcurrency int
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export completed sessions of a test to CSV",
	Long: `Export all completed candidate sessions of a test to a CSV file.

Each row contains the candidate's name and email, every session data field
and every similarity result field. Nested structures are JSON-encoded. The
test can be selected by ID or by its exact name.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTestID, "test-id", "", "test ID")
	exportCmd.Flags().StringVar(&exportTestName, "test", "", "exact test name")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default derived from the test name)")
	exportCmd.Flags().IntVar(&exportConcurrency, "concurrency", 0, "concurrent session fetches (default from config)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportTestID == "" && exportTestName == "" {
		return fmt.Errorf("either --test-id or --test is required")
	}

	ctx := context.Background()

	testID, testName, err := resolveTest(ctx)
	if err != nil {
		return err
	}

	exporter := export.NewExporter(client, logger)
	exporter.SetConcurrency(cfg.Export.Concurrency)
	if exportConcurrency > 0 {
		exporter.SetConcurrency(exportConcurrency)
	}

	logger.Info().Str("test_id", testID).Msg("Collecting completed sessions")

	records, err := exporter.CollectCompleted(ctx, testID)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No completed sessions found for this test.")
		return nil
	}

	outPath := exportOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.Export.OutputDir, export.Filename(testName))
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	fmt.Printf("Exported %d records to '%s'\n", len(records), outPath)
	return nil
}

// resolveTest resolves the --test-id/--test flags to a test ID and a name
// usable for the output filename
func resolveTest(ctx context.Context) (string, string, error) {
	if exportTestID != "" {
		name := exportTestName
		if name == "" {
			test, err := client.GetTestDetails(ctx, exportTestID)
			if err != nil {
				return "", "", fmt.Errorf("failed to get test details: %w", err)
			}
			name = test.DisplayName()
		}
		return exportTestID, name, nil
	}

	tests, err := client.ListTests(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to list tests: %w", err)
	}

	var match *codility.Test
	for i := range tests {
		if tests[i].Title == exportTestName || tests[i].Name == exportTestName {
			match = &tests[i]
			break
		}
	}
	if match == nil {
		fmt.Println("Available tests:")
		for _, test := range tests {
			fmt.Printf("  %s: %s\n", test.ID, test.DisplayName())
		}
		return "", "", fmt.Errorf("no test found with name '%s'", exportTestName)
	}

	return match.ID, exportTestName, nil
}

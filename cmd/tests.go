package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// testsCmd represents the tests command
var testsCmd = &cobra.Command{
	Use:   "tests",
	Short: "List tests in your account",
	Long:  `List all tests available in your Codility account with their IDs and names.`,
	RunE:  runTests,
}

func init() {
	rootCmd.AddCommand(testsCmd)
}

func runTests(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tests, err := client.ListTests(ctx)
	if err != nil {
		return fmt.Errorf("failed to list tests: %w", err)
	}

	if len(tests) == 0 {
		fmt.Println("No tests found in your account.")
		return nil
	}

	fmt.Printf("Found %d tests:\n", len(tests))
	for _, test := range tests {
		fmt.Printf("  %s: %s", test.ID, test.DisplayName())
		if test.Status != "" {
			fmt.Printf(" [%s]", test.Status)
		}
		fmt.Println()
	}

	return nil
}

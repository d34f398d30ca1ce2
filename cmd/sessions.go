package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/codexport/codility"
	"github.com/s0up4200/codexport/filter"
)

var (
	sessionsTestID string
	filterExpr     string
	preset         string
)

// sessionsCmd represents the sessions command
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List candidate sessions for a test",
	Long: `List all candidate sessions for a test, optionally narrowed down by a
filter expression such as 'completed and result >= 50'.`,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().StringVarP(&sessionsTestID, "test", "t", "", "test ID (required)")
	sessionsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	sessionsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	sessionsCmd.MarkFlagRequired("test")

	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	sessions, err := client.ListTestSessions(ctx, sessionsTestID)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}
	if expression != "" {
		sessionFilter, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}

		logger.Info().Str("filter", expression).Msg("Filtering sessions")

		var matched []codility.Session
		for _, session := range sessions {
			ok, err := sessionFilter.Evaluate(session)
			if err != nil {
				return err
			}
			if ok {
				matched = append(matched, session)
			}
		}
		sessions = matched
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d sessions:\n", len(sessions))
	fmt.Println(strings.Repeat("-", 80))

	for _, session := range sessions {
		fmt.Printf("• %s", session.ID)
		if session.Candidate != nil && session.Candidate.Email != "" {
			fmt.Printf("  %s", session.Candidate.Email)
		}
		if session.Completed() {
			fmt.Printf("  [%d/%d]", session.Score(), session.MaxResult)
		} else {
			fmt.Printf("  [in progress]")
		}
		fmt.Println()
	}

	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		return filterExpr, nil
	}

	if preset != "" {
		if expression, ok := cfg.Filter.Presets[preset]; ok {
			return expression, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return cfg.Filter.Default, nil
}

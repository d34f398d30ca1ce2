package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/codexport/codility"
)

var (
	inviteTestID string
	inviteEmails []string
)

// inviteCmd represents the invite command
var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Invite candidates to a test",
	Long:  `Invite one or more candidates to a test by email address.`,
	RunE:  runInvite,
}

func init() {
	inviteCmd.Flags().StringVarP(&inviteTestID, "test", "t", "", "test ID (required)")
	inviteCmd.Flags().StringArrayVarP(&inviteEmails, "email", "e", nil, "candidate email (repeatable)")
	inviteCmd.MarkFlagRequired("test")
	inviteCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(inviteCmd)
}

func runInvite(cmd *cobra.Command, args []string) error {
	candidates := make([]codility.Candidate, 0, len(inviteEmails))
	for _, email := range inviteEmails {
		candidates = append(candidates, codility.Candidate{Email: email})
	}

	ctx := context.Background()
	result, err := client.AddCandidates(ctx, inviteTestID, candidates)
	if err != nil {
		return fmt.Errorf("failed to invite candidates: %w", err)
	}

	invited := result.Invited
	if invited == 0 {
		invited = len(candidates)
	}
	fmt.Printf("✓ Invited %d candidates to test %s\n", invited, inviteTestID)

	return nil
}

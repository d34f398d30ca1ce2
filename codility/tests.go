package codility

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// ListTests lists all tests available in the account
func (c *Client) ListTests(ctx context.Context) ([]Test, error) {
	var resp testsResponse
	if err := c.getJSON(ctx, "/tests", &resp); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(resp.Tests)).Msg("Retrieved tests")
	return resp.Tests, nil
}

// GetTestDetails retrieves details for a specific test
func (c *Client) GetTestDetails(ctx context.Context, testID string) (*Test, error) {
	if err := requireParam("test_id", testID); err != nil {
		return nil, err
	}

	var test Test
	if err := c.getJSON(ctx, "/tests/"+url.PathEscape(testID), &test); err != nil {
		return nil, err
	}
	return &test, nil
}

// ListTestSessions lists all candidate sessions for a specific test
func (c *Client) ListTestSessions(ctx context.Context, testID string) ([]Session, error) {
	if err := requireParam("test_id", testID); err != nil {
		return nil, err
	}

	var resp sessionsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/tests/%s/sessions", url.PathEscape(testID)), &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// AddCandidates invites candidates to a test. The list must be non-empty and
// every candidate needs an email address.
func (c *Client) AddCandidates(ctx context.Context, testID string, candidates []Candidate) (*InvitationResult, error) {
	if err := requireParam("test_id", testID); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, &ValidationError{Param: "candidates", Message: "at least one candidate is required"}
	}
	for i, candidate := range candidates {
		if strings.TrimSpace(candidate.Email) == "" {
			return nil, &ValidationError{Param: "candidates", Message: fmt.Sprintf("candidate %d is missing an email", i)}
		}
	}

	payload := map[string][]Candidate{"candidates": candidates}

	var result InvitationResult
	if err := c.postJSON(ctx, fmt.Sprintf("/tests/%s/candidates", url.PathEscape(testID)), payload, &result); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("test_id", testID).
		Int("count", len(candidates)).
		Msg("Invited candidates")
	return &result, nil
}

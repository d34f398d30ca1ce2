package codility

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListSessions lists all candidate sessions in the account
func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	var resp sessionsResponse
	if err := c.getJSON(ctx, "/sessions", &resp); err != nil {
		return nil, err
	}
	return resp.Sessions, nil
}

// GetSessionData retrieves the data for a specific candidate session
func (c *Client) GetSessionData(ctx context.Context, sessionID string) (*Session, error) {
	if err := requireParam("session_id", sessionID); err != nil {
		return nil, err
	}

	var session Session
	if err := c.getJSON(ctx, "/sessions/"+url.PathEscape(sessionID), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetPDFReport retrieves the PDF report for a session as raw bytes
func (c *Client) GetPDFReport(ctx context.Context, sessionID string) ([]byte, error) {
	if err := requireParam("session_id", sessionID); err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/sessions/%s/report/pdf", url.PathEscape(sessionID)), nil, nil)
}

// GetSimilarityResults retrieves the similarity check results for a session
func (c *Client) GetSimilarityResults(ctx context.Context, sessionID string) (*Similarity, error) {
	if err := requireParam("session_id", sessionID); err != nil {
		return nil, err
	}

	var similarity Similarity
	if err := c.getJSON(ctx, fmt.Sprintf("/sessions/%s/similarity", url.PathEscape(sessionID)), &similarity); err != nil {
		return nil, err
	}
	return &similarity, nil
}

// EmailCandidates emails the session findings to the candidate using the
// given email template
func (c *Client) EmailCandidates(ctx context.Context, sessionID, templateID string) (*EmailResult, error) {
	if err := requireParam("session_id", sessionID); err != nil {
		return nil, err
	}
	if err := requireParam("template_id", templateID); err != nil {
		return nil, err
	}

	payload := map[string]string{"template_id": templateID}

	var result EmailResult
	if err := c.postJSON(ctx, fmt.Sprintf("/sessions/%s/email", url.PathEscape(sessionID)), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelSession cancels an existing candidate session. The API returns an
// empty body on success.
func (c *Client) CancelSession(ctx context.Context, sessionID string) error {
	if err := requireParam("session_id", sessionID); err != nil {
		return err
	}

	_, err := c.do(ctx, http.MethodDelete, "/sessions/"+url.PathEscape(sessionID), nil, nil)
	if err != nil {
		return err
	}

	c.logger.Debug().Str("session_id", sessionID).Msg("Cancelled session")
	return nil
}

// EmbedCandidateReport retrieves the embed configuration for a candidate
// report
func (c *Client) EmbedCandidateReport(ctx context.Context, sessionID string) (*EmbedConfig, error) {
	if err := requireParam("session_id", sessionID); err != nil {
		return nil, err
	}

	var config EmbedConfig
	if err := c.getJSON(ctx, fmt.Sprintf("/sessions/%s/embed", url.PathEscape(sessionID)), &config); err != nil {
		return nil, err
	}
	return &config, nil
}

package codility

import "context"

// ListCodeLiveTemplates lists all CodeLive interview templates
func (c *Client) ListCodeLiveTemplates(ctx context.Context) ([]CodeLiveTemplate, error) {
	var resp codeLiveTemplatesResponse
	if err := c.getJSON(ctx, "/codelive/templates", &resp); err != nil {
		return nil, err
	}
	return resp.Templates, nil
}

// CreateCodeLiveSession creates a new CodeLive session from a template.
// candidateInfo fields are merged into the request payload alongside the
// template ID, mirroring what the API accepts as free-form candidate data.
func (c *Client) CreateCodeLiveSession(ctx context.Context, templateID string, candidateInfo map[string]any) (*CodeLiveSession, error) {
	if err := requireParam("template_id", templateID); err != nil {
		return nil, err
	}

	payload := map[string]any{"template_id": templateID}
	for key, value := range candidateInfo {
		if key == "template_id" {
			continue
		}
		payload[key] = value
	}

	var session CodeLiveSession
	if err := c.postJSON(ctx, "/codelive/sessions", payload, &session); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("session_id", session.ID).
		Str("template_id", templateID).
		Msg("Created CodeLive session")
	return &session, nil
}

// CreateWhiteboard creates a whiteboard for an existing CodeLive session
func (c *Client) CreateWhiteboard(ctx context.Context, sessionID string) (*Whiteboard, error) {
	if err := requireParam("session_id", sessionID); err != nil {
		return nil, err
	}

	payload := map[string]string{"session_id": sessionID}

	var whiteboard Whiteboard
	if err := c.postJSON(ctx, "/codelive/whiteboards", payload, &whiteboard); err != nil {
		return nil, err
	}
	return &whiteboard, nil
}

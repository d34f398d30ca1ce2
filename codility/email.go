package codility

import "context"

// ListEmailTemplates retrieves all saved candidate email templates
func (c *Client) ListEmailTemplates(ctx context.Context) ([]EmailTemplate, error) {
	var resp emailTemplatesResponse
	if err := c.getJSON(ctx, "/email/templates", &resp); err != nil {
		return nil, err
	}
	return resp.Templates, nil
}

// GetDefaultEmailTemplate retrieves the default email template
func (c *Client) GetDefaultEmailTemplate(ctx context.Context) (*EmailTemplate, error) {
	var template EmailTemplate
	if err := c.getJSON(ctx, "/email/templates/default", &template); err != nil {
		return nil, err
	}
	return &template, nil
}

// CreateEmailTemplate creates a new custom email template. Name, subject and
// body are all required.
func (c *Client) CreateEmailTemplate(ctx context.Context, name, subject, body string) (*EmailTemplate, error) {
	if err := requireParam("name", name); err != nil {
		return nil, err
	}
	if err := requireParam("subject", subject); err != nil {
		return nil, err
	}
	if err := requireParam("body", body); err != nil {
		return nil, err
	}

	payload := createEmailTemplateRequest{
		Name:    name,
		Subject: subject,
		Body:    body,
	}

	var template EmailTemplate
	if err := c.postJSON(ctx, "/email/templates", payload, &template); err != nil {
		return nil, err
	}

	c.logger.Debug().Str("template_id", template.ID).Msg("Created email template")
	return &template, nil
}

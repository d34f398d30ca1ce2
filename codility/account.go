package codility

import "context"

// GetUserDetails retrieves the account profile
func (c *Client) GetUserDetails(ctx context.Context) (*User, error) {
	var user User
	if err := c.getJSON(ctx, "/account/user", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAvailableCredits retrieves the current credit balance
func (c *Client) GetAvailableCredits(ctx context.Context) (*Credits, error) {
	var credits Credits
	if err := c.getJSON(ctx, "/account/credits", &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

// ListUserLogins lists account login events
func (c *Client) ListUserLogins(ctx context.Context) ([]LoginEvent, error) {
	var resp loginsResponse
	if err := c.getJSON(ctx, "/account/logins", &resp); err != nil {
		return nil, err
	}
	return resp.Logins, nil
}

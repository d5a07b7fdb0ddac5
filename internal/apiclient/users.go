package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"styledecor/internal/domain"
)

// AllUsers lists every account. Admin only.
func (c *Client) AllUsers(ctx context.Context, token string) ([]domain.User, error) {
	var resp struct {
		Data []userDTO `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/users/all", token, nil, &resp); err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(resp.Data))
	for _, d := range resp.Data {
		u, err := d.toDomain()
		if err != nil {
			// Accounts with roles this build does not know are skipped
			// rather than failing the whole page.
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// MakeDecorator promotes a customer account to the decorator role. The
// promotion takes effect for the user on their next session refresh.
func (c *Client) MakeDecorator(ctx context.Context, token, userID, specialization string) error {
	payload := map[string]string{"specialization": specialization}
	return c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(userID)+"/make-decorator", token, payload, nil)
}

// ToggleUserStatus flips an account between active and suspended. Admin only.
func (c *Client) ToggleUserStatus(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodPut, "/api/users/"+url.PathEscape(userID)+"/toggle-status", token, nil, nil)
}

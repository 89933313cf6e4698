package dummyjson

import (
	"context"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/auth"
)

// Login performs the single credential exchange against the upstream
// provider. A wrong username/password pair comes back as a StatusError.
func (c *Client) Login(ctx context.Context, username, password string) (*auth.UpstreamUser, error) {
	body := auth.LoginRequest{Username: username, Password: password}
	var u auth.UpstreamUser
	if err := c.postJSON(ctx, "login", "/auth/login", &body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

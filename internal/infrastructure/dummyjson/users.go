package dummyjson

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avatarctic/admin-dashboard/internal/core/domain/user"
)

// UserClient implements ports.UserDirectory against the upstream /users
// endpoints.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

type userPage struct {
	Users []user.User `json:"users"`
	Total int         `json:"total"`
}

func (uc *UserClient) List(ctx context.Context, limit, skip int) ([]user.User, int, error) {
	var page userPage
	if err := uc.c.getJSON(ctx, "list_users", "/users", pageQuery(limit, skip), &page); err != nil {
		return nil, 0, err
	}
	return page.Users, page.Total, nil
}

func (uc *UserClient) Search(ctx context.Context, query string) ([]user.User, int, error) {
	q := url.Values{}
	q.Set("q", query)
	var page userPage
	if err := uc.c.getJSON(ctx, "search_users", "/users/search", q, &page); err != nil {
		return nil, 0, err
	}
	return page.Users, page.Total, nil
}

func (uc *UserClient) GetByID(ctx context.Context, id int) (*user.User, error) {
	var u user.User
	if err := uc.c.getJSON(ctx, "get_user", fmt.Sprintf("/users/%d", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

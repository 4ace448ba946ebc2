package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

// ListUsers returns all registered accounts. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("client.ListUsers: %w", err)
	}
	return users, nil
}

// UserRequest is the payload for creating or updating an account as
// an administrator. Password is only sent when non-empty.
type UserRequest struct {
	Email       string `json:"email"`
	Fullname    string `json:"fullname"`
	Phonenumber string `json:"phonenumber"`
	Type        string `json:"type"`
	Password    string `json:"password,omitempty"`
}

// CreateUser creates an account. Admin only.
func (c *Client) CreateUser(ctx context.Context, req UserRequest) (*domain.User, error) {
	var created domain.User
	if err := c.post(ctx, "/users", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateUser: %w", err)
	}
	return &created, nil
}

// UpdateUser updates an account. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id uuid.UUID, req UserRequest) error {
	if err := c.put(ctx, "/users/"+url.PathEscape(id.String()), req, nil); err != nil {
		return fmt.Errorf("client.UpdateUser: %w", err)
	}
	return nil
}

// DeleteUser deletes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := c.del(ctx, "/users/"+url.PathEscape(id.String()), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteUser: %w", err)
	}
	return nil
}

package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/connectify/connectify/pkg/domain"
)

// Login exchanges email+password for a bearer token. The token is
// returned, not stored; persisting it is the auth facade's job.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	var resp struct {
		Token string `json:"token"`
	}
	if err := c.postForm(ctx, "/auth/login", form, &resp); err != nil {
		return "", fmt.Errorf("client.Login: %w", err)
	}
	return resp.Token, nil
}

// SignupRequest is the payload for registering a new account.
type SignupRequest struct {
	Email       string
	Fullname    string
	Phonenumber string
	Password    string
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	form := url.Values{}
	form.Set("email", req.Email)
	form.Set("fullname", req.Fullname)
	form.Set("phonenumber", req.Phonenumber)
	form.Set("password", req.Password)

	if err := c.postForm(ctx, "/auth/signup", form, nil); err != nil {
		return fmt.Errorf("client.Signup: %w", err)
	}
	return nil
}

// GetMe returns the identity the backend associates with the current
// token. This is the only call that proves a token is valid.
func (c *Client) GetMe(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/auth/me", &u); err != nil {
		return nil, fmt.Errorf("client.GetMe: %w", err)
	}
	return &u, nil
}

// UpdateProfileRequest carries the profile fields to change.
// Empty fields are omitted and left untouched by the backend.
type UpdateProfileRequest struct {
	Fullname    string
	Phonenumber string
	Password    string
}

// UpdateProfile updates the authenticated user's own profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) error {
	form := url.Values{}
	if req.Fullname != "" {
		form.Set("fullname", req.Fullname)
	}
	if req.Phonenumber != "" {
		form.Set("phonenumber", req.Phonenumber)
	}
	if req.Password != "" {
		form.Set("password", req.Password)
	}

	if err := c.postForm(ctx, "/auth/update-users", form, nil); err != nil {
		return fmt.Errorf("client.UpdateProfile: %w", err)
	}
	return nil
}

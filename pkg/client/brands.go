package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

// ListBrands fetches all brands.
func (c *Client) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var brands []domain.Brand
	if err := c.get(ctx, "/brands", &brands); err != nil {
		return nil, fmt.Errorf("client.ListBrands: %w", err)
	}
	return brands, nil
}

// BrandRequest is the payload for creating or updating a brand.
type BrandRequest struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// CreateBrand creates a brand. Admin only.
func (c *Client) CreateBrand(ctx context.Context, req BrandRequest) (*domain.Brand, error) {
	var created domain.Brand
	if err := c.post(ctx, "/brands", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateBrand: %w", err)
	}
	return &created, nil
}

// UpdateBrand updates a brand. Admin only.
func (c *Client) UpdateBrand(ctx context.Context, id uuid.UUID, req BrandRequest) error {
	if err := c.put(ctx, "/brands/"+url.PathEscape(id.String()), req, nil); err != nil {
		return fmt.Errorf("client.UpdateBrand: %w", err)
	}
	return nil
}

// DeleteBrand deletes a brand. Admin only.
func (c *Client) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if err := c.del(ctx, "/brands/"+url.PathEscape(id.String()), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteBrand: %w", err)
	}
	return nil
}

package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.get(ctx, "/categories", &categories); err != nil {
		return nil, fmt.Errorf("client.ListCategories: %w", err)
	}
	return categories, nil
}

// GetCategory fetches a single category by ID.
func (c *Client) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	var cat domain.Category
	if err := c.get(ctx, "/categories/"+url.PathEscape(id.String()), &cat); err != nil {
		return nil, fmt.Errorf("client.GetCategory: %w", err)
	}
	return &cat, nil
}

// CreateCategory creates a category. Admin only.
func (c *Client) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	body := map[string]string{"name": name}
	var created domain.Category
	if err := c.post(ctx, "/categories", body, &created); err != nil {
		return nil, fmt.Errorf("client.CreateCategory: %w", err)
	}
	return &created, nil
}

// UpdateCategory renames a category. Admin only.
func (c *Client) UpdateCategory(ctx context.Context, id uuid.UUID, name string) error {
	body := map[string]string{"name": name}
	if err := c.put(ctx, "/categories/"+url.PathEscape(id.String()), body, nil); err != nil {
		return fmt.Errorf("client.UpdateCategory: %w", err)
	}
	return nil
}

// DeleteCategory deletes a category. Admin only.
func (c *Client) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := c.del(ctx, "/categories/"+url.PathEscape(id.String()), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteCategory: %w", err)
	}
	return nil
}

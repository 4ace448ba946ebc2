package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

// ListElectronics fetches the full catalog. The backend paginates
// nothing; filtering and sorting happen client-side.
func (c *Client) ListElectronics(ctx context.Context) ([]domain.Electronic, error) {
	var items []domain.Electronic
	if err := c.get(ctx, "/electronics", &items); err != nil {
		return nil, fmt.Errorf("client.ListElectronics: %w", err)
	}
	return items, nil
}

// GetElectronic fetches a single product by ID.
func (c *Client) GetElectronic(ctx context.Context, id uuid.UUID) (*domain.Electronic, error) {
	var e domain.Electronic
	if err := c.get(ctx, "/electronics/"+url.PathEscape(id.String()), &e); err != nil {
		return nil, fmt.Errorf("client.GetElectronic: %w", err)
	}
	return &e, nil
}

// ElectronicRequest is the payload for creating or updating a product.
type ElectronicRequest struct {
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	BrandID     uuid.UUID `json:"brandId"`
	CategoryID  uuid.UUID `json:"categoryId"`
}

// CreateElectronic creates a product. Admin only.
func (c *Client) CreateElectronic(ctx context.Context, req ElectronicRequest) (*domain.Electronic, error) {
	var created domain.Electronic
	if err := c.post(ctx, "/electronics", req, &created); err != nil {
		return nil, fmt.Errorf("client.CreateElectronic: %w", err)
	}
	return &created, nil
}

// UpdateElectronic updates a product. Admin only.
func (c *Client) UpdateElectronic(ctx context.Context, id uuid.UUID, req ElectronicRequest) error {
	if err := c.put(ctx, "/electronics/"+url.PathEscape(id.String()), req, nil); err != nil {
		return fmt.Errorf("client.UpdateElectronic: %w", err)
	}
	return nil
}

// DeleteElectronic deletes a product. Admin only.
func (c *Client) DeleteElectronic(ctx context.Context, id uuid.UUID) error {
	if err := c.del(ctx, "/electronics/"+url.PathEscape(id.String()), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteElectronic: %w", err)
	}
	return nil
}

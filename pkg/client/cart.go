package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

// GetCart fetches the authenticated user's cart. A 404 means the user
// has no cart yet, which callers treat the same as an empty one.
func (c *Client) GetCart(ctx context.Context) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.get(ctx, "/carts/get", &cart); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return &domain.Cart{}, nil
		}
		return nil, fmt.Errorf("client.GetCart: %w", err)
	}
	return &cart, nil
}

// AddToCart adds quantity of a product to the cart.
func (c *Client) AddToCart(ctx context.Context, electronicID uuid.UUID, quantity int) (*domain.Cart, error) {
	params := url.Values{}
	params.Set("electronicId", electronicID.String())
	params.Set("quantity", strconv.Itoa(quantity))

	var cart domain.Cart
	if err := c.post(ctx, "/carts/add?"+params.Encode(), nil, &cart); err != nil {
		return nil, fmt.Errorf("client.AddToCart: %w", err)
	}
	return &cart, nil
}

// DeleteCartItems removes the given cart item lines.
func (c *Client) DeleteCartItems(ctx context.Context, cartItemIDs []uuid.UUID) error {
	body := map[string][]uuid.UUID{"cartItemIds": cartItemIDs}
	if err := c.del(ctx, "/carts/items", body, nil); err != nil {
		return fmt.Errorf("client.DeleteCartItems: %w", err)
	}
	return nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

// CreateInvoiceRequest is the checkout payload.
type CreateInvoiceRequest struct {
	Address        string
	PaymentMethod  string
	PurchasedItems []domain.PurchasedItem
	TotalPrice     int64
	Note           string
}

// CreateInvoice places an order. The purchased items travel as a JSON
// string inside the form body, matching the backend's checkout endpoint.
func (c *Client) CreateInvoice(ctx context.Context, req CreateInvoiceRequest) (*domain.Invoice, error) {
	itemsJSON, err := json.Marshal(req.PurchasedItems)
	if err != nil {
		return nil, fmt.Errorf("client.CreateInvoice: marshal items: %w", err)
	}

	form := url.Values{}
	form.Set("address", req.Address)
	form.Set("paymentMethod", req.PaymentMethod)
	form.Set("purchasedItems", string(itemsJSON))
	form.Set("totalPrice", strconv.FormatInt(req.TotalPrice, 10))
	form.Set("status", domain.StatusPending)
	form.Set("note", req.Note)

	var created domain.Invoice
	if err := c.postForm(ctx, "/invoices", form, &created); err != nil {
		return nil, fmt.Errorf("client.CreateInvoice: %w", err)
	}
	return &created, nil
}

// ListUserInvoices returns the authenticated user's order history.
func (c *Client) ListUserInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := c.get(ctx, "/invoices/user", &invoices); err != nil {
		return nil, fmt.Errorf("client.ListUserInvoices: %w", err)
	}
	return invoices, nil
}

// ListInvoices returns all orders. Admin only.
func (c *Client) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := c.get(ctx, "/invoices", &invoices); err != nil {
		return nil, fmt.Errorf("client.ListInvoices: %w", err)
	}
	return invoices, nil
}

// UpdateInvoiceStatus moves an order to a new status. Admin only.
func (c *Client) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status string) error {
	body := map[string]string{"status": status}
	if err := c.put(ctx, "/invoices/"+url.PathEscape(id.String())+"/status", body, nil); err != nil {
		return fmt.Errorf("client.UpdateInvoiceStatus: %w", err)
	}
	return nil
}

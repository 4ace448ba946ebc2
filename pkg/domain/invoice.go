package domain

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses in lifecycle order. Transitions are enforced by
// the backend; the client only displays and requests them.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipping  = "shipping"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// InvoiceStatuses lists every status the admin console can request.
var InvoiceStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusShipping,
	StatusDelivered,
	StatusCancelled,
}

// ValidStatus reports whether s is a known invoice status.
func ValidStatus(s string) bool {
	for _, known := range InvoiceStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Payment methods accepted at checkout.
const (
	PaymentOnDelivery = "cod"
	PaymentTransfer   = "transfer"
)

// Invoice is a placed order.
type Invoice struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Address        string          `json:"address"`
	PaymentMethod  string          `json:"paymentMethod"`
	PurchasedItems []PurchasedItem `json:"purchasedItems"`
	TotalPrice     int64           `json:"totalPrice"`
	Status         string          `json:"status"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// PurchasedItem is a product line captured at checkout time.
// Price is the unit price when the order was placed, not the live one.
type PurchasedItem struct {
	ElectronicID uuid.UUID `json:"electronicId"`
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	Price        int64     `json:"price"`
}

// FilterInvoicesByStatus returns invoices with the given status.
// An empty status matches all.
func FilterInvoicesByStatus(invoices []Invoice, status string) []Invoice {
	if status == "" {
		return invoices
	}
	var out []Invoice
	for _, inv := range invoices {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out
}

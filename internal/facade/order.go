package facade

import (
	"context"

	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// Orders covers checkout, the user's order history, and the admin
// order console.
type Orders struct {
	api      *client.Client
	session  *session.Store
	identity session.Identity
}

func NewOrders(api *client.Client, sess *session.Store, identity session.Identity) *Orders {
	return &Orders{api: api, session: sess, identity: identity}
}

// CheckoutInput is the checkout form. Items come from the cart lines
// the user selected.
type CheckoutInput struct {
	Address       string `validate:"required"`
	PaymentMethod string `validate:"required,oneof=cod transfer"`
	Note          string
	Items         []domain.CartItem `validate:"required,min=1"`
}

// Checkout places an order for the selected cart lines. After a
// successful order, the purchased lines should be removed from the
// cart by the caller.
func (f *Orders) Checkout(ctx context.Context, in CheckoutInput) Result[*domain.Invoice] {
	if err := validate.Struct(in); err != nil {
		return fail[*domain.Invoice](msgInvalid)
	}
	if f.session.Token() == "" {
		return fail[*domain.Invoice](msgNotLoggedIn)
	}

	purchased := make([]domain.PurchasedItem, 0, len(in.Items))
	var total int64
	for _, item := range in.Items {
		purchased = append(purchased, domain.PurchasedItem{
			ElectronicID: item.Electronic.ID,
			Name:         item.Electronic.Name,
			Quantity:     item.Quantity,
			Price:        item.Electronic.Price,
		})
		total += item.Electronic.Price * int64(item.Quantity)
	}

	inv, err := f.api.CreateInvoice(ctx, client.CreateInvoiceRequest{
		Address:        in.Address,
		PaymentMethod:  in.PaymentMethod,
		PurchasedItems: purchased,
		TotalPrice:     total,
		Note:           in.Note,
	})
	if err != nil {
		return failFrom[*domain.Invoice](err, "checkout failed")
	}
	return ok(inv)
}

// History returns the user's own orders.
func (f *Orders) History(ctx context.Context) Result[[]domain.Invoice] {
	if f.session.Token() == "" {
		return fail[[]domain.Invoice](msgNotLoggedIn)
	}
	invoices, err := f.api.ListUserInvoices(ctx)
	if err != nil {
		return failFrom[[]domain.Invoice](err, "could not load your orders")
	}
	return ok(invoices)
}

// ListAll returns every order in the system. Admin only.
func (f *Orders) ListAll(ctx context.Context) Result[[]domain.Invoice] {
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[[]domain.Invoice](msg)
	}
	invoices, err := f.api.ListInvoices(ctx)
	if err != nil {
		return failFrom[[]domain.Invoice](err, "could not load orders")
	}
	return ok(invoices)
}

// SetStatus moves an order to a new status. Admin only.
func (f *Orders) SetStatus(ctx context.Context, id uuid.UUID, status string) Result[Done] {
	if !domain.ValidStatus(status) {
		return fail[Done]("unknown order status: " + status)
	}
	if msg := ensureAdmin(ctx, f.identity); msg != "" {
		return fail[Done](msg)
	}
	if err := f.api.UpdateInvoiceStatus(ctx, id, status); err != nil {
		return failFrom[Done](err, "could not update the order status")
	}
	return ok(Done{})
}

package facade

import (
	"context"

	"github.com/google/uuid"

	"github.com/connectify/connectify/internal/session"
	"github.com/connectify/connectify/pkg/client"
	"github.com/connectify/connectify/pkg/domain"
)

// Cart wraps the shopping cart endpoints. Every operation requires a
// logged-in session; the guard is the presence of a token, the server
// has the final say.
type Cart struct {
	api     *client.Client
	session *session.Store
}

func NewCart(api *client.Client, sess *session.Store) *Cart {
	return &Cart{api: api, session: sess}
}

// Get loads the user's cart. A user with no cart yet gets an empty one.
func (f *Cart) Get(ctx context.Context) Result[*domain.Cart] {
	if f.session.Token() == "" {
		return fail[*domain.Cart](msgNotLoggedIn)
	}
	cart, err := f.api.GetCart(ctx)
	if err != nil {
		return failFrom[*domain.Cart](err, "could not load your cart")
	}
	return ok(cart)
}

// Add puts quantity units of a product in the cart and returns the
// updated cart.
func (f *Cart) Add(ctx context.Context, electronicID uuid.UUID, quantity int) Result[*domain.Cart] {
	if f.session.Token() == "" {
		return fail[*domain.Cart](msgNotLoggedIn)
	}
	if quantity < 1 {
		return fail[*domain.Cart]("quantity must be at least 1")
	}
	cart, err := f.api.AddToCart(ctx, electronicID, quantity)
	if err != nil {
		return failFrom[*domain.Cart](err, "could not add the item to your cart")
	}
	return ok(cart)
}

// RemoveItems deletes the given cart lines.
func (f *Cart) RemoveItems(ctx context.Context, cartItemIDs []uuid.UUID) Result[Done] {
	if f.session.Token() == "" {
		return fail[Done](msgNotLoggedIn)
	}
	if len(cartItemIDs) == 0 {
		return fail[Done]("no items selected")
	}
	if err := f.api.DeleteCartItems(ctx, cartItemIDs); err != nil {
		return failFrom[Done](err, "could not remove the items")
	}
	return ok(Done{})
}

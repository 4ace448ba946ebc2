package domain

import "github.com/google/uuid"

// Cart is the authenticated user's shopping cart.
// A missing cart on the backend is equivalent to an empty one.
type Cart struct {
	CartID uuid.UUID  `json:"cart_id"`
	UserID uuid.UUID  `json:"user_id"`
	Items  []CartItem `json:"items"`
}

// CartItem is one product line in a cart.
type CartItem struct {
	CartItemID uuid.UUID  `json:"cart_item_id"`
	Electronic Electronic `json:"electronic"`
	Quantity   int        `json:"quantity"`
}

// Subtotal is the line price for this item.
func (i CartItem) Subtotal() int64 {
	return i.Electronic.Price * int64(i.Quantity)
}

// Subtotal sums every line in the cart.
func (c Cart) Subtotal() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}

// SelectionTotal sums the subtotals of the items whose cart_item_id is
// in selected. Unknown IDs are ignored.
func SelectionTotal(items []CartItem, selected map[uuid.UUID]bool) int64 {
	var total int64
	for _, it := range items {
		if selected[it.CartItemID] {
			total += it.Subtotal()
		}
	}
	return total
}

// SelectedItems returns the items whose cart_item_id is in selected,
// preserving cart order.
func SelectedItems(items []CartItem, selected map[uuid.UUID]bool) []CartItem {
	var out []CartItem
	for _, it := range items {
		if selected[it.CartItemID] {
			out = append(out, it)
		}
	}
	return out
}

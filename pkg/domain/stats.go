package domain

import "time"

// The backend exposes only generic list endpoints, so dashboard numbers
// are derived client-side. Everything in this file is a pure function of
// its input: same collection in, same numbers out.

// DefaultLowStockThreshold marks products that need restocking.
const DefaultLowStockThreshold = 5

// LowStock returns products whose stock is at or below threshold,
// preserving input order.
func LowStock(items []Electronic, threshold int) []Electronic {
	var out []Electronic
	for _, e := range items {
		if e.Stock <= threshold {
			out = append(out, e)
		}
	}
	return out
}

// RevenueForMonth sums the total price of delivered invoices created in
// the given month. Cancelled and in-flight orders do not count.
func RevenueForMonth(invoices []Invoice, year int, month time.Month) int64 {
	var total int64
	for _, inv := range invoices {
		if inv.Status != StatusDelivered {
			continue
		}
		if inv.CreatedAt.Year() == year && inv.CreatedAt.Month() == month {
			total += inv.TotalPrice
		}
	}
	return total
}

// StatusTally counts invoices per status.
func StatusTally(invoices []Invoice) map[string]int {
	tally := make(map[string]int)
	for _, inv := range invoices {
		tally[inv.Status]++
	}
	return tally
}

// InvoicesTotal sums the total price of all given invoices.
func InvoicesTotal(invoices []Invoice) int64 {
	var total int64
	for _, inv := range invoices {
		total += inv.TotalPrice
	}
	return total
}

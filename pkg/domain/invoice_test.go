package domain

import "testing"

func TestFilterInvoicesByStatus(t *testing.T) {
	invoices := []Invoice{
		{Status: StatusPending},
		{Status: StatusDelivered},
		{Status: StatusDelivered},
		{Status: StatusCancelled},
	}

	if got := FilterInvoicesByStatus(invoices, StatusDelivered); len(got) != 2 {
		t.Errorf("delivered filter returned %d invoices, want 2", len(got))
	}
	if got := FilterInvoicesByStatus(invoices, StatusShipping); len(got) != 0 {
		t.Errorf("shipping filter returned %d invoices, want 0", len(got))
	}
	if got := FilterInvoicesByStatus(invoices, ""); len(got) != len(invoices) {
		t.Errorf("empty status returned %d invoices, want all %d", len(got), len(invoices))
	}
}

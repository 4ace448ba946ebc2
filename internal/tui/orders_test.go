package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

func TestOrdersListShowsStatusAndTotal(t *testing.T) {
	m := newOrdersModel(testServices(testUser(false)))
	m.width = 80
	m.height = 24
	m, _ = m.Update(ordersLoadedMsg{invoices: []domain.Invoice{
		makeInvoice(domain.StatusDelivered, 1250000, time.Now()),
	}})

	view := m.View()
	if !strings.Contains(view, "delivered") {
		t.Errorf("expected status, got:\n%s", view)
	}
	if !strings.Contains(view, "1.250.000") {
		t.Errorf("expected total, got:\n%s", view)
	}
}

func TestOrdersDetailShowsItems(t *testing.T) {
	inv := domain.Invoice{
		ID:            uuid.New(),
		Status:        domain.StatusPending,
		Address:       "12 Elm St",
		PaymentMethod: domain.PaymentOnDelivery,
		TotalPrice:    500000,
		PurchasedItems: []domain.PurchasedItem{
			{ElectronicID: uuid.New(), Name: "Mouse", Quantity: 1, Price: 500000},
		},
		CreatedAt: time.Now(),
	}

	m := newOrdersModel(testServices(testUser(false)))
	m.width = 80
	m.height = 24
	m, _ = m.Update(ordersLoadedMsg{invoices: []domain.Invoice{inv}})
	m, _ = m.Update(keyEnter())

	view := m.View()
	if !strings.Contains(view, "Mouse") {
		t.Errorf("expected purchased item, got:\n%s", view)
	}
	if !strings.Contains(view, "12 Elm St") {
		t.Errorf("expected address, got:\n%s", view)
	}
}

func TestOrdersEmptyState(t *testing.T) {
	m := newOrdersModel(testServices(testUser(false)))
	m, _ = m.Update(ordersLoadedMsg{})
	if !strings.Contains(m.View(), "no orders yet") {
		t.Error("expected empty state")
	}
}

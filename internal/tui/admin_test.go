package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

func newTestAdminModel() adminModel {
	m := newAdminModel(testServices(testUser(true)))
	m.width = 80
	m.height = 30
	return m
}

func makeInvoice(status string, total int64, created time.Time) domain.Invoice {
	return domain.Invoice{
		ID:         uuid.New(),
		Status:     status,
		TotalPrice: total,
		CreatedAt:  created,
	}
}

func TestAdminDashboardStats(t *testing.T) {
	now := time.Now()
	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{
		products: []domain.Electronic{
			makeProduct("Healthy Stock", 100, 50, uuid.Nil),
			makeProduct("Nearly Gone", 100, 2, uuid.Nil),
		},
		invoices: []domain.Invoice{
			makeInvoice(domain.StatusDelivered, 2000000, now),
			makeInvoice(domain.StatusPending, 9000000, now),
			makeInvoice(domain.StatusDelivered, 3000000, now.AddDate(0, -2, 0)),
		},
		users: []domain.User{*testUser(false)},
	})

	view := m.View()
	// Only this month's delivered order counts toward revenue.
	if !strings.Contains(view, "2.000.000") {
		t.Errorf("expected monthly revenue 2.000.000, got:\n%s", view)
	}
	if !strings.Contains(view, "Nearly Gone") {
		t.Errorf("expected low stock product listed, got:\n%s", view)
	}
	if strings.Contains(view, "Healthy Stock") {
		t.Errorf("healthy product should not be in low stock list, got:\n%s", view)
	}
	if !strings.Contains(view, "pending 1") {
		t.Errorf("expected status tally, got:\n%s", view)
	}
}

func TestAdminSectionCycling(t *testing.T) {
	m := newTestAdminModel()
	m, _ = m.Update(key("]"))
	if m.section != secProducts {
		t.Errorf("section = %d, want products", m.section)
	}
	m, _ = m.Update(key("["))
	m, _ = m.Update(key("["))
	if m.section != secUsers {
		t.Errorf("section = %d, want users after wrapping backwards", m.section)
	}
}

func TestAdminProductFormPrefilled(t *testing.T) {
	brand := domain.Brand{ID: uuid.New(), Name: "Acme"}
	cat := domain.Category{ID: uuid.New(), Name: "Phones"}
	p := makeProduct("iPhone 15", 25000000, 12, cat.ID)
	p.BrandID = brand.ID

	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{
		products:   []domain.Electronic{p},
		brands:     []domain.Brand{brand},
		categories: []domain.Category{cat},
	})
	m.section = secProducts

	m, _ = m.Update(key("e"))
	if !m.formOpen {
		t.Fatal("expected edit form open")
	}
	if got := m.fieldValue("name"); got != "iPhone 15" {
		t.Errorf("name = %q", got)
	}
	if got := m.fieldValue("price"); got != "25000000" {
		t.Errorf("price = %q", got)
	}
	if got := m.fieldValue("brand"); got != "Acme" {
		t.Errorf("brand = %q", got)
	}
	if m.editID != p.ID {
		t.Error("editID not set to the selected product")
	}
}

func TestAdminNewProductNeedsBrandAndCategory(t *testing.T) {
	m := newTestAdminModel()
	m.section = secProducts
	m, _ = m.Update(key("n"))
	if m.formOpen {
		t.Error("product form opened without brands and categories loaded")
	}
}

func TestAdminUserFormTypeCycles(t *testing.T) {
	m := newTestAdminModel()
	m.section = secUsers
	m, _ = m.Update(key("n"))
	if !m.formOpen {
		t.Fatal("expected user form open")
	}

	for i, f := range m.fields {
		if f.label == "type" {
			m.focus = i
		}
	}
	if got := m.fieldValue("type"); got != domain.TypeUser {
		t.Fatalf("default type = %q, want user", got)
	}
	m, _ = m.Update(key("l"))
	if got := m.fieldValue("type"); got != domain.TypeAdmin {
		t.Errorf("type after cycle = %q, want admin", got)
	}
}

func TestAdminFormEscCloses(t *testing.T) {
	m := newTestAdminModel()
	m.section = secCategories
	m, _ = m.Update(key("n"))
	if !m.formOpen {
		t.Fatal("expected form open")
	}
	m, _ = m.updateFormKeys("esc")
	if m.formOpen {
		t.Error("expected form closed after esc")
	}
}

func TestAdminUserSearchFiltersRows(t *testing.T) {
	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{users: []domain.User{
		{UserID: uuid.New(), Email: "alice@example.com", Fullname: "Alice Nguyen"},
		{UserID: uuid.New(), Email: "bob@example.com", Fullname: "Bob Tran"},
	}})
	m.section = secUsers

	m, _ = m.Update(key("/"))
	if !m.searching {
		t.Fatal("expected search mode")
	}
	for _, r := range "alice" {
		m, _ = m.Update(key(string(r)))
	}

	view := m.View()
	if !strings.Contains(view, "alice@example.com") {
		t.Errorf("expected matching user visible, got:\n%s", view)
	}
	if strings.Contains(view, "bob@example.com") {
		t.Errorf("expected non-matching user hidden, got:\n%s", view)
	}

	m, _ = m.Update(keyEnter())
	if m.searching {
		t.Error("expected search mode closed after enter")
	}
	if got := len(m.visibleUsers()); got != 1 {
		t.Errorf("visible users = %d, want 1", got)
	}
}

func TestAdminUserSearchScopesEdit(t *testing.T) {
	alice := domain.User{UserID: uuid.New(), Email: "alice@example.com", Fullname: "Alice Nguyen", Type: domain.TypeUser}
	bob := domain.User{UserID: uuid.New(), Email: "bob@example.com", Fullname: "Bob Tran", Type: domain.TypeUser}

	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{users: []domain.User{alice, bob}})
	m.section = secUsers
	m.query = "bob"

	m, _ = m.Update(key("e"))
	if !m.formOpen {
		t.Fatal("expected edit form open")
	}
	if m.editID != bob.UserID {
		t.Error("expected the filtered row to be edited, not the unfiltered one")
	}
}

func TestAdminBrandSearchFiltersRows(t *testing.T) {
	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{brands: []domain.Brand{
		{ID: uuid.New(), Name: "Apple"},
		{ID: uuid.New(), Name: "Samsung"},
	}})
	m.section = secBrands

	m, _ = m.Update(key("/"))
	for _, r := range "sam" {
		m, _ = m.Update(key(string(r)))
	}

	view := m.View()
	if !strings.Contains(view, "Samsung") {
		t.Errorf("expected matching brand visible, got:\n%s", view)
	}
	if strings.Contains(view, "Apple") {
		t.Errorf("expected non-matching brand hidden, got:\n%s", view)
	}
}

func TestAdminSectionSwitchClearsSearch(t *testing.T) {
	m := newTestAdminModel()
	m.section = secUsers
	m.query = "alice"
	m, _ = m.Update(key("]"))
	if m.query != "" {
		t.Errorf("query = %q, want cleared on section change", m.query)
	}
}

func TestAdminOrderStatusFilterCycles(t *testing.T) {
	now := time.Now()
	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{invoices: []domain.Invoice{
		makeInvoice(domain.StatusPending, 100000, now),
		makeInvoice(domain.StatusDelivered, 250000, now),
		makeInvoice(domain.StatusDelivered, 400000, now),
	}})
	m.section = secOrders

	m, _ = m.Update(key("f")) // -> pending
	if got := m.statusFilter(); got != domain.StatusPending {
		t.Fatalf("filter = %q, want pending", got)
	}
	if got := len(m.visibleInvoices()); got != 1 {
		t.Errorf("visible invoices = %d, want 1", got)
	}

	view := m.View()
	if !strings.Contains(view, "100.000") {
		t.Errorf("expected pending order row, got:\n%s", view)
	}
	if strings.Contains(view, "250.000") {
		t.Errorf("expected delivered orders hidden, got:\n%s", view)
	}

	for range domain.InvoiceStatuses {
		m, _ = m.Update(key("f")) // wrap back to all
	}
	if got := m.statusFilter(); got != "" {
		t.Errorf("filter = %q, want all after wrapping", got)
	}
}

func TestAdminOrdersViewShowsFilteredTotal(t *testing.T) {
	now := time.Now()
	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{invoices: []domain.Invoice{
		makeInvoice(domain.StatusDelivered, 250000, now),
		makeInvoice(domain.StatusDelivered, 400000, now),
		makeInvoice(domain.StatusPending, 100000, now),
	}})
	m.section = secOrders
	m.statusIdx = 4 // delivered

	view := m.View()
	if !strings.Contains(view, "650.000") {
		t.Errorf("expected total of the filtered orders, got:\n%s", view)
	}
}

func TestAdminStatusFilterScopesAdvance(t *testing.T) {
	now := time.Now()
	pending := makeInvoice(domain.StatusPending, 100000, now)
	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{invoices: []domain.Invoice{
		makeInvoice(domain.StatusDelivered, 250000, now),
		pending,
	}})
	m.section = secOrders
	m.statusIdx = 1 // pending

	_, cmd := m.advanceOrderStatus()
	if cmd == nil {
		t.Fatal("expected a status command for the filtered row")
	}
}

func TestAdminOrderRowsShowStatus(t *testing.T) {
	m := newTestAdminModel()
	m, _ = m.Update(adminLoadedMsg{
		invoices: []domain.Invoice{makeInvoice(domain.StatusShipping, 750000, time.Now())},
	})
	m.section = secOrders

	view := m.View()
	if !strings.Contains(view, "shipping") {
		t.Errorf("expected status in order row, got:\n%s", view)
	}
	if !strings.Contains(view, "750.000") {
		t.Errorf("expected order total in row, got:\n%s", view)
	}
}

package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/connectify/connectify/pkg/domain"
)

func newTestShopModel() shopModel {
	m := newShopModel(testServices(testUser(false)))
	m.width = 80
	m.height = 24
	return m
}

func makeProduct(name string, price int64, stock int, cat uuid.UUID) domain.Electronic {
	return domain.Electronic{
		ID:         uuid.New(),
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: cat,
		CreatedAt:  time.Now(),
	}
}

func TestShopLoadedShowsProducts(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{products: []domain.Electronic{
		makeProduct("iPhone 15", 25000000, 12, uuid.Nil),
	}})

	view := m.View()
	if !strings.Contains(view, "iPhone 15") {
		t.Errorf("expected product name, got:\n%s", view)
	}
	if !strings.Contains(view, "25.000.000") {
		t.Errorf("expected formatted price, got:\n%s", view)
	}
}

func TestShopLoadErrorShown(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{errText: "could not load products"})
	if !strings.Contains(m.View(), "could not load products") {
		t.Error("expected load error in view")
	}
}

func TestShopSearchFiltersList(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{products: []domain.Electronic{
		makeProduct("iPhone 15", 25000000, 12, uuid.Nil),
		makeProduct("Galaxy S24", 22000000, 8, uuid.Nil),
	}})

	m, _ = m.Update(key("/"))
	if !m.searching {
		t.Fatal("expected search mode")
	}
	for _, r := range "galaxy" {
		m, _ = m.Update(key(string(r)))
	}

	view := m.View()
	if !strings.Contains(view, "Galaxy S24") {
		t.Errorf("expected matching product visible, got:\n%s", view)
	}
	if strings.Contains(view, "iPhone 15") {
		t.Errorf("expected non-matching product hidden, got:\n%s", view)
	}
}

func TestShopCategoryFilterCycles(t *testing.T) {
	phones := domain.Category{ID: uuid.New(), Name: "Phones"}
	laptops := domain.Category{ID: uuid.New(), Name: "Laptops"}

	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{
		products: []domain.Electronic{
			makeProduct("iPhone 15", 25000000, 12, phones.ID),
			makeProduct("ThinkPad X1", 40000000, 3, laptops.ID),
		},
		categories: []domain.Category{phones, laptops},
	})

	m, _ = m.Update(key("f")) // -> Phones
	view := m.View()
	if !strings.Contains(view, "iPhone 15") || strings.Contains(view, "ThinkPad X1") {
		t.Errorf("expected only phones visible, got:\n%s", view)
	}

	m, _ = m.Update(key("f")) // -> Laptops
	m, _ = m.Update(key("f")) // -> all
	view = m.View()
	if !strings.Contains(view, "iPhone 15") || !strings.Contains(view, "ThinkPad X1") {
		t.Errorf("expected all products visible again, got:\n%s", view)
	}
}

func TestShopBrandFilterCycles(t *testing.T) {
	apple := domain.Brand{ID: uuid.New(), Name: "Apple"}
	samsung := domain.Brand{ID: uuid.New(), Name: "Samsung"}

	iphone := makeProduct("iPhone 15", 25000000, 12, uuid.Nil)
	iphone.BrandID = apple.ID
	galaxy := makeProduct("Galaxy S24", 22000000, 8, uuid.Nil)
	galaxy.BrandID = samsung.ID

	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{
		products: []domain.Electronic{iphone, galaxy},
		brands:   []domain.Brand{apple, samsung},
	})

	m, _ = m.Update(key("b")) // -> Apple
	view := m.View()
	if !strings.Contains(view, "iPhone 15") || strings.Contains(view, "Galaxy S24") {
		t.Errorf("expected only Apple products visible, got:\n%s", view)
	}

	m, _ = m.Update(key("b")) // -> Samsung
	m, _ = m.Update(key("b")) // -> all
	view = m.View()
	if !strings.Contains(view, "iPhone 15") || !strings.Contains(view, "Galaxy S24") {
		t.Errorf("expected all products visible again, got:\n%s", view)
	}
}

func TestShopDetailSurvivesEmptyReload(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{products: []domain.Electronic{
		makeProduct("iPhone 15", 25000000, 12, uuid.Nil),
	}})

	m, _ = m.Update(keyEnter())
	if !m.detail {
		t.Fatal("expected detail open")
	}

	m, _ = m.Update(shopLoadedMsg{})
	if len(m.visible) != 0 {
		t.Fatalf("len(visible) = %d, want 0", len(m.visible))
	}

	m, _ = m.Update(key("+"))
	if m.detail {
		t.Error("expected detail closed after the list emptied")
	}
}

func TestShopSortByPrice(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{products: []domain.Electronic{
		makeProduct("Expensive", 900, 1, uuid.Nil),
		makeProduct("Cheap", 100, 1, uuid.Nil),
	}})

	m, _ = m.Update(key("s")) // price ascending
	if m.visible[0].Name != "Cheap" {
		t.Errorf("expected Cheap first, got %q", m.visible[0].Name)
	}
	m, _ = m.Update(key("s")) // price descending
	if m.visible[0].Name != "Expensive" {
		t.Errorf("expected Expensive first, got %q", m.visible[0].Name)
	}
}

func TestShopDetailShowsStockWarning(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{products: []domain.Electronic{
		makeProduct("Rare Gadget", 500000, 2, uuid.Nil),
	}})

	view := m.View()
	if !strings.Contains(view, "only 2 left") {
		t.Errorf("expected low stock warning, got:\n%s", view)
	}
}

func TestShopDetailQuantityClampedToStock(t *testing.T) {
	m := newTestShopModel()
	m, _ = m.Update(shopLoadedMsg{products: []domain.Electronic{
		makeProduct("Rare Gadget", 500000, 2, uuid.Nil),
	}})

	m.detail = true
	m.qty = 1
	m, _ = m.Update(key("+"))
	m, _ = m.Update(key("+"))
	m, _ = m.Update(key("+"))
	if m.qty != 2 {
		t.Errorf("qty = %d, want clamped to stock 2", m.qty)
	}
	m, _ = m.Update(key("-"))
	m, _ = m.Update(key("-"))
	if m.qty != 1 {
		t.Errorf("qty = %d, want floor of 1", m.qty)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0₫"},
		{999, "999₫"},
		{1000, "1.000₫"},
		{25000000, "25.000.000₫"},
		{-1500, "-1.500₫"},
	}
	for _, tc := range tests {
		if got := formatPrice(tc.in); got != tc.want {
			t.Errorf("formatPrice(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Electronic represents a product in the catalog.
// Price is in whole currency units (VND).
type Electronic struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	BrandID     uuid.UUID `json:"brandId"`
	CategoryID  uuid.UUID `json:"categoryId"`
	Brand       *Brand    `json:"brand,omitempty"`
	Category    *Category `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InStock reports whether the product can currently be ordered.
func (e Electronic) InStock() bool {
	return e.Stock > 0
}

// Sort orders accepted by SortElectronics.
const (
	SortNewest    = "new"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortName      = "name"
)

// SearchElectronics returns products whose name or description contains
// the query, case-insensitively. An empty query matches everything.
// The backend exposes no search endpoint, so list views filter locally.
func SearchElectronics(items []Electronic, query string) []Electronic {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	var out []Electronic
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(strings.ToLower(e.Description), query) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByCategory returns products belonging to the given category.
// A nil category ID matches everything.
func FilterByCategory(items []Electronic, categoryID uuid.UUID) []Electronic {
	if categoryID == uuid.Nil {
		return items
	}
	var out []Electronic
	for _, e := range items {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}

// FilterByBrand returns products belonging to the given brand.
// A nil brand ID matches everything.
func FilterByBrand(items []Electronic, brandID uuid.UUID) []Electronic {
	if brandID == uuid.Nil {
		return items
	}
	var out []Electronic
	for _, e := range items {
		if e.BrandID == brandID {
			out = append(out, e)
		}
	}
	return out
}

// SortElectronics returns a sorted copy of items. Unknown sort keys
// fall back to newest-first. The input slice is not modified.
func SortElectronics(items []Electronic, by string) []Electronic {
	out := make([]Electronic, len(items))
	copy(out, items)
	switch by {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortName:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

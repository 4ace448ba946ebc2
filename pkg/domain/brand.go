package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Brand represents a product manufacturer.
type Brand struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image string    `json:"image,omitempty"`
}

// SearchBrands returns brands whose name contains the query,
// case-insensitively. An empty query matches all.
func SearchBrands(brands []Brand, query string) []Brand {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return brands
	}
	var out []Brand
	for _, b := range brands {
		if strings.Contains(strings.ToLower(b.Name), query) {
			out = append(out, b)
		}
	}
	return out
}

package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Category groups products, e.g. "mobile" or "laptop".
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CategoryByName finds a category by case-insensitive name match.
// Returns nil when no category matches.
func CategoryByName(categories []Category, name string) *Category {
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i]
		}
	}
	return nil
}

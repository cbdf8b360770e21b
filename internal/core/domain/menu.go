package domain

import (
	"errors"
	"time"
)

// Category classifies a menu item for browsing.
type Category string

const (
	CategoryEntree  Category = "Entree"
	CategorySide    Category = "Side"
	CategoryDrink   Category = "Drink"
	CategoryDessert Category = "Dessert"
	CategorySpecial Category = "Special"
)

var categories = map[Category]struct{}{
	CategoryEntree:  {},
	CategorySide:    {},
	CategoryDrink:   {},
	CategoryDessert: {},
	CategorySpecial: {},
}

var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrInvalidCategory = errors.New("invalid menu category")
var ErrInvalidMenuItem = errors.New("invalid menu item")

// Valid reports whether c is a member of the category enumeration.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// MenuItem is a purchasable catalog entry. ImagePath, when set, is a relative
// asset path (uploads/...) or an absolute URL; it is never an absolute
// filesystem path so documents stay portable across hosts.
type MenuItem struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    Category  `json:"category"`
	ImagePath   string    `json:"imagePath,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

package handler

import "time"

// --- Request types ---
// Menu mutations arrive as multipart forms (fields + optional imageFile), so
// these structs are filled from form values before validation rather than
// bound from JSON.

type createMenuItemRequest struct {
	Name        string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Category    string  `validate:"required,oneof=Entree Side Drink Dessert Special"`
}

type updateMenuItemRequest struct {
	Name        *string
	Description *string
	Price       *float64 `validate:"omitempty,gte=0"`
	Category    *string  `validate:"omitempty,oneof=Entree Side Drink Dessert Special"`
	Available   *bool
}

// --- Response types ---

type menuItemResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImagePath   string    `json:"imagePath,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type deleteMenuItemResponse struct {
	Message string `json:"message"`
}

package handler

import "github.com/campusdining/campus-dining-api/internal/core/domain"

func toMenuItemResponse(item *domain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
		ImagePath:   item.ImagePath,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func toMenuItemResponses(items []domain.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, len(items))
	for i := range items {
		out[i] = toMenuItemResponse(&items[i])
	}
	return out
}

package ports

import (
	"context"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

// MenuRepository defines persistence operations for catalog items.
type MenuRepository interface {
	// List returns catalog items sorted by category then name. When
	// availableOnly is true, unavailable items are filtered out.
	List(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error)

	// FindByID retrieves an item, or domain.ErrMenuItemNotFound.
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)

	// Insert persists a new item and returns it with its assigned ID.
	Insert(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)

	// Update replaces the stored fields of an existing item and returns the
	// updated document, or domain.ErrMenuItemNotFound.
	Update(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)

	// Delete removes an item, or returns domain.ErrMenuItemNotFound.
	Delete(ctx context.Context, id string) error
}

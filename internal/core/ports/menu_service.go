package ports

import (
	"context"
	"io"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

// ImageUpload carries an uploaded image from the transport layer into the
// menu service without binding the service to multipart mechanics.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// CreateMenuItemInput carries the required fields for a new catalog item.
type CreateMenuItemInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Available   *bool // nil = default true
}

// UpdateMenuItemInput is a partial update: nil fields keep their prior values.
type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Available   *bool
}

// MenuService defines use-case operations for the catalog.
type MenuService interface {
	List(ctx context.Context, availableOnly bool) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, input CreateMenuItemInput, image *ImageUpload) (*domain.MenuItem, error)
	Update(ctx context.Context, id string, input UpdateMenuItemInput, image *ImageUpload) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

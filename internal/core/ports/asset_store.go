package ports

import (
	"context"
	"io"
)

// AssetStore persists uploaded image assets. Implementations return and accept
// relative references (e.g. "uploads/imageFile-1701382490-123456789.jpg") so
// stored paths remain portable across deployment hosts.
type AssetStore interface {
	// Save writes the asset and returns its relative reference.
	Save(ctx context.Context, field, filename string, src io.Reader) (string, error)

	// Delete removes a previously saved asset. Deleting an asset that no
	// longer exists is not an error.
	Delete(ctx context.Context, relPath string) error
}

package ports

import (
	"context"
	"time"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders. Each order is a
// single document; every write here is one atomic document operation.
type OrderRepository interface {
	// Create inserts a new order. Returns domain.ErrOrderIDTaken when the
	// unique index on order_id rejects the insert, so the caller can re-derive
	// the identifier and retry.
	Create(ctx context.Context, o *domain.Order) error

	// FindByOrderID retrieves an order by its human-readable identifier.
	FindByOrderID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListActive returns all orders whose status is not Completed,
	// newest-first by creation time.
	ListActive(ctx context.Context) ([]*domain.Order, error)

	// UpdateStatus sets the order's status and updated_at timestamp and
	// returns the updated order, or domain.ErrOrderNotFound.
	UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus, ts time.Time) (*domain.Order, error)
}

package ports

import (
	"context"
	"time"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
)

// OrderLineInput is one frozen line item submitted at checkout.
type OrderLineInput struct {
	ItemID    string
	Name      string
	UnitPrice float64
	Quantity  int
}

// CreateOrderInput carries everything needed to place an order. TotalAmount is
// client-supplied and is not recomputed against the lines server-side; this is
// a known integrity gap carried over from the original contract.
type CreateOrderInput struct {
	CustomerName    string
	CustomerContact string
	Lines           []OrderLineInput
	TotalAmount     float64
}

// OrderResult is returned after a successful checkout. QRCodeData is the
// payload the client renders as a payment QR code.
type OrderResult struct {
	OrderID     string
	Status      string
	TotalAmount float64
	QRCodeData  string
	CreatedAt   time.Time
}

// TrackResult is the public tracking view of an order.
type TrackResult struct {
	OrderID  string
	Status   string
	Lines    []domain.OrderLine
	Total    float64
	Customer domain.Customer
	PlacedAt time.Time
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	Create(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	Track(ctx context.Context, orderID string) (*TrackResult, error)
	ListActive(ctx context.Context) ([]*domain.Order, error)
	SetStatus(ctx context.Context, orderID string, status string) (*domain.Order, error)
}

package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
	"github.com/campusdining/campus-dining-api/internal/core/ports"
)

const orderIDPrefix = "ORD-"

// maxIDAttempts bounds regeneration when the random suffix collides with an
// existing order_id. Six digits leave plenty of headroom, so more than one
// retry is already rare.
const maxIDAttempts = 5

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// Create validates a checkout submission and persists it as a new Pending
// order. The line items are stored as submitted, a frozen snapshot of the
// catalog at checkout time. TotalAmount is likewise taken from the client and
// not recomputed against the lines; callers relying on it for settlement must
// treat that as a trust decision, not a guarantee.
func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	if err := validateCreateOrder(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	lines := make([]domain.OrderLine, len(input.Lines))
	for i, l := range input.Lines {
		lines[i] = domain.OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		}
	}

	order := &domain.Order{
		Customer: domain.Customer{
			Name:    input.CustomerName,
			Contact: input.CustomerContact,
		},
		Lines:       lines,
		TotalAmount: input.TotalAmount,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// The unique index on order_id is the arbiter for concurrent creators
	// that derive the same suffix: re-derive and retry, never overwrite.
	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		order.OrderID = generateOrderID()
		err = s.repo.Create(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrOrderIDTaken) {
			s.logger.Error().Err(err).Msg("failed to create order")
			return nil, err
		}
		s.logger.Warn().Str("order_id", order.OrderID).Int("attempt", attempt+1).Msg("order id collision, regenerating")
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Int("lines", len(order.Lines)).
		Float64("total", order.TotalAmount).
		Msg("order placed")

	return &ports.OrderResult{
		OrderID:     order.OrderID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		QRCodeData:  qrCodeData(order),
		CreatedAt:   order.CreatedAt,
	}, nil
}

// Track returns the public tracking view for an order id.
func (s *OrderService) Track(ctx context.Context, orderID string) (*ports.TrackResult, error) {
	order, err := s.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &ports.TrackResult{
		OrderID:  order.OrderID,
		Status:   string(order.Status),
		Lines:    order.Lines,
		Total:    order.TotalAmount,
		Customer: order.Customer,
		PlacedAt: order.CreatedAt,
	}, nil
}

// ListActive returns every order not yet Completed, newest-first, for the
// admin dashboard.
func (s *OrderService) ListActive(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.ListActive(ctx)
}

// SetStatus moves an order to the given status. Membership in the status
// enumeration is enforced; transitions between members are not.
func (s *OrderService) SetStatus(ctx context.Context, orderID string, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, next, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", orderID).Str("status", status).Msg("order status updated")
	return updated, nil
}

func validateCreateOrder(input ports.CreateOrderInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrInvalidOrder)
	}
	if strings.TrimSpace(input.CustomerContact) == "" {
		return fmt.Errorf("%w: customer contact is required", domain.ErrInvalidOrder)
	}
	if len(input.Lines) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", domain.ErrInvalidOrder)
	}
	for i, l := range input.Lines {
		if strings.TrimSpace(l.ItemID) == "" || strings.TrimSpace(l.Name) == "" {
			return fmt.Errorf("%w: item %d is missing id or name", domain.ErrInvalidOrder, i)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", domain.ErrInvalidOrder, i)
		}
		if l.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d has negative price", domain.ErrInvalidOrder, i)
		}
	}
	if input.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount is required", domain.ErrInvalidOrder)
	}
	return nil
}

// generateOrderID returns a human-readable identifier in the format
// ORD-XXXXXX with a random six-digit suffix.
func generateOrderID() string {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		// fallback: derive from the clock
		return fmt.Sprintf("%s%06d", orderIDPrefix, time.Now().UnixNano()%1_000_000)
	}
	return fmt.Sprintf("%s%06d", orderIDPrefix, binary.BigEndian.Uint32(b[:])%1_000_000)
}

// qrCodeData builds the payment payload the client renders as a QR code.
func qrCodeData(o *domain.Order) string {
	return "ORDER_ID:" + o.OrderID + "|AMOUNT:" + strconv.FormatFloat(o.TotalAmount, 'f', -1, 64)
}

package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

// orderStatuses is the closed set of admissible status values. Transitions
// between them are deliberately unconstrained: the kitchen dashboard may move
// an order from any status to any other.
var orderStatuses = map[OrderStatus]struct{}{
	StatusPending:   {},
	StatusPreparing: {},
	StatusReady:     {},
	StatusCompleted: {},
	StatusCancelled: {},
}

var ErrOrderNotFound = errors.New("order not found")
var ErrOrderIDTaken = errors.New("order id already taken")
var ErrInvalidStatus = errors.New("invalid order status")
var ErrInvalidOrder = errors.New("invalid order")

// Valid reports whether s is a member of the status enumeration.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// Customer holds the contact details submitted at checkout.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Contact string `json:"contact" bson:"contact"`
}

// OrderLine is a frozen snapshot of a catalog item at the moment the order was
// placed. Later edits to the catalog never touch it.
type OrderLine struct {
	ItemID    string  `json:"itemId" bson:"item_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"price" bson:"unit_price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is the aggregate persisted for every checkout. OrderID is the
// human-readable reference (ORD-XXXXXX) customers use for tracking; it is
// unique and immutable once assigned.
type Order struct {
	OrderID     string      `json:"orderId"`
	Customer    Customer    `json:"customerDetails"`
	Lines       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

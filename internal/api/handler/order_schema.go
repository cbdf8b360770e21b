package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type orderLineRequest struct {
	ItemID   string  `json:"itemId"   validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	CustomerName  string             `json:"customerName"  validate:"required"`
	CustomerEmail string             `json:"customerEmail" validate:"required"`
	Items         []orderLineRequest `json:"items"         validate:"required,min=1,dive"`
	TotalAmount   float64            `json:"totalAmount"   validate:"required,gt=0"`
}

type setStatusRequest struct {
	NewStatus string `json:"newStatus" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to internal
// service changes.

type orderLineResponse struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type customerResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type createOrderResponse struct {
	Message    string    `json:"message"`
	OrderID    string    `json:"orderId"`
	Status     string    `json:"status"`
	QRCodeData string    `json:"qrCodeData"`
	PlacedAt   time.Time `json:"placedAt"`
}

type trackOrderResponse struct {
	OrderID  string              `json:"orderId"`
	Status   string              `json:"status"`
	Items    []orderLineResponse `json:"items"`
	Total    float64             `json:"total"`
	Customer customerResponse    `json:"customer"`
	PlacedAt time.Time           `json:"placedAt"`
}

type orderResponse struct {
	OrderID     string              `json:"orderId"`
	Customer    customerResponse    `json:"customerDetails"`
	Items       []orderLineResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
	Status      string              `json:"status"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

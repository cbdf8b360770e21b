package handler

import (
	"github.com/campusdining/campus-dining-api/internal/core/domain"
	"github.com/campusdining/campus-dining-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateOrderInput(req createOrderRequest) ports.CreateOrderInput {
	lines := make([]ports.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		lines[i] = ports.OrderLineInput{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		}
	}
	return ports.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerContact: req.CustomerEmail,
		Lines:           lines,
		TotalAmount:     req.TotalAmount,
	}
}

// --- Service result → HTTP response ---

func toLineResponses(lines []domain.OrderLine) []orderLineResponse {
	out := make([]orderLineResponse, len(lines))
	for i, l := range lines {
		out[i] = orderLineResponse{
			ItemID:   l.ItemID,
			Name:     l.Name,
			Price:    l.UnitPrice,
			Quantity: l.Quantity,
		}
	}
	return out
}

func toTrackResponse(tr *ports.TrackResult) trackOrderResponse {
	return trackOrderResponse{
		OrderID: tr.OrderID,
		Status:  tr.Status,
		Items:   toLineResponses(tr.Lines),
		Total:   tr.Total,
		Customer: customerResponse{
			Name:    tr.Customer.Name,
			Contact: tr.Customer.Contact,
		},
		PlacedAt: tr.PlacedAt.UTC(),
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		OrderID: o.OrderID,
		Customer: customerResponse{
			Name:    o.Customer.Name,
			Contact: o.Customer.Contact,
		},
		Items:       toLineResponses(o.Lines),
		TotalAmount: o.TotalAmount,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt.UTC(),
		UpdatedAt:   o.UpdatedAt.UTC(),
	}
}

func toOrderResponses(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}

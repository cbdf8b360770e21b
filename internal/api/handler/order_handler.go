package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusdining/campus-dining-api/internal/api/metrics"
	"github.com/campusdining/campus-dining-api/internal/core/domain"
	"github.com/campusdining/campus-dining-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for checkout, tracking, and the admin
// order dashboard.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /order, placing a new order from a checkout submission.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Checkout submission"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /order [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		metrics.OrderCreateFailuresTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.OrderCreateFailuresTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.Create(c.Request().Context(), toCreateOrderInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrder) {
			metrics.OrderCreateFailuresTotal.WithLabelValues("validation").Inc()
		} else {
			metrics.OrderCreateFailuresTotal.WithLabelValues("store").Inc()
		}
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createOrderResponse{
		Message:    "Order placed successfully.",
		OrderID:    result.OrderID,
		Status:     result.Status,
		QRCodeData: result.QRCodeData,
		PlacedAt:   result.CreatedAt.UTC(),
	})
}

// Track handles GET /order/track/:id, the public status lookup by order id.
//
// @Summary      Track an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id (e.g. ORD-483920)"
// @Success      200  {object}  trackOrderResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /order/track/{id} [get]
func (h *OrderHandler) Track(c echo.Context) error {
	result, err := h.service.Track(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTrackResponse(result))
}

// ListActive handles GET /order/admin, returning all non-completed orders
// newest first.
//
// @Summary      List active orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   orderResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /order/admin [get]
func (h *OrderHandler) ListActive(c echo.Context) error {
	orders, err := h.service.ListActive(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// SetStatus handles PUT /order/admin/:id/status, moving an order to a new
// status. Any member of the status enumeration is accepted.
//
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Order id"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /order/admin/{id}/status [put]
func (h *OrderHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.SetStatus(c.Request().Context(), c.Param("id"), req.NewStatus)
	if err != nil {
		return err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(req.NewStatus).Inc()
	return c.JSON(http.StatusOK, toOrderResponse(updated))
}

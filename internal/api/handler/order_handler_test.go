package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusdining/campus-dining-api/internal/core/domain"
	"github.com/campusdining/campus-dining-api/internal/core/ports"
)

type stubOrderService struct {
	createResult *ports.OrderResult
	createErr    error
	createInput  ports.CreateOrderInput

	trackResult *ports.TrackResult
	trackErr    error

	listResult []*domain.Order
	listErr    error

	setStatusResult *domain.Order
	setStatusErr    error
	setStatusValue  string
}

func (s *stubOrderService) Create(_ context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	s.createInput = input
	return s.createResult, s.createErr
}

func (s *stubOrderService) Track(_ context.Context, _ string) (*ports.TrackResult, error) {
	return s.trackResult, s.trackErr
}

func (s *stubOrderService) ListActive(_ context.Context) ([]*domain.Order, error) {
	return s.listResult, s.listErr
}

func (s *stubOrderService) SetStatus(_ context.Context, _ string, status string) (*domain.Order, error) {
	s.setStatusValue = status
	return s.setStatusResult, s.setStatusErr
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestOrderHandler_Create_Success(t *testing.T) {
	placed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &stubOrderService{
		createResult: &ports.OrderResult{
			OrderID:     "ORD-483920",
			Status:      "Pending",
			TotalAmount: 13,
			QRCodeData:  "ORDER_ID:ORD-483920|AMOUNT:13",
			CreatedAt:   placed,
		},
	}
	h := NewOrderHandler(svc)

	body := `{
		"customerName": "Dana Lee",
		"customerEmail": "dana@campus.edu",
		"items": [{"itemId": "m1", "name": "Burger", "price": 5.5, "quantity": 2}, {"itemId": "m2", "name": "Fries", "price": 2, "quantity": 1}],
		"totalAmount": 13
	}`
	c, rec := newTestContext(http.MethodPost, "/order", body)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp createOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ORD-483920", resp.OrderID)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "ORDER_ID:ORD-483920|AMOUNT:13", resp.QRCodeData)
	assert.Equal(t, "Order placed successfully.", resp.Message)

	assert.Equal(t, "dana@campus.edu", svc.createInput.CustomerContact)
	require.Len(t, svc.createInput.Lines, 2)
	assert.Equal(t, 5.5, svc.createInput.Lines[0].UnitPrice)
}

func TestOrderHandler_Create_ValidationFailure(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	body := `{"customerName": "Dana Lee", "customerEmail": "dana@campus.edu", "items": [], "totalAmount": 13}`
	c, _ := newTestContext(http.MethodPost, "/order", body)

	err := h.Create(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestOrderHandler_Create_ServiceError(t *testing.T) {
	svc := &stubOrderService{createErr: domain.ErrInvalidOrder}
	h := NewOrderHandler(svc)

	body := `{
		"customerName": "Dana Lee",
		"customerEmail": "dana@campus.edu",
		"items": [{"itemId": "m1", "name": "Burger", "price": 5.5, "quantity": 1}],
		"totalAmount": 5.5
	}`
	c, _ := newTestContext(http.MethodPost, "/order", body)

	err := h.Create(c)
	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestOrderHandler_Track_Success(t *testing.T) {
	svc := &stubOrderService{
		trackResult: &ports.TrackResult{
			OrderID: "ORD-000123",
			Status:  "Preparing",
			Lines:   []domain.OrderLine{{ItemID: "m1", Name: "Burger", UnitPrice: 5.5, Quantity: 1}},
			Total:   5.5,
			Customer: domain.Customer{
				Name:    "Dana Lee",
				Contact: "dana@campus.edu",
			},
			PlacedAt: time.Now(),
		},
	}
	h := NewOrderHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/order/track/ORD-000123", "")
	c.SetParamNames("id")
	c.SetParamValues("ORD-000123")

	require.NoError(t, h.Track(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp trackOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ORD-000123", resp.OrderID)
	assert.Equal(t, "Preparing", resp.Status)
	assert.Equal(t, "Dana Lee", resp.Customer.Name)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Burger", resp.Items[0].Name)
}

func TestOrderHandler_Track_NotFound(t *testing.T) {
	svc := &stubOrderService{trackErr: domain.ErrOrderNotFound}
	h := NewOrderHandler(svc)

	c, _ := newTestContext(http.MethodGet, "/order/track/ORD-999999", "")
	c.SetParamNames("id")
	c.SetParamValues("ORD-999999")

	err := h.Track(c)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderHandler_ListActive(t *testing.T) {
	svc := &stubOrderService{
		listResult: []*domain.Order{
			{OrderID: "ORD-000002", Status: domain.StatusPending},
			{OrderID: "ORD-000001", Status: domain.StatusReady},
		},
	}
	h := NewOrderHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/order/admin", "")

	require.NoError(t, h.ListActive(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "ORD-000002", resp[0].OrderID)
}

func TestOrderHandler_SetStatus_Success(t *testing.T) {
	svc := &stubOrderService{
		setStatusResult: &domain.Order{OrderID: "ORD-000001", Status: domain.StatusReady},
	}
	h := NewOrderHandler(svc)

	c, rec := newTestContext(http.MethodPut, "/order/admin/ORD-000001/status", `{"newStatus": "Ready"}`)
	c.SetParamNames("id")
	c.SetParamValues("ORD-000001")

	require.NoError(t, h.SetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ready", svc.setStatusValue)

	var resp orderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Ready", resp.Status)
}

func TestOrderHandler_SetStatus_MissingStatus(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	c, _ := newTestContext(http.MethodPut, "/order/admin/ORD-000001/status", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("ORD-000001")

	err := h.SetStatus(c)
	require.Error(t, err)

	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/checkout"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type stubOrderRepo struct{}

func (stubOrderRepo) Create(ctx context.Context, order *domain.Order) error { return nil }
func (stubOrderRepo) FindByNumber(ctx context.Context, number string) (*domain.Order, error) {
	return nil, errors.New("order not found")
}
func (stubOrderRepo) List(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return nil, nil
}
func (stubOrderRepo) GenerateOrderNumber(ctx context.Context) (string, error) {
	return "ORD_20260828_001", nil
}
func (stubOrderRepo) UpdateStatusWithLog(ctx context.Context, order *domain.Order, changedBy string) error {
	return nil
}
func (stubOrderRepo) GetStatusHistory(ctx context.Context, orderID int) ([]*domain.StatusLog, error) {
	return nil, nil
}
func (stubOrderRepo) TopOrderedItems(ctx context.Context, limit int) ([]interfaces.ItemCount, error) {
	return nil, nil
}

type stubCartService struct {
	cart *domain.Cart
}

func (s stubCartService) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	if s.cart == nil {
		return &domain.Cart{}, nil
	}
	return s.cart, nil
}

func (s stubCartService) AddItem(ctx context.Context, cartID string, line domain.CartLine) (*domain.Cart, error) {
	return nil, errors.New("not implemented")
}

func (s stubCartService) RemoveItem(ctx context.Context, cartID string, itemID int) (*domain.Cart, error) {
	return nil, errors.New("not implemented")
}

func (s stubCartService) UpdateQuantity(ctx context.Context, cartID string, itemID, delta int) (*domain.Cart, error) {
	return nil, errors.New("not implemented")
}

func (s stubCartService) Clear(ctx context.Context, cartID string) error { return nil }

type stubPublisher struct{}

func (stubPublisher) PublishAdminEvent(ctx context.Context, event interfaces.AdminEvent) error {
	return nil
}

type stubMailer struct{}

func (stubMailer) Send(ctx context.Context, msg interfaces.EmailMessage) (interfaces.EmailResult, error) {
	return interfaces.EmailResult{Success: true, Method: "smtp", Recipient: msg.To}, nil
}

func newTestCheckoutHandler(cart *domain.Cart) *CheckoutHandler {
	lgr := logger.New("test")
	svc := checkout.NewService(stubOrderRepo{}, stubCartService{cart: cart}, stubPublisher{}, stubMailer{}, lgr)
	return NewCheckoutHandler(svc, lgr)
}

func validCheckoutBody() string {
	return `{
		"cart_id": "c1",
		"customer_name": "Ali Khan",
		"email": "ali@example.com",
		"phone": "03001234567",
		"address": "House 12, Street 5, Gulberg",
		"city": "Lahore",
		"payment_method": "cash"
	}`
}

func testCartForHandler() *domain.Cart {
	return &domain.Cart{Lines: []domain.CartLine{
		{ItemID: 1, Name: "Chicken Biryani", UnitPrice: 10.00, Quantity: 2},
		{ItemID: 2, Name: "Naan", UnitPrice: 5.00, Quantity: 1},
	}}
}

func TestPlaceOrderHandlerHappyPath(t *testing.T) {
	handler := newTestCheckoutHandler(testCartForHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(validCheckoutBody()))
	rec := httptest.NewRecorder()
	handler.PlaceOrder(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ORD_20260828_001", resp.OrderNumber)
	assert.Equal(t, "pending", resp.Status)
	assert.InDelta(t, 25.00, resp.TotalAmount, 1e-9)
	assert.Equal(t, 2, resp.ItemCount)
}

func TestPlaceOrderHandlerInvalidBody(t *testing.T) {
	handler := newTestCheckoutHandler(testCartForHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.PlaceOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrderHandlerValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing cart id",
			body:      `{"customer_name":"Ali Khan","email":"ali@example.com","phone":"03001234567","address":"House 12, Street 5, Gulberg","payment_method":"cash"}`,
			wantField: "cart_id",
		},
		{
			name:      "bad email",
			body:      `{"cart_id":"c1","customer_name":"Ali Khan","email":"nope","phone":"03001234567","address":"House 12, Street 5, Gulberg","payment_method":"cash"}`,
			wantField: "email",
		},
		{
			name:      "short address",
			body:      `{"cart_id":"c1","customer_name":"Ali Khan","email":"ali@example.com","phone":"03001234567","address":"short","payment_method":"cash"}`,
			wantField: "address",
		},
		{
			name:      "card without payment ref",
			body:      `{"cart_id":"c1","customer_name":"Ali Khan","email":"ali@example.com","phone":"03001234567","address":"House 12, Street 5, Gulberg","payment_method":"card"}`,
			wantField: "payment_ref",
		},
		{
			name:      "cash with payment ref",
			body:      `{"cart_id":"c1","customer_name":"Ali Khan","email":"ali@example.com","phone":"03001234567","address":"House 12, Street 5, Gulberg","payment_method":"cash","payment_ref":"pi_123"}`,
			wantField: "payment_ref",
		},
		{
			name:      "unknown payment method",
			body:      `{"cart_id":"c1","customer_name":"Ali Khan","email":"ali@example.com","phone":"03001234567","address":"House 12, Street 5, Gulberg","payment_method":"bitcoin"}`,
			wantField: "payment_method",
		},
	}

	handler := newTestCheckoutHandler(testCartForHandler())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.PlaceOrder(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			found := false
			for _, ve := range resp.Errors {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			assert.True(t, found, "expected a validation error on %s, got %+v", tt.wantField, resp.Errors)
		})
	}
}

func TestPlaceOrderHandlerEmptyCart(t *testing.T) {
	handler := newTestCheckoutHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(validCheckoutBody()))
	rec := httptest.NewRecorder()
	handler.PlaceOrder(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "empty")
}

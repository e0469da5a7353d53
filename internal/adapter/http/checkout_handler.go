package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/app/checkout"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type CheckoutHandler struct {
	service *checkout.Service
	logger  logger.Logger
}

func NewCheckoutHandler(service *checkout.Service, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: service, logger: logger}
}

type CheckoutRequest struct {
	CartID        string  `json:"cart_id"`
	CustomerName  string  `json:"customer_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	PaymentMethod string  `json:"payment_method"`
	PaymentRef    *string `json:"payment_ref,omitempty"`
}

type CheckoutResponse struct {
	OrderNumber string  `json:"order_number"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
	ItemCount   int     `json:"item_count"`
}

func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	if validationErrors := validateCheckoutRequest(req); len(validationErrors) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	cmd := interfaces.PlaceOrderCommand{
		CartID:        req.CartID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		PaymentMethod: req.PaymentMethod,
		PaymentRef:    req.PaymentRef,
	}

	order, err := h.service.PlaceOrder(r.Context(), cmd)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			respondError(w, "Your cart is empty", http.StatusBadRequest, nil)
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			respondError(w, err.Error(), http.StatusBadRequest, nil)
			return
		}
		h.logger.Error("checkout_failed", "Failed to place order", req.CartID, nil, err)
		respondError(w, "Failed to place order", http.StatusInternalServerError, nil)
		return
	}

	writeJSON(w, http.StatusCreated, CheckoutResponse{
		OrderNumber: order.Number,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		ItemCount:   len(order.Items),
	})
}

func validateCheckoutRequest(req CheckoutRequest) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(req.CartID) == "" {
		errs = append(errs, ValidationError{Field: "cart_id", Message: "cart id is required"})
	}

	name := strings.TrimSpace(req.CustomerName)
	if len(name) < 1 {
		errs = append(errs, ValidationError{Field: "customer_name", Message: "customer name is required"})
	} else if len(name) > 100 {
		errs = append(errs, ValidationError{Field: "customer_name", Message: "customer name must not exceed 100 characters"})
	}

	if !strings.Contains(req.Email, "@") {
		errs = append(errs, ValidationError{Field: "email", Message: "a valid email address is required"})
	}

	if len(strings.TrimSpace(req.Phone)) < 7 {
		errs = append(errs, ValidationError{Field: "phone", Message: "a valid phone number is required"})
	}

	if len(strings.TrimSpace(req.Address)) < 10 {
		errs = append(errs, ValidationError{Field: "address", Message: "delivery address must be at least 10 characters"})
	}

	switch req.PaymentMethod {
	case "cash":
		if req.PaymentRef != nil {
			errs = append(errs, ValidationError{Field: "payment_ref", Message: "payment reference must not be present for cash orders"})
		}
	case "card":
		if req.PaymentRef == nil || *req.PaymentRef == "" {
			errs = append(errs, ValidationError{Field: "payment_ref", Message: "payment reference is required for card orders"})
		}
	default:
		errs = append(errs, ValidationError{Field: "payment_method", Message: "payment method must be one of: card, cash"})
	}

	return errs
}

// TrackOrder returns an order with its lines by order number.
func (h *CheckoutHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")

	order, err := h.service.GetOrder(r.Context(), number)
	if err != nil {
		respondError(w, "Order not found", http.StatusNotFound, nil)
		return
	}

	items := make([]map[string]interface{}, len(order.Items))
	for i, item := range order.Items {
		items[i] = map[string]interface{}{
			"name":       item.Name,
			"quantity":   item.Quantity,
			"unit_price": item.UnitPrice,
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order_number":   order.Number,
		"customer_name":  order.CustomerName,
		"status":         order.Status,
		"payment_method": order.PaymentMethod,
		"total_amount":   order.TotalAmount,
		"items":          items,
		"created_at":     order.CreatedAt,
		"updated_at":     order.UpdatedAt,
	})
}

// OrderHistory returns the status log for an order.
func (h *CheckoutHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	number := r.PathValue("number")

	history, err := h.service.GetOrderHistory(r.Context(), number)
	if err != nil {
		respondError(w, "Order not found", http.StatusNotFound, nil)
		return
	}

	resp := make([]map[string]interface{}, len(history))
	for i, log := range history {
		resp[i] = map[string]interface{}{
			"status":     log.Status,
			"changed_by": log.ChangedBy,
			"timestamp":  log.ChangedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

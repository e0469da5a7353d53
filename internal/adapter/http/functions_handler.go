package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/adapter/mailer"
	"github.com/meshahan/pakcuisine/internal/app/checkout"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// FunctionsHandler hosts the two small endpoints the payment widget and the
// storefront call directly: payment intent creation and email dispatch.
type FunctionsHandler struct {
	payments interfaces.PaymentProvider
	mailer   interfaces.Mailer
	checkout *checkout.Service
	logger   logger.Logger
}

func NewFunctionsHandler(payments interfaces.PaymentProvider, m interfaces.Mailer, checkout *checkout.Service, logger logger.Logger) *FunctionsHandler {
	return &FunctionsHandler{payments: payments, mailer: m, checkout: checkout, logger: logger}
}

type createPaymentIntentRequest struct {
	Amount int64  `json:"amount"`
	Email  string `json:"email"`
}

// CreatePaymentIntent creates a payment intent for the given amount in the
// smallest currency unit and returns the client secret the hosted widget
// needs.
func (h *FunctionsHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req createPaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	var validationErrors []ValidationError
	if req.Amount < 1 {
		validationErrors = append(validationErrors, ValidationError{Field: "amount", Message: "amount must be a positive integer in the smallest currency unit"})
	}
	if !strings.Contains(req.Email, "@") {
		validationErrors = append(validationErrors, ValidationError{Field: "email", Message: "a valid email address is required"})
	}
	if len(validationErrors) > 0 {
		respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
		return
	}

	clientSecret, err := h.payments.CreateIntent(r.Context(), req.Amount, req.Email)
	if err != nil {
		h.logger.Error("payment_intent_failed", "Failed to create payment intent", "", nil, err)
		respondError(w, "Failed to create payment intent", http.StatusBadGateway, nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

type sendEmailRequest struct {
	Type     string          `json:"type"`
	Template string          `json:"template"`
	Payload  json.RawMessage `json:"payload"`
	// Items accompanies order templates; it is informational only because the
	// server re-renders from its own order record.
	Items []json.RawMessage `json:"items,omitempty"`
	// Config is accepted for compatibility and ignored: SMTP settings come
	// from the site_settings table.
	Config json.RawMessage `json:"config,omitempty"`
}

type orderEmailPayload struct {
	OrderNumber string `json:"order_number"`
}

type customEmailPayload struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	TextBody string `json:"text_body"`
}

// SendEmail renders the requested template and dispatches it through the
// ranked notification channels. The response reports which channel delivered.
func (h *FunctionsHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req sendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}

	template := req.Template
	if template == "" {
		template = req.Type
	}

	var msg interfaces.EmailMessage
	switch template {
	case "order_confirmation":
		var payload orderEmailPayload
		if len(req.Payload) > 0 {
			if err := json.Unmarshal(req.Payload, &payload); err != nil {
				respondError(w, "Invalid payload", http.StatusBadRequest, nil)
				return
			}
		}
		if payload.OrderNumber == "" {
			respondError(w, "Validation failed", http.StatusBadRequest, []ValidationError{
				{Field: "payload.order_number", Message: "order number is required"},
			})
			return
		}
		order, err := h.checkout.GetOrder(r.Context(), payload.OrderNumber)
		if err != nil {
			respondError(w, "Order not found", http.StatusNotFound, nil)
			return
		}
		msg = mailer.RenderOrderConfirmation(order)

	case "custom":
		var payload customEmailPayload
		if len(req.Payload) > 0 {
			if err := json.Unmarshal(req.Payload, &payload); err != nil {
				respondError(w, "Invalid payload", http.StatusBadRequest, nil)
				return
			}
		}
		var validationErrors []ValidationError
		if !strings.Contains(payload.To, "@") {
			validationErrors = append(validationErrors, ValidationError{Field: "payload.to", Message: "a valid recipient address is required"})
		}
		if strings.TrimSpace(payload.Subject) == "" {
			validationErrors = append(validationErrors, ValidationError{Field: "payload.subject", Message: "subject is required"})
		}
		if payload.HTMLBody == "" && payload.TextBody == "" {
			validationErrors = append(validationErrors, ValidationError{Field: "payload.html_body", Message: "a body is required"})
		}
		if len(validationErrors) > 0 {
			respondError(w, "Validation failed", http.StatusBadRequest, validationErrors)
			return
		}
		msg = interfaces.EmailMessage{
			To:       payload.To,
			Subject:  payload.Subject,
			HTMLBody: payload.HTMLBody,
			TextBody: payload.TextBody,
		}

	default:
		respondError(w, "Unknown template", http.StatusBadRequest, []ValidationError{
			{Field: "template", Message: "template must be one of: order_confirmation, custom"},
		})
		return
	}

	result, err := h.mailer.Send(r.Context(), msg)
	if err != nil {
		h.logger.Error("email_dispatch_failed", "All notification channels failed", "", nil, err)
		// The caller still gets a structured result.
		writeJSON(w, http.StatusOK, interfaces.EmailResult{Success: false, Recipient: msg.To})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

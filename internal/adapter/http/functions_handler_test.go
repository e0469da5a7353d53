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
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type stubPaymentProvider struct {
	secret string
	err    error
	amount int64
	email  string
}

func (s *stubPaymentProvider) CreateIntent(ctx context.Context, amount int64, email string) (string, error) {
	s.amount = amount
	s.email = email
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}

func newTestFunctionsHandler(provider interfaces.PaymentProvider, m interfaces.Mailer) *FunctionsHandler {
	lgr := logger.New("test")
	return NewFunctionsHandler(provider, m, nil, lgr)
}

func TestCreatePaymentIntent(t *testing.T) {
	provider := &stubPaymentProvider{secret: "pi_123_secret_456"}
	handler := newTestFunctionsHandler(provider, stubMailer{})

	body := `{"amount": 2500, "email": "ali@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/functions/create-payment-intent", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreatePaymentIntent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123_secret_456", resp["clientSecret"])
	assert.Equal(t, int64(2500), provider.amount)
	assert.Equal(t, "ali@example.com", provider.email)
}

func TestCreatePaymentIntentValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "zero amount", body: `{"amount": 0, "email": "ali@example.com"}`},
		{name: "negative amount", body: `{"amount": -100, "email": "ali@example.com"}`},
		{name: "bad email", body: `{"amount": 2500, "email": "nope"}`},
	}

	handler := newTestFunctionsHandler(&stubPaymentProvider{secret: "x"}, stubMailer{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/functions/create-payment-intent", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.CreatePaymentIntent(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreatePaymentIntentProviderFailure(t *testing.T) {
	provider := &stubPaymentProvider{err: errors.New("stripe unreachable")}
	handler := newTestFunctionsHandler(provider, stubMailer{})

	body := `{"amount": 2500, "email": "ali@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/functions/create-payment-intent", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreatePaymentIntent(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSendEmailCustomTemplate(t *testing.T) {
	handler := newTestFunctionsHandler(&stubPaymentProvider{}, stubMailer{})

	body := `{
		"type": "custom",
		"payload": {
			"to": "ali@example.com",
			"subject": "Hello",
			"html_body": "<p>hi</p>"
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/functions/send-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SendEmail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result interfaces.EmailResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "smtp", result.Method)
	assert.Equal(t, "ali@example.com", result.Recipient)
}

type failingMailer struct{}

func (failingMailer) Send(ctx context.Context, msg interfaces.EmailMessage) (interfaces.EmailResult, error) {
	return interfaces.EmailResult{}, errors.New("all notification channels failed")
}

// Dispatch failure is reported in the result body, not as an HTTP error.
func TestSendEmailAllChannelsFailed(t *testing.T) {
	handler := newTestFunctionsHandler(&stubPaymentProvider{}, failingMailer{})

	body := `{"template": "custom", "payload": {"to": "ali@example.com", "subject": "Hello", "text_body": "hi"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/functions/send-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SendEmail(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result interfaces.EmailResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "ali@example.com", result.Recipient)
}

func TestSendEmailUnknownTemplate(t *testing.T) {
	handler := newTestFunctionsHandler(&stubPaymentProvider{}, stubMailer{})

	body := `{"template": "marketing-blast"}`
	req := httptest.NewRequest(http.MethodPost, "/api/functions/send-email", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.SendEmail(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

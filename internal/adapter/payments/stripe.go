package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// StripeProvider creates payment intents for the hosted payment widget. The
// storefront renders the widget with the returned client secret; capture is
// entirely Stripe's concern.
type StripeProvider struct {
	api      *client.API
	currency string
}

func NewStripeProvider(secretKey, currency string) (interfaces.PaymentProvider, error) {
	if secretKey == "" {
		return nil, errors.New("stripe secret key is not configured")
	}
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api, currency: currency}, nil
}

// CreateIntent creates a payment intent for the given amount in the smallest
// currency unit and returns its client secret.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, email string) (string, error) {
	if amount <= 0 {
		return "", errors.New("amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(p.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if email != "" {
		params.ReceiptEmail = stripe.String(email)
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

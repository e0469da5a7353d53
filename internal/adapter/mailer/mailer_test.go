package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type fakeChannel struct {
	name string
	err  error
	sent int
}

func (f *fakeChannel) Name() string { return f.name }

func (f *fakeChannel) Send(ctx context.Context, msg interfaces.EmailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	return nil
}

func testMessage() interfaces.EmailMessage {
	return interfaces.EmailMessage{
		To:       "ali@example.com",
		Subject:  "Test",
		HTMLBody: "<p>hi</p>",
		TextBody: "hi",
	}
}

func TestSendFirstChannelWins(t *testing.T) {
	smtp := &fakeChannel{name: "smtp"}
	ses := &fakeChannel{name: "ses"}
	m := New(logger.New("test"), smtp, ses)

	result, err := m.Send(context.Background(), testMessage())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "smtp", result.Method)
	assert.Equal(t, "ali@example.com", result.Recipient)
	assert.Equal(t, 1, smtp.sent)
	assert.Equal(t, 0, ses.sent)
}

func TestSendFallsBackInRankOrder(t *testing.T) {
	smtp := &fakeChannel{name: "smtp", err: errors.New("smtp is not configured")}
	ses := &fakeChannel{name: "ses"}
	m := New(logger.New("test"), smtp, ses)

	result, err := m.Send(context.Background(), testMessage())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "ses", result.Method)
	assert.Equal(t, 1, ses.sent)
}

func TestSendAllChannelsFail(t *testing.T) {
	smtp := &fakeChannel{name: "smtp", err: errors.New("smtp down")}
	sesErr := errors.New("ses down")
	ses := &fakeChannel{name: "ses", err: sesErr}
	m := New(logger.New("test"), smtp, ses)

	result, err := m.Send(context.Background(), testMessage())

	require.Error(t, err)
	assert.ErrorIs(t, err, sesErr)
	assert.False(t, result.Success)
}

func TestSendRejectsEmptyRecipient(t *testing.T) {
	m := New(logger.New("test"), &fakeChannel{name: "smtp"})

	msg := testMessage()
	msg.To = ""

	_, err := m.Send(context.Background(), msg)
	assert.Error(t, err)
}

func TestRenderOrderConfirmation(t *testing.T) {
	order := &domain.Order{
		Number:       "ORD_20260828_001",
		CustomerName: "Ali Khan",
		Email:        "ali@example.com",
		TotalAmount:  25.00,
		Items: []domain.OrderItem{
			{Name: "Chicken Biryani", Quantity: 2, UnitPrice: 10.00},
			{Name: "Naan", Quantity: 1, UnitPrice: 5.00},
		},
	}

	msg := RenderOrderConfirmation(order)

	assert.Equal(t, "ali@example.com", msg.To)
	assert.Contains(t, msg.Subject, "ORD_20260828_001")
	assert.Contains(t, msg.HTMLBody, "Chicken Biryani")
	assert.Contains(t, msg.TextBody, "Total: Rs. 25.00")
}

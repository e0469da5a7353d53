package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// Channel is one way to deliver an email. Channels are tried in rank order;
// the first success wins.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg interfaces.EmailMessage) error
}

type Mailer struct {
	channels []Channel
	logger   logger.Logger
}

func New(logger logger.Logger, channels ...Channel) *Mailer {
	return &Mailer{channels: channels, logger: logger}
}

// Send tries each channel in order and returns the first success. When every
// channel fails the last error is returned.
func (m *Mailer) Send(ctx context.Context, msg interfaces.EmailMessage) (interfaces.EmailResult, error) {
	if msg.To == "" {
		return interfaces.EmailResult{}, errors.New("recipient address is empty")
	}
	if len(m.channels) == 0 {
		return interfaces.EmailResult{}, errors.New("no notification channels configured")
	}

	var lastErr error
	for _, ch := range m.channels {
		err := ch.Send(ctx, msg)
		if err == nil {
			m.logger.Debug("email_sent", fmt.Sprintf("Email delivered via %s", ch.Name()), "", map[string]interface{}{
				"method":    ch.Name(),
				"recipient": msg.To,
			})
			return interfaces.EmailResult{Success: true, Method: ch.Name(), Recipient: msg.To}, nil
		}

		m.logger.Error("email_channel_failed", fmt.Sprintf("Channel %s failed, trying next", ch.Name()), "", map[string]interface{}{
			"method":    ch.Name(),
			"recipient": msg.To,
		}, err)
		lastErr = err
	}

	return interfaces.EmailResult{}, fmt.Errorf("all notification channels failed: %w", lastErr)
}

package amqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// EventHandler turns admin insert events into dashboard alerts. In this
// binary the alert is a log line plus console output; the web dashboard
// consumes the same exchange.
type EventHandler struct {
	logger logger.Logger
}

func NewEventHandler(logger logger.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) HandleEvent(ctx context.Context, body []byte) error {
	var event interfaces.AdminEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Error("event_parse_failed", "Failed to parse admin event", "", nil, err)
		return err
	}

	h.logger.Info("admin_event_received", event.Summary, event.Ref, map[string]interface{}{
		"table":  event.Table,
		"ref":    event.Ref,
		"amount": event.Amount,
	})

	if event.Amount > 0 {
		fmt.Printf("[%s] %s (Rs. %.2f)\n", event.Table, event.Summary, event.Amount)
	} else {
		fmt.Printf("[%s] %s\n", event.Table, event.Summary)
	}

	return nil
}

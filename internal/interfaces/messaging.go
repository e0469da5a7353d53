package interfaces

import (
	"context"
	"time"
)

// AdminEvent is a row-insert notification delivered to admin dashboards.
// Orders and reservations publish one on every insert.
type AdminEvent struct {
	Table     string    `json:"table"`
	Ref       string    `json:"ref"`
	Summary   string    `json:"summary"`
	Amount    float64   `json:"amount,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Messaging interfaces (adapter/rabbitmq).

type EventPublisher interface {
	PublishAdminEvent(ctx context.Context, event AdminEvent) error
}

type EventConsumer interface {
	ConsumeAdminEvents(ctx context.Context, handler AdminEventHandler) error
}

type AdminEventHandler func(ctx context.Context, body []byte) error

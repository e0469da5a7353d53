package reservations

import (
	"context"
	"fmt"
	"time"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/adapter/mailer"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type Service struct {
	repo      interfaces.ReservationRepository
	publisher interfaces.EventPublisher
	mailer    interfaces.Mailer
	logger    logger.Logger
}

func NewService(repo interfaces.ReservationRepository, publisher interfaces.EventPublisher, m interfaces.Mailer, logger logger.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, mailer: m, logger: logger}
}

// Request validates and stores a booking request, alerts the admin dashboard
// and acknowledges by email, both best-effort.
func (s *Service) Request(ctx context.Context, name, email, phone string, date time.Time, timeSlot string, partySize int, notes string) (*domain.Reservation, error) {
	res, err := domain.NewReservation(name, email, phone, date, timeSlot, partySize, notes)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.repo.Create(ctx, res); err != nil {
		s.logger.Error("db_insert_failed", "Failed to create reservation", "", nil, err)
		return nil, err
	}

	event := interfaces.AdminEvent{
		Table:     "reservations",
		Ref:       fmt.Sprintf("RES-%d", res.ID),
		Summary:   fmt.Sprintf("New reservation: %s, party of %d on %s %s", res.Name, res.PartySize, res.Date.Format("2006-01-02"), res.TimeSlot),
		CreatedAt: res.CreatedAt,
	}
	if err := s.publisher.PublishAdminEvent(ctx, event); err != nil {
		s.logger.Error("event_publish_failed", "Failed to publish reservation event", event.Ref, nil, err)
	}

	if _, err := s.mailer.Send(ctx, mailer.RenderReservationReceived(res)); err != nil {
		s.logger.Error("email_dispatch_failed", "Failed to send reservation acknowledgement", event.Ref, nil, err)
	}

	return res, nil
}

func (s *Service) List(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	return s.repo.List(ctx, status)
}

// UpdateStatus applies an admin confirm/cancel, enforcing the transition
// table.
func (s *Service) UpdateStatus(ctx context.Context, id int, newStatus domain.ReservationStatus) (*domain.Reservation, error) {
	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := res.TransitionTo(newStatus); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", err)
	}
	return res, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

package domain

import (
	"errors"
	"strings"
	"time"
)

// Reservation is a table booking request.
type Reservation struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	Date      time.Time
	TimeSlot  string
	PartySize int
	Notes     string
	Status    ReservationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewReservation(name, email, phone string, date time.Time, timeSlot string, partySize int, notes string) (*Reservation, error) {
	now := time.Now()
	r := &Reservation{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		Date:      date,
		TimeSlot:  timeSlot,
		PartySize: partySize,
		Notes:     notes,
		Status:    ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Reservation) Validate() error {
	if len(r.Name) < 1 || len(r.Name) > 100 {
		return errors.New("name must be 1-100 characters")
	}
	if !strings.Contains(r.Email, "@") {
		return errors.New("a valid email address is required")
	}
	if len(r.Phone) < 7 {
		return errors.New("a valid phone number is required")
	}
	if r.Date.IsZero() {
		return errors.New("reservation date is required")
	}
	if r.TimeSlot == "" {
		return errors.New("reservation time is required")
	}
	if r.PartySize < 1 || r.PartySize > 30 {
		return errors.New("party size must be between 1 and 30")
	}
	return nil
}

// TransitionTo moves the reservation between pending, confirmed and
// cancelled. Cancelled and past-confirmed states are terminal.
func (r *Reservation) TransitionTo(newStatus ReservationStatus) error {
	allowed := map[ReservationStatus][]ReservationStatus{
		ReservationPending:   {ReservationConfirmed, ReservationCancelled},
		ReservationConfirmed: {ReservationCancelled},
		ReservationCancelled: {},
	}
	for _, s := range allowed[r.Status] {
		if s == newStatus {
			r.Status = newStatus
			r.UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrInvalidStatusTransition
}

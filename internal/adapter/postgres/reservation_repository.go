package postgres

import (
	"context"
	"fmt"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type reservationRepository struct {
	db DB
}

func NewReservationRepository(db DB) interfaces.ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, name, email, phone, date, time_slot, party_size, notes, status, created_at, updated_at`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reservations (name, email, phone, date, time_slot, party_size, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		res.Name, res.Email, res.Phone, res.Date, res.TimeSlot,
		res.PartySize, res.Notes, res.Status, res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id int) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id,
	).Scan(
		&res.ID, &res.Name, &res.Email, &res.Phone, &res.Date, &res.TimeSlot,
		&res.PartySize, &res.Notes, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("reservation not found: %w", err)
	}
	return &res, nil
}

func (r *reservationRepository) List(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY date, time_slot`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID, &res.Name, &res.Email, &res.Phone, &res.Date, &res.TimeSlot,
			&res.PartySize, &res.Notes, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, &res)
	}
	return reservations, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	_, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET name = $1, email = $2, phone = $3, date = $4, time_slot = $5,
		    party_size = $6, notes = $7, status = $8, updated_at = $9
		WHERE id = $10`,
		res.Name, res.Email, res.Phone, res.Date, res.TimeSlot,
		res.PartySize, res.Notes, res.Status, res.UpdatedAt, res.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	return nil
}

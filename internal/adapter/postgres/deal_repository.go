package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type dealRepository struct {
	db DB
}

func NewDealRepository(db DB) interfaces.DealRepository {
	return &dealRepository{db: db}
}

const dealColumns = `id, title, description, price, old_price, image_url, starts_at, ends_at, created_at`

func (r *dealRepository) ListAll(ctx context.Context) ([]*domain.Deal, error) {
	rows, err := r.db.Query(ctx, `SELECT `+dealColumns+` FROM deals ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()
	return scanDeals(rows)
}

func (r *dealRepository) ListActive(ctx context.Context, now time.Time) ([]*domain.Deal, error) {
	query := `
		SELECT ` + dealColumns + `
		FROM deals
		WHERE (starts_at IS NULL OR starts_at <= $1)
		  AND (ends_at IS NULL OR ends_at >= $1)
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active deals: %w", err)
	}
	defer rows.Close()
	return scanDeals(rows)
}

func scanDeals(rows Rows) ([]*domain.Deal, error) {
	var deals []*domain.Deal
	for rows.Next() {
		var d domain.Deal
		var startsAt, endsAt *time.Time
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.Price, &d.OldPrice,
			&d.ImageURL, &startsAt, &endsAt, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deal: %w", err)
		}
		if startsAt != nil {
			d.StartsAt = *startsAt
		}
		if endsAt != nil {
			d.EndsAt = *endsAt
		}
		deals = append(deals, &d)
	}
	return deals, nil
}

func (r *dealRepository) Create(ctx context.Context, d *domain.Deal) error {
	d.CreatedAt = time.Now()
	err := r.db.QueryRow(ctx, `
		INSERT INTO deals (title, description, price, old_price, image_url, starts_at, ends_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		d.Title, d.Description, d.Price, d.OldPrice, d.ImageURL,
		nullableTime(d.StartsAt), nullableTime(d.EndsAt), d.CreatedAt,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("failed to create deal: %w", err)
	}
	return nil
}

func (r *dealRepository) Update(ctx context.Context, d *domain.Deal) error {
	_, err := r.db.Exec(ctx, `
		UPDATE deals
		SET title = $1, description = $2, price = $3, old_price = $4,
		    image_url = $5, starts_at = $6, ends_at = $7
		WHERE id = $8`,
		d.Title, d.Description, d.Price, d.OldPrice, d.ImageURL,
		nullableTime(d.StartsAt), nullableTime(d.EndsAt), d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update deal: %w", err)
	}
	return nil
}

func (r *dealRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deal: %w", err)
	}
	return nil
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

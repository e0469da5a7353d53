package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// cartRepository persists cart snapshots as a JSONB column keyed by cart ID.
// It implements cart.Store.
type cartRepository struct {
	db DB
}

func NewCartRepository(db DB) *cartRepository {
	return &cartRepository{db: db}
}

// Load returns the stored snapshot, or nil when the cart has never been
// saved.
func (r *cartRepository) Load(ctx context.Context, cartID string) ([]byte, error) {
	var lines []byte
	err := r.db.QueryRow(ctx, `SELECT lines FROM carts WHERE cart_id = $1`, cartID).Scan(&lines)
	if errors.Is(err, pgx.ErrNoRows) {
		// No row means a fresh cart. Any other error must surface, or a
		// transient failure would read as an empty cart and the next save
		// would overwrite the stored lines.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return lines, nil
}

func (r *cartRepository) Save(ctx context.Context, cartID string, data []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO carts (cart_id, lines, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (cart_id) DO UPDATE SET
			lines = $2,
			updated_at = now()`,
		cartID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, cartID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM carts WHERE cart_id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type settingsRepository struct {
	db DB
}

func NewSettingsRepository(db DB) interfaces.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(ctx, `SELECT value FROM site_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		// Missing keys are not an error; callers supply defaults.
		return "", false, nil
	}
	return value, true, nil
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]*domain.SiteSetting, error) {
	rows, err := r.db.Query(ctx, `SELECT key, value, updated_at FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []*domain.SiteSetting
	for rows.Next() {
		var s domain.SiteSetting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, &s)
	}
	return settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = $2,
			updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

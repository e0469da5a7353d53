package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

type menuRepository struct {
	db DB
}

func NewMenuRepository(db DB) interfaces.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]*domain.MenuCategory, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, position FROM menu_categories ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.MenuCategory
	for rows.Next() {
		var c domain.MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, nil
}

func (r *menuRepository) CreateCategory(ctx context.Context, c *domain.MenuCategory) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO menu_categories (name, position) VALUES ($1, $2) RETURNING id`,
		c.Name, c.Position,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *menuRepository) UpdateCategory(ctx context.Context, c *domain.MenuCategory) error {
	_, err := r.db.Exec(ctx,
		`UPDATE menu_categories SET name = $1, position = $2 WHERE id = $3`,
		c.Name, c.Position, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *menuRepository) DeleteCategory(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM menu_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func (r *menuRepository) ListItems(ctx context.Context, categoryID int, availableOnly bool) ([]*domain.MenuItem, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url,
		       is_vegetarian, is_available, created_at, updated_at
		FROM menu_items
		WHERE ($1 = 0 OR category_id = $1)
		  AND (NOT $2 OR is_available)
		ORDER BY category_id, name
	`
	rows, err := r.db.Query(ctx, query, categoryID, availableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(
			&m.ID, &m.CategoryID, &m.Name, &m.Description, &m.Price, &m.ImageURL,
			&m.IsVegetarian, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &m)
	}
	return items, nil
}

func (r *menuRepository) FindItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	query := `
		SELECT id, category_id, name, description, price, image_url,
		       is_vegetarian, is_available, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`
	var m domain.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.CategoryID, &m.Name, &m.Description, &m.Price, &m.ImageURL,
		&m.IsVegetarian, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("menu item not found: %w", err)
	}
	return &m, nil
}

func (r *menuRepository) CreateItem(ctx context.Context, m *domain.MenuItem) error {
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	err := r.db.QueryRow(ctx, `
		INSERT INTO menu_items (category_id, name, description, price, image_url,
		                        is_vegetarian, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		m.CategoryID, m.Name, m.Description, m.Price, m.ImageURL,
		m.IsVegetarian, m.IsAvailable, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *menuRepository) UpdateItem(ctx context.Context, m *domain.MenuItem) error {
	m.UpdatedAt = time.Now()
	_, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET category_id = $1, name = $2, description = $3, price = $4, image_url = $5,
		    is_vegetarian = $6, is_available = $7, updated_at = $8
		WHERE id = $9`,
		m.CategoryID, m.Name, m.Description, m.Price, m.ImageURL,
		m.IsVegetarian, m.IsAvailable, m.UpdatedAt, m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return nil
}

func (r *menuRepository) DeleteItem(ctx context.Context, id int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}

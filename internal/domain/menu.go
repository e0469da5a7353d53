package domain

import (
	"errors"
	"strings"
	"time"
)

type MenuCategory struct {
	ID       int
	Name     string
	Position int
}

type MenuItem struct {
	ID           int
	CategoryID   int
	Name         string
	Description  string
	Price        float64
	ImageURL     string
	IsVegetarian bool
	IsAvailable  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Deal is a time-limited discounted bundle, distinct from a regular menu item.
type Deal struct {
	ID          int
	Title       string
	Description string
	Price       float64
	OldPrice    float64
	ImageURL    string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedAt   time.Time
}

func (c *MenuCategory) Validate() error {
	name := strings.TrimSpace(c.Name)
	if len(name) < 1 || len(name) > 100 {
		return errors.New("category name must be 1-100 characters")
	}
	return nil
}

func (m *MenuItem) Validate() error {
	if len(strings.TrimSpace(m.Name)) < 1 || len(m.Name) > 100 {
		return errors.New("item name must be 1-100 characters")
	}
	if m.CategoryID < 1 {
		return errors.New("item must belong to a category")
	}
	if m.Price <= 0 {
		return errors.New("item price must be positive")
	}
	return nil
}

func (d *Deal) Validate() error {
	if len(strings.TrimSpace(d.Title)) < 1 || len(d.Title) > 100 {
		return errors.New("deal title must be 1-100 characters")
	}
	if d.Price <= 0 {
		return errors.New("deal price must be positive")
	}
	if d.OldPrice != 0 && d.OldPrice <= d.Price {
		return errors.New("deal old price must exceed the deal price")
	}
	if !d.EndsAt.IsZero() && !d.StartsAt.IsZero() && d.EndsAt.Before(d.StartsAt) {
		return errors.New("deal must end after it starts")
	}
	return nil
}

// IsActive reports whether the deal is live at the given time. Zero bounds
// mean open-ended.
func (d *Deal) IsActive(now time.Time) bool {
	if !d.StartsAt.IsZero() && now.Before(d.StartsAt) {
		return false
	}
	if !d.EndsAt.IsZero() && now.After(d.EndsAt) {
		return false
	}
	return true
}

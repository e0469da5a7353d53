package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// Service backs both the public menu/deals pages and the admin panels over
// the same repositories.
type Service struct {
	menu   interfaces.MenuRepository
	deals  interfaces.DealRepository
	logger logger.Logger
}

func NewService(menu interfaces.MenuRepository, deals interfaces.DealRepository, logger logger.Logger) *Service {
	return &Service{menu: menu, deals: deals, logger: logger}
}

// Menu reads.

func (s *Service) Categories(ctx context.Context) ([]*domain.MenuCategory, error) {
	return s.menu.ListCategories(ctx)
}

func (s *Service) MenuItems(ctx context.Context, categoryID int, availableOnly bool) ([]*domain.MenuItem, error) {
	return s.menu.ListItems(ctx, categoryID, availableOnly)
}

func (s *Service) MenuItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.menu.FindItem(ctx, id)
}

// Deal reads.

func (s *Service) ActiveDeals(ctx context.Context) ([]*domain.Deal, error) {
	return s.deals.ListActive(ctx, time.Now())
}

func (s *Service) AllDeals(ctx context.Context) ([]*domain.Deal, error) {
	return s.deals.ListAll(ctx)
}

// Admin writes.

func (s *Service) SaveCategory(ctx context.Context, c *domain.MenuCategory) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if c.ID == 0 {
		return s.menu.CreateCategory(ctx, c)
	}
	return s.menu.UpdateCategory(ctx, c)
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	return s.menu.DeleteCategory(ctx, id)
}

func (s *Service) SaveMenuItem(ctx context.Context, m *domain.MenuItem) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if m.ID == 0 {
		return s.menu.CreateItem(ctx, m)
	}
	return s.menu.UpdateItem(ctx, m)
}

func (s *Service) DeleteMenuItem(ctx context.Context, id int) error {
	return s.menu.DeleteItem(ctx, id)
}

func (s *Service) SaveDeal(ctx context.Context, d *domain.Deal) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if d.ID == 0 {
		return s.deals.Create(ctx, d)
	}
	return s.deals.Update(ctx, d)
}

func (s *Service) DeleteDeal(ctx context.Context, id int) error {
	return s.deals.Delete(ctx, id)
}

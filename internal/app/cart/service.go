package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meshahan/pakcuisine/internal/adapter/logger"
	"github.com/meshahan/pakcuisine/internal/domain"
)

// Store persists cart snapshots keyed by cart ID. Load returns nil when no
// snapshot exists.
type Store interface {
	Load(ctx context.Context, cartID string) ([]byte, error)
	Save(ctx context.Context, cartID string, data []byte) error
	Delete(ctx context.Context, cartID string) error
}

// Service tracks the customer's in-progress selection. Every mutation is
// load-modify-save against the Store; a corrupted snapshot is treated as an
// empty cart rather than an error.
type Service struct {
	store  Store
	logger logger.Logger
}

func NewService(store Store, logger logger.Logger) *Service {
	return &Service{store: store, logger: logger}
}

func (s *Service) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	data, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(data) == 0 {
		return &domain.Cart{}, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Error("cart_snapshot_corrupt", "Discarding unreadable cart snapshot", cartID, nil, err)
		return &domain.Cart{}, nil
	}
	return &domain.Cart{Lines: lines}, nil
}

func (s *Service) AddItem(ctx context.Context, cartID string, line domain.CartLine) (*domain.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.AddItem(line)
	if err := s.save(ctx, cartID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) RemoveItem(ctx context.Context, cartID string, itemID int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.RemoveItem(itemID)
	if err := s.save(ctx, cartID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, cartID string, itemID, delta int) (*domain.Cart, error) {
	cart, err := s.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	cart.UpdateQuantity(itemID, delta)
	if err := s.save(ctx, cartID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) Clear(ctx context.Context, cartID string) error {
	if err := s.store.Delete(ctx, cartID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, cartID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.store.Save(ctx, cartID, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

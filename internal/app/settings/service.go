package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/meshahan/pakcuisine/internal/domain"
	"github.com/meshahan/pakcuisine/internal/interfaces"
)

// Service exposes operator-editable site settings with sane defaults.
type Service struct {
	repo interfaces.SettingsRepository
}

func NewService(repo interfaces.SettingsRepository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored value or the given default.
func (s *Service) Get(ctx context.Context, key, def string) (string, error) {
	value, ok, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return value, nil
}

func (s *Service) All(ctx context.Context) ([]*domain.SiteSetting, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Set(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("validation failed: setting key is required")
	}
	return s.repo.Upsert(ctx, key, value)
}

package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// LoadCatalog fetches the ingredient catalog once per new-order session. It
// is a no-op while a fetch is in flight or after one succeeded.
func (s *Session) LoadCatalog(ctx context.Context) error {
	s.mu.Lock()
	if s.catalog.InFlight() || s.catalog.Status == domain.RequestSuccess {
		s.mu.Unlock()
		return nil
	}
	s.catalog.Start()
	s.mu.Unlock()

	items, err := s.api.GetIngredients(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.catalog.Fail(err)
		s.logger.Error("load ingredients failed", zap.Error(err))
		return fmt.Errorf("load ingredients: %w", err)
	}
	s.catalog.Succeed(items)
	s.logger.Debug("ingredients loaded", zap.Int("count", len(items)))
	return nil
}

func (s *Session) Catalog() domain.Request[[]domain.Ingredient] {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.catalog
	out.Data = append([]domain.Ingredient(nil), s.catalog.Data...)
	return out
}

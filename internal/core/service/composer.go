package service

import (
	"fmt"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// Toggle adds name to the pizza being composed, or removes it if present.
func (s *Session) Toggle(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkIngredientLocked(name); err != nil {
		return err
	}
	s.selection.Toggle(name)
	if s.selection.Len() >= domain.MinIngredients {
		s.composeErr = ""
	}
	s.saveSelectionLocked()
	return nil
}

// Commit moves the current selection into the cart as a new pizza.
func (s *Session) Commit() (domain.Pizza, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := domain.NewPizza(s.selection.Items())
	if err != nil {
		s.composeErr = domain.MsgSelectMinIngredients
		return domain.Pizza{}, err
	}

	s.cart.Add(p)
	s.selection.Clear()
	s.composeErr = ""
	delete(s.errors, domain.FieldPizzas)
	s.notice = domain.MsgPizzaAdded
	s.noticeUntil = s.clock.Now().Add(s.noticeTTL)
	s.saveSelectionLocked()
	return p, nil
}

// checkIngredientLocked accepts any name until the catalog is loaded.
func (s *Session) checkIngredientLocked(name string) error {
	if s.catalog.Status != domain.RequestSuccess {
		return nil
	}
	if !domain.CatalogHas(s.catalog.Data, name) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownIngredient, name)
	}
	return nil
}

func (s *Session) noticeLocked() string {
	if s.notice == "" || !s.clock.Now().Before(s.noticeUntil) {
		s.notice = ""
		return ""
	}
	return s.notice
}

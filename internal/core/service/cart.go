package service

import (
	"github.com/shopspring/decimal"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// BeginEdit snapshots the pizza at index into the edit buffer and seeds the
// composer selection with its ingredients.
func (s *Session) BeginEdit(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.cart.At(index)
	if !ok {
		return domain.ErrPizzaNotFound
	}
	s.edit = domain.Editing{Pizza: p, Index: index}
	s.editErr = ""
	s.selection = domain.NewSelection(p.Ingredients...)
	return nil
}

// ToggleDuringEdit adds or removes name on the edit buffer. Removing below
// domain.MinIngredients is rejected.
func (s *Session) ToggleDuringEdit(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	editing, ok := s.edit.(domain.Editing)
	if !ok {
		return domain.ErrNotEditing
	}
	if err := s.checkIngredientLocked(name); err != nil {
		return err
	}

	if editing.Pizza.Has(name) && len(editing.Pizza.Ingredients) <= domain.MinIngredients {
		s.editErr = domain.MsgEditMinIngredients
		return &domain.ValidationError{
			Field:   "ingredients",
			Message: domain.MsgEditMinIngredients,
			Err:     domain.ErrMinIngredients,
		}
	}
	sel := domain.NewSelection(editing.Pizza.Ingredients...)
	sel.Toggle(name)

	s.edit = domain.Editing{Pizza: domain.Pizza{Ingredients: sel.Items()}, Index: editing.Index}
	s.editErr = ""
	return nil
}

// SaveEdit writes the edit buffer back into the cart. The buffer is kept if
// its index is gone.
func (s *Session) SaveEdit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	editing, ok := s.edit.(domain.Editing)
	if !ok {
		return domain.ErrNotEditing
	}
	if err := s.cart.Replace(editing.Index, editing.Pizza); err != nil {
		return err
	}
	s.edit = domain.NotEditing{}
	s.editErr = ""
	return nil
}

func (s *Session) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edit = domain.NotEditing{}
	s.editErr = ""
}

// DeletePizza removes the pizza at index. It reports false, and changes
// nothing, when index is out of range. An open edit keeps pointing at its own
// pizza: later indexes shift down, and deleting the edited pizza itself
// detaches the buffer so SaveEdit reports domain.ErrPizzaNotFound.
func (s *Session) DeletePizza(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Delete(index) {
		return false
	}
	if editing, ok := s.edit.(domain.Editing); ok {
		switch {
		case index == editing.Index:
			editing.Index = domain.DetachedIndex
		case index < editing.Index:
			editing.Index--
		}
		s.edit = editing
	}
	return true
}

func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Total()
}

func (s *Session) Pizzas() []domain.Pizza {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Pizzas()
}

func (s *Session) EditState() domain.EditState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.edit.(domain.Editing); ok {
		return domain.Editing{Pizza: e.Pizza.Clone(), Index: e.Index}
	}
	return s.edit
}

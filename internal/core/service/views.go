package service

import (
	"maps"

	"github.com/shopspring/decimal"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

type NewOrderView struct {
	Ingredients   []domain.Ingredient `json:"ingredients"`
	CatalogStatus string              `json:"catalogStatus"`
	CatalogError  string              `json:"catalogError,omitempty"`
	Selected      []string            `json:"selected"`
	PizzaCount    int                 `json:"pizzaCount"`
	Error         string              `json:"error,omitempty"`
	Notice        string              `json:"notice,omitempty"`
}

type PizzaLine struct {
	Index       int             `json:"index"`
	Ingredients []string        `json:"ingredients"`
	Label       string          `json:"label"`
	Price       decimal.Decimal `json:"price"`
}

type EditView struct {
	Index       int      `json:"index"`
	Ingredients []string `json:"ingredients"`
	Error       string   `json:"error,omitempty"`
}

type CartView struct {
	Pizzas  []PizzaLine     `json:"pizzas"`
	Total   decimal.Decimal `json:"total"`
	Editing *EditView       `json:"editing,omitempty"`
}

type CheckoutView struct {
	Customer     domain.Customer         `json:"customer"`
	Errors       domain.ValidationErrors `json:"errors"`
	Status       string                  `json:"status"`
	Notice       string                  `json:"notice,omitempty"`
	Confirmation *domain.Confirmation    `json:"confirmation,omitempty"`
}

type LookupView struct {
	Status string               `json:"status"`
	Order  *domain.Confirmation `json:"order,omitempty"`
	Error  string               `json:"error,omitempty"`
}

func (s *Session) NewOrderView() NewOrderView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := NewOrderView{
		Ingredients:   append([]domain.Ingredient{}, s.catalog.Data...),
		CatalogStatus: s.catalog.Status.String(),
		Selected:      s.selection.Items(),
		PizzaCount:    s.cart.Len(),
		Error:         s.composeErr,
		Notice:        s.noticeLocked(),
	}
	if s.catalog.Err != nil {
		v.CatalogError = "Failed to load ingredients"
	}
	return v
}

func (s *Session) CartView() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	pizzas := s.cart.Pizzas()
	v := CartView{
		Pizzas: make([]PizzaLine, len(pizzas)),
		Total:  s.cart.Total(),
	}
	for i, p := range pizzas {
		v.Pizzas[i] = PizzaLine{Index: i, Ingredients: p.Ingredients, Label: p.Label(), Price: p.Price()}
	}
	if e, ok := s.edit.(domain.Editing); ok {
		v.Editing = &EditView{Index: e.Index, Ingredients: e.Pizza.Clone().Ingredients, Error: s.editErr}
	}
	return v
}

func (s *Session) CheckoutView() CheckoutView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := CheckoutView{
		Customer: s.customer,
		Errors:   maps.Clone(s.errors),
		Status:   s.checkout.Status.String(),
		Notice:   s.checkoutNotice,
	}
	if s.checkout.Status == domain.RequestSuccess {
		conf := s.checkout.Data
		v.Confirmation = &conf
	}
	return v
}

func (s *Session) LookupView() LookupView {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := LookupView{
		Status: s.lookup.Status.String(),
		Error:  s.lookupErr,
	}
	if s.lookup.Status == domain.RequestSuccess {
		conf := s.lookup.Data
		v.Order = &conf
	}
	return v
}

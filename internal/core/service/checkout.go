package service

import (
	"context"
	"fmt"
	"maps"

	"go.uber.org/zap"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// EnterCheckout guards the checkout form and pre-fills it from client
// storage. With an empty cart it records the error and returns
// domain.ErrEmptyCart; callers send the user back to the composer.
func (s *Session) EnterCheckout(ctx context.Context) error {
	s.mu.Lock()
	if s.cart.Len() == 0 {
		s.rejectEmptyCartLocked()
		s.mu.Unlock()
		return domain.ErrEmptyCart
	}
	if s.checkout.Status == domain.RequestSuccess || s.checkout.Status == domain.RequestFailure {
		s.checkout.Reset()
		s.checkoutNotice = ""
	}
	s.mu.Unlock()

	saved := make(map[string]string, len(domain.CustomerFields))
	for _, field := range domain.CustomerFields {
		value, ok, err := s.storage.Get(ctx, field)
		if err != nil {
			s.logger.Warn("read saved customer field", zap.String("field", field), zap.Error(err))
			continue
		}
		if ok && value != "" {
			saved[field] = value
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for field, value := range saved {
		_ = s.customer.SetField(field, value)
	}
	return nil
}

func (s *Session) rejectEmptyCartLocked() {
	s.errors = domain.ValidationErrors{domain.FieldPizzas: domain.MsgCartEmpty}
	s.composeErr = domain.MsgCartEmpty
}

func (s *Session) Customer() domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.customer
}

func (s *Session) SetCustomer(c domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customer = c
}

func (s *Session) SetCustomerField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.customer.SetField(name, value)
}

// Validate checks every customer field and stores the result as the form
// errors.
func (s *Session) Validate() domain.ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.validateLocked())
}

func (s *Session) validateLocked() domain.ValidationErrors {
	s.errors = s.customer.Validate()
	return s.errors
}

// Submit validates the form, saves the customer to client storage and
// creates the order. On success the cart is cleared and the confirmation is
// kept for display. Failures leave cart and customer untouched and are not
// retried.
func (s *Session) Submit(ctx context.Context) (domain.Confirmation, error) {
	s.mu.Lock()
	if s.checkout.InFlight() {
		s.mu.Unlock()
		return domain.Confirmation{}, ErrRequestInFlight
	}
	if s.cart.Len() == 0 {
		s.rejectEmptyCartLocked()
		s.mu.Unlock()
		return domain.Confirmation{}, domain.ErrEmptyCart
	}
	if errs := s.validateLocked(); !errs.Valid() {
		s.mu.Unlock()
		return domain.Confirmation{}, maps.Clone(errs)
	}

	order := domain.NewOrder(s.customer, s.cart.Pizzas())
	s.saveCustomerLocked()
	s.checkout.Start()
	s.checkoutNotice = ""
	s.mu.Unlock()

	conf, err := s.api.CreateOrder(ctx, order)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.checkout.Fail(err)
		s.checkoutNotice = domain.MsgSubmitFailed
		s.logger.Error("submit order failed", zap.Error(err))
		return domain.Confirmation{}, fmt.Errorf("submit order: %w", err)
	}

	s.checkout.Succeed(*conf)
	s.cart.Clear()
	s.edit = domain.NotEditing{}
	s.editErr = ""
	s.catalog.Reset()
	s.logger.Info("order submitted",
		zap.String("order_id", conf.OrderID),
		zap.Int("pizzas", len(order.Pizzas)),
	)
	return *conf, nil
}

func (s *Session) saveCustomerLocked() {
	for _, field := range domain.CustomerFields {
		value, _ := s.customer.Field(field)
		s.enqueueLocked(domain.StorageEntry{Key: field, Value: value, TTL: domain.CustomerTTL})
	}
}

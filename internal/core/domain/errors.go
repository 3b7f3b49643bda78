package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrMinIngredients    = errors.New("min ingredients")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrPizzaNotFound     = errors.New("pizza not found")
	ErrNotEditing        = errors.New("no pizza is being edited")
	ErrUnknownIngredient = errors.New("unknown ingredient")
	ErrUnknownField      = errors.New("unknown customer field")
	ErrOrderNotFound     = errors.New("order not found")
)

// User-visible messages.
const (
	MsgSelectMinIngredients = "You need to select at least 2 ingredients"
	MsgEditMinIngredients   = "Must contain minimum 2 ingredients"
	MsgCartEmpty            = "You need to add at least one pizza to the cart"
	MsgPizzaAdded           = "Pizza added to your cart successfully!"
	MsgSubmitFailed         = "Failed to submit order"
	MsgOrderNotFound        = "Order not found"
)

// ValidationError is a single field-level failure. Err, when set, is the
// sentinel callers match with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors maps a field name to its message. A missing key means the
// field is valid.
type ValidationErrors map[string]string

func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+v[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NetworkError is a transport failure or a non-ok backend response.
// StatusCode is zero when no response was received.
type NetworkError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

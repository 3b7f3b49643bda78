package port

import (
	"context"

	"github.com/rl1809/pizzeria/internal/core/domain"
)

// OrderAPI is the pizza store backend.
type OrderAPI interface {
	// GetIngredients returns the ingredient catalog
	GetIngredients(ctx context.Context) ([]domain.Ingredient, error)

	// CreateOrder submits an order and returns it with the assigned ID
	CreateOrder(ctx context.Context, order domain.Order) (*domain.Confirmation, error)

	// GetOrder fetches a placed order, domain.ErrOrderNotFound if unknown
	GetOrder(ctx context.Context, orderID string) (*domain.Confirmation, error)
}

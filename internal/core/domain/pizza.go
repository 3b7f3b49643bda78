package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const MinIngredients = 2

var (
	BasePrice       = decimal.NewFromInt(10)
	IngredientPrice = decimal.NewFromInt(2)
)

type Pizza struct {
	Ingredients []string `json:"ingredients"`
}

// NewPizza copies ingredients and rejects sets below MinIngredients.
func NewPizza(ingredients []string) (Pizza, error) {
	sel := NewSelection(ingredients...)
	if sel.Len() < MinIngredients {
		return Pizza{}, &ValidationError{
			Field:   "ingredients",
			Message: MsgSelectMinIngredients,
			Err:     ErrMinIngredients,
		}
	}
	return Pizza{Ingredients: sel.Items()}, nil
}

func (p Pizza) Price() decimal.Decimal {
	return BasePrice.Add(IngredientPrice.Mul(decimal.NewFromInt(int64(len(p.Ingredients)))))
}

// Label is the wire form of a pizza in an order.
func (p Pizza) Label() string {
	return strings.Join(p.Ingredients, ", ")
}

func (p Pizza) Has(name string) bool {
	for _, ing := range p.Ingredients {
		if ing == name {
			return true
		}
	}
	return false
}

func (p Pizza) Clone() Pizza {
	out := make([]string, len(p.Ingredients))
	copy(out, p.Ingredients)
	return Pizza{Ingredients: out}
}

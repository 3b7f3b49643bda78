package domain

import "github.com/shopspring/decimal"

// Cart is the ordered list of pizzas of a session. The total is derived and
// rewritten after every mutation.
type Cart struct {
	pizzas []Pizza
	total  decimal.Decimal
}

// TotalPrice sums 10 + 2 per ingredient over pizzas.
func TotalPrice(pizzas []Pizza) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pizzas {
		total = total.Add(p.Price())
	}
	return total
}

func (c *Cart) Add(p Pizza) {
	c.pizzas = append(c.pizzas, p.Clone())
	c.recomputeTotal()
}

func (c *Cart) Replace(index int, p Pizza) error {
	if index < 0 || index >= len(c.pizzas) {
		return ErrPizzaNotFound
	}
	c.pizzas[index] = p.Clone()
	c.recomputeTotal()
	return nil
}

// Delete removes the pizza at index. Out of range is a no-op reported as false.
func (c *Cart) Delete(index int) bool {
	if index < 0 || index >= len(c.pizzas) {
		return false
	}
	c.pizzas = append(c.pizzas[:index:index], c.pizzas[index+1:]...)
	c.recomputeTotal()
	return true
}

func (c *Cart) At(index int) (Pizza, bool) {
	if index < 0 || index >= len(c.pizzas) {
		return Pizza{}, false
	}
	return c.pizzas[index].Clone(), true
}

func (c *Cart) Pizzas() []Pizza {
	out := make([]Pizza, len(c.pizzas))
	for i, p := range c.pizzas {
		out[i] = p.Clone()
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.pizzas)
}

func (c *Cart) Total() decimal.Decimal {
	return c.total
}

func (c *Cart) Clear() {
	c.pizzas = nil
	c.recomputeTotal()
}

func (c *Cart) recomputeTotal() {
	c.total = TotalPrice(c.pizzas)
}

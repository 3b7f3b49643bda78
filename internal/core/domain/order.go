package domain

// Order is the create-order payload.
type Order struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Street      string   `json:"street"`
	HouseNumber string   `json:"houseNumber"`
	City        string   `json:"city"`
	Phone       string   `json:"phone"`
	Pizzas      []string `json:"pizzas"`
}

// Confirmation is an order as the backend stores it.
type Confirmation struct {
	OrderID string `json:"orderId"`
	Order
}

// NewOrder flattens each pizza into one comma-separated string.
func NewOrder(c Customer, pizzas []Pizza) Order {
	labels := make([]string, len(pizzas))
	for i, p := range pizzas {
		labels[i] = p.Label()
	}
	return Order{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Street:      c.Street,
		HouseNumber: c.HouseNumber,
		City:        c.City,
		Phone:       c.Phone,
		Pizzas:      labels,
	}
}

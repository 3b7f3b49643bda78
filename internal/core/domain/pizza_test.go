package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPizza(t *testing.T) {
	p, err := NewPizza([]string{"tuna", "corn", "tuna"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tuna", "corn"}, p.Ingredients)

	_, err = NewPizza([]string{"tuna", "tuna"})
	assert.ErrorIs(t, err, ErrMinIngredients)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MsgSelectMinIngredients, verr.Message)
}

func TestPizza_PriceAndLabel(t *testing.T) {
	p := Pizza{Ingredients: []string{"Black olives", "corn", "tuna"}}

	assert.Equal(t, "16", p.Price().String())
	assert.Equal(t, "Black olives, corn, tuna", p.Label())
	assert.True(t, p.Has("corn"))
	assert.False(t, p.Has("Corn"))
}

func TestSelection_Toggle(t *testing.T) {
	var s Selection

	assert.True(t, s.Toggle("tuna"))
	assert.True(t, s.Toggle("corn"))
	assert.True(t, s.Toggle("onion"))
	assert.Equal(t, []string{"tuna", "corn", "onion"}, s.Items())

	assert.False(t, s.Toggle("corn"))
	assert.Equal(t, []string{"tuna", "onion"}, s.Items())
	assert.False(t, s.Contains("corn"))

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestNewSelection_Dedup(t *testing.T) {
	s := NewSelection("tuna", "corn", "tuna")
	assert.Equal(t, []string{"tuna", "corn"}, s.Items())
}

func TestNewOrder_FlattensPizzas(t *testing.T) {
	c := Customer{FirstName: "Hadas", LastName: "Levi", Street: "Herzl", HouseNumber: "12", City: "Haifa", Phone: "0501234567"}
	order := NewOrder(c, []Pizza{
		{Ingredients: []string{"tuna", "corn"}},
		{Ingredients: []string{"onion", "mushrooms", "Green olives"}},
	})

	assert.Equal(t, []string{"tuna, corn", "onion, mushrooms, Green olives"}, order.Pizzas)
	assert.Equal(t, "Haifa", order.City)
	assert.Equal(t, "0501234567", order.Phone)
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog([]string{"Black olives", "", "corn", "Pineapple", "corn"})

	require.Len(t, catalog, 3)
	assert.Equal(t, Ingredient{Name: "Black olives", ImageRef: "images/BlackOlives.png"}, catalog[0])
	assert.Equal(t, "images/Corn.png", catalog[1].ImageRef)
	assert.Empty(t, catalog[2].ImageRef)
	assert.True(t, CatalogHas(catalog, "Pineapple"))
	assert.False(t, CatalogHas(catalog, "pineapple"))
}

func TestRequest_Transitions(t *testing.T) {
	var r Request[string]
	assert.Equal(t, RequestIdle, r.Status)
	assert.Equal(t, "idle", r.Status.String())

	r.Start()
	assert.True(t, r.InFlight())

	r.Succeed("order-1")
	assert.Equal(t, "success", r.Status.String())
	assert.Equal(t, "order-1", r.Data)

	r.Fail(ErrOrderNotFound)
	assert.Equal(t, RequestFailure, r.Status)
	assert.Empty(t, r.Data)
	assert.ErrorIs(t, r.Err, ErrOrderNotFound)

	r.Reset()
	assert.Equal(t, RequestIdle, r.Status)
	assert.NoError(t, r.Err)
}

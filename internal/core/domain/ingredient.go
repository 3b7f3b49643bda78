package domain

import "strings"

type Ingredient struct {
	Name     string `json:"name"`
	ImageRef string `json:"imageRef,omitempty"`
}

var ingredientImages = map[string]string{
	"black olives": "images/BlackOlives.png",
	"green olives": "images/GreenOlives.png",
	"mushrooms":    "images/Mushrooms.png",
	"onion":        "images/Onion.png",
	"corn":         "images/Corn.png",
	"tuna":         "images/Tuna.png",
}

// ImageFor matches name case-insensitively against the bundled images.
func ImageFor(name string) string {
	return ingredientImages[strings.ToLower(name)]
}

func NewIngredient(name string) Ingredient {
	return Ingredient{Name: name, ImageRef: ImageFor(name)}
}

// NewCatalog builds the session catalog from backend names, dropping empty
// names and keeping the first of any duplicates.
func NewCatalog(names []string) []Ingredient {
	seen := make(map[string]struct{}, len(names))
	catalog := make([]Ingredient, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		catalog = append(catalog, NewIngredient(name))
	}
	return catalog
}

func CatalogHas(catalog []Ingredient, name string) bool {
	for _, ing := range catalog {
		if ing.Name == name {
			return true
		}
	}
	return false
}

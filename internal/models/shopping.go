package models

// ShoppingItem is one aggregated row of a user's shopping list. Ingredients
// are grouped by name and unit across every recipe in the cart.
type ShoppingItem struct {
	Name  string `json:"name"`
	Unit  string `json:"measurement_unit"`
	Total int    `json:"total_amount"`
}

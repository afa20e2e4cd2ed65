package models

// CartLine is a single product pending checkout. A cart holds at most one
// line per product; adding the same product again merges quantities.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"` // unit price
	Unit      string  `json:"unit"`
	Farm      string  `json:"farm"` // farm display name
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// CartTotals is the cart-level summary. Shipping is charged once per cart,
// never folded into per-farm order totals.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

package models

// CartLine is a single cart row. Quantity is always >= 1: decreasing a
// quantity-1 line removes it instead of producing a zero-quantity row.
type CartLine struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CartAdd is the add-to-cart request body.
type CartAdd struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartUpdate is the change-quantity request body.
type CartUpdate struct {
	Quantity int `json:"quantity"`
}

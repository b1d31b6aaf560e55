package models

import "time"

// OrderItem is a line captured on a placed order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a server-owned order record. Status is an opaque string: the
// server owns the status set and its transitions; the client never
// validates them locally.
type Order struct {
	ID                string      `json:"id"`
	Status            string      `json:"status"`
	ShippingAddressID string      `json:"shippingAddressId"`
	PaymentMethod     string      `json:"paymentMethod"`
	Date              time.Time   `json:"date"`
	Items             []OrderItem `json:"items"`

	// Shipping contact snapshot, denormalized by the server at placement.
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Total sums the order's line totals.
func (o Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// OrderPlacement is the place-order request body.
type OrderPlacement struct {
	ShippingAddressID string    `json:"shippingAddressId"`
	PaymentMethod     string    `json:"paymentMethod"`
	Date              time.Time `json:"date"`
}

// OrderStatusUpdate is the console's set-status request body.
type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// SuggestedStatuses is what the console offers as completion hints. It is
// advisory only; whatever the operator types is submitted verbatim.
var SuggestedStatuses = []string{"pending", "placed", "shipped", "delivered"}

package models

// RevenuePoint is one month of sales on the dashboard. Month is 1-based.
type RevenuePoint struct {
	Month    int     `json:"month"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// OrderStat counts orders per status.
type OrderStat struct {
	Status   string `json:"status"`
	Quantity int    `json:"quantity"`
}

// UserStat counts registrations per month. Month is 1-based.
type UserStat struct {
	Month    int `json:"month"`
	Quantity int `json:"quantity"`
}

// Statistic is the dashboard aggregate returned by the API.
type Statistic struct {
	Revenue []RevenuePoint `json:"revenue"`
	Orders  []OrderStat    `json:"orders"`
	Users   []UserStat     `json:"users"`
}

package models

// Address is a shipping address book entry. The client passes IsDefault
// through without enforcing any default-selection invariant.
type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// AddressInput is the create/update request body for an address.
type AddressInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	State     string `json:"state,omitempty"`
	Zip       string `json:"zip,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

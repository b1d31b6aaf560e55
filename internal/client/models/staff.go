package models

// StaffMember is a back-office account managed from the console.
type StaffMember struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

// StaffInput is the create/update request body for a staff member.
// Email and Password are only meaningful on create.
type StaffInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// Package models defines the typed entities and request payloads exchanged
// with the bookstore API. Every entity is owned by the server; the structs
// here are read caches and explicit mutation records, never ad hoc maps.
package models

// Roles the bookstore API assigns. The gate itself is role-set-agnostic;
// these constants exist so views spell roles consistently.
const (
	RoleCustomer = "CUSTOMER"
	RoleStaff    = "STAFF"
	RoleAdmin    = "ADMIN"
)

// User is the current identity as reported by the API.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Credentials is the sign-in / sign-up request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChange is the update-password request body. A successful change
// signs the user out as its terminal step.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

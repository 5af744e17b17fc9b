package entity

import "time"

// Employee roles.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee represents a user account managed in the admin panel.
// Employees provisioned via CSV upload get the configured default
// password, bcrypt-hashed server-side.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext after persisting
	Role         string // admin, employee
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package entity

import "time"

// Company represents an account in the CRM.
// Tags carry free-form labels; type, health and ARR display values are
// derived from them by the grid package, never stored.
type Company struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Website     string
	Industry    string
	Address     Address
	Tags        []string
	Description string
	CreatedBy   *Ref
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Address postal address; any subset of fields may be empty.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Ref lightweight reference to another record (owner, linked company).
type Ref struct {
	ID   string
	Name string
}

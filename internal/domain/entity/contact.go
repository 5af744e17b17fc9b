package entity

import "time"

// ContactEmail one email of a contact. At most one entry per contact
// should be flagged primary; readers fall back to the first entry when
// none is flagged.
type ContactEmail struct {
	Email     string `json:"email"`
	Type      string `json:"type"` // work, personal, other
	IsPrimary bool   `json:"isPrimary"`
}

// ContactPhone one phone number of a contact. Same primary rule as emails.
type ContactPhone struct {
	Phone     string `json:"phone"`
	Type      string `json:"type"` // work, mobile, home, other
	IsPrimary bool   `json:"isPrimary"`
}

// Contact represents a person in the CRM, optionally linked to a Company.
type Contact struct {
	ID         string
	FirstName  string
	LastName   string
	CompanyRef *Ref
	Emails     []ContactEmail
	Phones     []ContactPhone
	JobTitle   string
	Department string
	Address    Address
	Notes      string
	Tags       []string
	CreatedBy  *Ref
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

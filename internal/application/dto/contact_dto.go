package dto

import "time"

// ContactEmailDTO one email entry of a contact.
type ContactEmailDTO struct {
	Email     string `json:"email"`
	Type      string `json:"type,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// ContactPhoneDTO one phone entry of a contact.
type ContactPhoneDTO struct {
	Phone     string `json:"phone"`
	Type      string `json:"type,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
}

// CreateContactRequest body for POST /api/contacts.
type CreateContactRequest struct {
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	CompanyID  string            `json:"companyId"`
	Emails     []ContactEmailDTO `json:"emails"`
	Phones     []ContactPhoneDTO `json:"phones"`
	JobTitle   string            `json:"jobTitle"`
	Department string            `json:"department"`
	Address    AddressDTO        `json:"address"`
	Notes      string            `json:"notes"`
	Tags       []string          `json:"tags"`
}

// UpdateContactRequest body for PUT /api/contacts/:id.
type UpdateContactRequest = CreateContactRequest

// ContactResponse wire shape of a contact.
type ContactResponse struct {
	ID         string            `json:"id"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	CompanyRef *RefDTO           `json:"companyRef,omitempty"`
	Emails     []ContactEmailDTO `json:"emails"`
	Phones     []ContactPhoneDTO `json:"phones"`
	JobTitle   string            `json:"jobTitle,omitempty"`
	Department string            `json:"department,omitempty"`
	Address    AddressDTO        `json:"address"`
	Notes      string            `json:"notes,omitempty"`
	Tags       []string          `json:"tags"`
	CreatedBy  *RefDTO           `json:"createdBy,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// ContactListResponse envelope of GET /api/contacts.
type ContactListResponse struct {
	Contacts   []*ContactResponse `json:"contacts"`
	Pagination Pagination         `json:"pagination"`
}

// ContactGridResponse envelope of GET /api/contacts?view=grid.
type ContactGridResponse struct {
	Rows       []ContactGridRow `json:"rows"`
	Pagination Pagination       `json:"pagination"`
}

// ContactGridRow flattened display row of a contact.
type ContactGridRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Company      string `json:"company"`
	Status       string `json:"status"`
	LastActivity string `json:"lastActivity"`
	Owner        string `json:"owner"`
}

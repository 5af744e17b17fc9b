package dto

import "time"

// AddressDTO postal address; all fields optional.
type AddressDTO struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// RefDTO reference to another record.
type RefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateCompanyRequest body for POST /api/companies.
type CreateCompanyRequest struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Website     string     `json:"website"`
	Industry    string     `json:"industry"`
	Address     AddressDTO `json:"address"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description"`
}

// UpdateCompanyRequest body for PUT /api/companies/:id. Same shape as create.
type UpdateCompanyRequest = CreateCompanyRequest

// CompanyResponse wire shape of a company.
type CompanyResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	Website     string     `json:"website,omitempty"`
	Industry    string     `json:"industry,omitempty"`
	Address     AddressDTO `json:"address"`
	Tags        []string   `json:"tags"`
	Description string     `json:"description,omitempty"`
	CreatedBy   *RefDTO    `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CompanyListResponse envelope of GET /api/companies.
type CompanyListResponse struct {
	Companies  []*CompanyResponse `json:"companies"`
	Pagination Pagination         `json:"pagination"`
}

// CompanyGridResponse envelope of GET /api/companies?view=grid.
type CompanyGridResponse struct {
	Rows       []CompanyGridRow `json:"rows"`
	Pagination Pagination       `json:"pagination"`
}

// CompanyGridRow flattened display row of a company.
type CompanyGridRow struct {
	ID      string `json:"id"`
	Account string `json:"account"`
	Type    string `json:"type"`
	Owner   string `json:"owner"`
	ARR     string `json:"arr"`
	Health  string `json:"health"`
}

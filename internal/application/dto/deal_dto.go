package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealRequest body for POST /api/deals.
type CreateDealRequest struct {
	Title        string          `json:"title"`
	LeadID       string          `json:"leadId"`
	ContactEmail string          `json:"contactEmail"`
	CompanyName  string          `json:"companyName"`
	Value        decimal.Decimal `json:"value"`
	Currency     string          `json:"currency"`
	Stage        string          `json:"stage"`
	Probability  int             `json:"probability"`
	CloseDate    time.Time       `json:"closeDate"`
	Description  string          `json:"description"`
	Notes        string          `json:"notes"`
}

// DealResponse wire shape of a deal.
type DealResponse struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	LeadID       string          `json:"leadId,omitempty"`
	ContactEmail string          `json:"contactEmail,omitempty"`
	CompanyName  string          `json:"companyName,omitempty"`
	Value        decimal.Decimal `json:"value"`
	Currency     string          `json:"currency"`
	Stage        string          `json:"stage"`
	Probability  int             `json:"probability"`
	CloseDate    time.Time       `json:"closeDate"`
	Description  string          `json:"description,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// DealListResponse envelope of GET /api/deals.
type DealListResponse struct {
	Deals      []*DealResponse `json:"deals"`
	Pagination Pagination      `json:"pagination"`
}

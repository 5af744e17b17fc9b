package dto

import "github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/pagination"

// PageRequest pagination parameters for listings (1-based page).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage applies defaults when Page/Limit are unset.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 || p.Limit > 100 {
		p.Limit = 20
	}
}

// Pagination page metadata in list responses.
// Invariant: Pages = ceil(Total/Limit) and 1 <= Page <= max(Pages, 1).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Paginate builds page metadata, clamping page into range.
func Paginate(page, limit, total int) Pagination {
	pages := pagination.Pages(total, limit)
	return Pagination{
		Page:  pagination.Clamp(page, pages),
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportResult outcome of a CSV import: rows created, rows skipped as
// duplicates, and per-row error messages. A nonzero Created count never
// suppresses the error list.
type ImportResult struct {
	Created    int      `json:"created"`
	Duplicates int      `json:"duplicates,omitempty"`
	Errors     []string `json:"errors,omitempty"`
}

// SendEmailRequest body of the send-email routes.
type SendEmailRequest struct {
	FromEmail string `json:"fromEmail"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// SendEmailResponse outcome of a send-email call.
type SendEmailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/pagination"
)

// Pager renders the page controls of a listing: which page numbers to
// show and the "Showing X to Y of Z" label.
type Pager struct {
	p dto.Pagination
}

func NewPager(p dto.Pagination) Pager { return Pager{p: p} }

// Window returns the page numbers to render, at most five wide.
func (pg Pager) Window() []int {
	return pagination.Window(pg.p.Page, pg.p.Pages, 5)
}

// Label returns the result-range caption for the current page.
func (pg Pager) Label() string {
	return pagination.Label(pg.p.Page, pg.p.Limit, pg.p.Total)
}

// HasPrev reports whether a previous page exists.
func (pg Pager) HasPrev() bool { return pg.p.Page > 1 }

// HasNext reports whether a next page exists.
func (pg Pager) HasNext() bool { return pg.p.Page < pg.p.Pages }

// GridPage one page of company display rows plus its pager.
type GridPage struct {
	Rows  []dto.CompanyGridRow
	Pager Pager
}

// CompanyGrid fetches one page of the company grid view.
func (c *Client) CompanyGrid(ctx context.Context, page, limit int) (*GridPage, error) {
	url := fmt.Sprintf("%s/api/companies?view=grid&page=%d&limit=%d", c.baseURL, page, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.decodeError(resp)
	}
	var out dto.CompanyGridResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding grid page: %w", err)
	}
	return &GridPage{Rows: out.Rows, Pager: NewPager(out.Pagination)}, nil
}

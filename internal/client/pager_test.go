package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/dto"
)

func TestPagerWindowAndLabel(t *testing.T) {
	pg := NewPager(dto.Pagination{Page: 6, Limit: 10, Total: 120, Pages: 12})
	assert.Equal(t, []int{4, 5, 6, 7, 8}, pg.Window())
	assert.Equal(t, "Showing 51 to 60 of 120", pg.Label())
	assert.True(t, pg.HasPrev())
	assert.True(t, pg.HasNext())

	empty := NewPager(dto.Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0})
	assert.Equal(t, "Showing 0 results", empty.Label())
	assert.False(t, empty.HasPrev())
	assert.False(t, empty.HasNext())
}

func TestCompanyGrid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies", r.URL.Path)
		assert.Equal(t, "grid", r.URL.Query().Get("view"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rows":[{"id":"1","account":"Acme","type":"Customer","owner":"Jane","arr":"$100K","health":"Excellent"}],
			"pagination":{"page":2,"limit":1,"total":3,"pages":3}
		}`))
	}))
	defer server.Close()

	api := New(server.URL, "token", zerolog.Nop())
	page, err := api.CompanyGrid(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Acme", page.Rows[0].Account)
	assert.Equal(t, []int{1, 2, 3}, page.Pager.Window())
	assert.Equal(t, "Showing 2 to 2 of 3", page.Pager.Label())
}

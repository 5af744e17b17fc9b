package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/application/grid"
	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/internal/domain/entity"
)

func company(tags ...string) *entity.Company {
	return &entity.Company{ID: "c1", Name: "Acme", Tags: tags}
}

func TestCompanyRow_TypeFromTags(t *testing.T) {
	cases := []struct {
		name string
		tags []string
		want string
	}{
		{"explicit prospect", []string{"Prospect"}, "Prospect"},
		{"first matching wins", []string{"Partner", "Vendor"}, "Partner"},
		{"non-type tags ignored", []string{"west-coast", "Lead"}, "Lead"},
		{"no tags defaults to customer", nil, "Customer"},
		{"unrecognized only defaults to customer", []string{"whatever"}, "Customer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, grid.CompanyRow(company(tc.tags...)).Type)
		})
	}
}

func TestCompanyRow_ARR(t *testing.T) {
	// Tagless records display $0 regardless of derived type.
	assert.Equal(t, "$0", grid.CompanyRow(company()).ARR)

	// An ARR tag passes through with the prefix stripped.
	assert.Equal(t, "$250K", grid.CompanyRow(company("ARR:$250K")).ARR)

	// Type-keyed defaults apply when tags exist but none carries ARR.
	assert.Equal(t, "$100K", grid.CompanyRow(company("Customer")).ARR)
	assert.Equal(t, "$0", grid.CompanyRow(company("Prospect")).ARR)
	assert.Equal(t, "$50K", grid.CompanyRow(company("Vendor")).ARR)
}

func TestCompanyRow_Health(t *testing.T) {
	assert.Equal(t, "At Risk", grid.CompanyRow(company("Customer", "At Risk")).Health)
	assert.Equal(t, "Excellent", grid.CompanyRow(company("Customer")).Health)
	assert.Equal(t, "Monitor", grid.CompanyRow(company("Prospect")).Health)
	assert.Equal(t, "Good", grid.CompanyRow(company("Partner")).Health)
}

func TestCompanyRow_AccountAndOwner(t *testing.T) {
	c := &entity.Company{ID: "c2"}
	row := grid.CompanyRow(c)
	assert.Equal(t, "Unnamed Company", row.Account)
	assert.Equal(t, "Unknown", row.Owner)

	c.CreatedBy = &entity.Ref{ID: "u1", Name: "Dana"}
	assert.Equal(t, "Dana", grid.CompanyRow(c).Owner)
}

func TestContactRow(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ct := &entity.Contact{
		ID:        "p1",
		FirstName: "Jane",
		LastName:  "Doe",
		Tags:      []string{"VIP", "other"},
		UpdatedAt: now.Add(-3 * time.Hour),
	}
	row := grid.ContactRow(ct, now)
	assert.Equal(t, "Jane Doe", row.Name)
	assert.Equal(t, "No Company", row.Company)
	assert.Equal(t, "VIP", row.Status)
	assert.Equal(t, "3h ago", row.LastActivity)
	assert.Equal(t, "Unknown", row.Owner)
}

func TestContactRow_Defaults(t *testing.T) {
	now := time.Now()
	ct := &entity.Contact{FirstName: "Solo", UpdatedAt: now}
	row := grid.ContactRow(ct, now)
	assert.Equal(t, "Solo", row.Name, "single name must be trimmed, no trailing space")
	assert.Equal(t, "Active", row.Status)

	ct.CompanyRef = &entity.Ref{ID: "c1", Name: "Acme"}
	assert.Equal(t, "Acme", grid.ContactRow(ct, now).Company)
}

func TestPrimaryEmail(t *testing.T) {
	// The flagged entry wins even when it is not first.
	emails := []entity.ContactEmail{
		{Email: "a@x.com"},
		{Email: "b@x.com", IsPrimary: true},
	}
	got, ok := grid.PrimaryEmail(emails)
	require.True(t, ok)
	assert.Equal(t, "b@x.com", got.Email)

	// None flagged: first entry.
	got, ok = grid.PrimaryEmail([]entity.ContactEmail{{Email: "first@x.com"}, {Email: "second@x.com"}})
	require.True(t, ok)
	assert.Equal(t, "first@x.com", got.Email)

	// Empty list: ok=false, never panics.
	_, ok = grid.PrimaryEmail(nil)
	assert.False(t, ok)
}

func TestPrimaryPhone(t *testing.T) {
	phones := []entity.ContactPhone{
		{Phone: "111"},
		{Phone: "222", IsPrimary: true},
	}
	got, ok := grid.PrimaryPhone(phones)
	require.True(t, ok)
	assert.Equal(t, "222", got.Phone)

	_, ok = grid.PrimaryPhone([]entity.ContactPhone{})
	assert.False(t, ok)
}

func TestFormatAddress(t *testing.T) {
	full := entity.Address{Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62704", Country: "USA"}
	assert.Equal(t, "1 Main St, Springfield, IL, 62704, USA", grid.FormatAddress(full))

	partial := entity.Address{City: "Springfield", Country: "USA"}
	assert.Equal(t, "Springfield, USA", grid.FormatAddress(partial))

	assert.Equal(t, "No address", grid.FormatAddress(entity.Address{}))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", grid.RelativeTime(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", grid.RelativeTime(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", grid.RelativeTime(now.Add(-3*time.Hour), now))
	assert.Equal(t, "4d ago", grid.RelativeTime(now.Add(-4*24*time.Hour), now))
	assert.Equal(t, "Aug 1, 2026", grid.RelativeTime(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), now))
}

package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CHIRAG-singh123/ERP-CRM-Zentro-sub003/pkg/pagination"
)

func TestWindow_SlidesWithCurrentPage(t *testing.T) {
	cases := []struct {
		name       string
		current    int
		totalPages int
		want       []int
	}{
		{"start of range", 1, 12, []int{1, 2, 3, 4, 5}},
		{"still pinned at start", 3, 12, []int{1, 2, 3, 4, 5}},
		{"middle slides", 6, 12, []int{4, 5, 6, 7, 8}},
		{"near end pins to tail", 11, 12, []int{8, 9, 10, 11, 12}},
		{"last page", 12, 12, []int{8, 9, 10, 11, 12}},
		{"fewer pages than span", 2, 3, []int{1, 2, 3}},
		{"single page", 1, 1, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pagination.Window(tc.current, tc.totalPages, 5)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWindow_LengthIsMinOfSpanAndTotal(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for current := 1; current <= total; current++ {
			got := pagination.Window(current, total, 5)
			want := total
			if want > 5 {
				want = 5
			}
			assert.Len(t, got, want, "current=%d total=%d", current, total)
		}
	}
}

func TestWindow_NoPages(t *testing.T) {
	assert.Nil(t, pagination.Window(1, 0, 5))
}

func TestRange_MiddlePage(t *testing.T) {
	start, end := pagination.Range(2, 10, 25)
	assert.Equal(t, 11, start)
	assert.Equal(t, 20, end)
}

func TestRange_LastPartialPage(t *testing.T) {
	start, end := pagination.Range(3, 10, 25)
	assert.Equal(t, 21, start)
	assert.Equal(t, 25, end)
}

func TestRange_EmptyResultSet(t *testing.T) {
	start, end := pagination.Range(1, 10, 0)
	assert.Equal(t, 0, start, "an empty set must not start at 1")
	assert.Equal(t, 0, end)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Showing 11 to 20 of 25", pagination.Label(2, 10, 25))
	assert.Equal(t, "Showing 0 results", pagination.Label(1, 10, 0))
}

func TestPages(t *testing.T) {
	assert.Equal(t, 3, pagination.Pages(25, 10))
	assert.Equal(t, 1, pagination.Pages(1, 10))
	assert.Equal(t, 0, pagination.Pages(0, 10))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, pagination.Clamp(0, 5))
	assert.Equal(t, 5, pagination.Clamp(9, 5))
	assert.Equal(t, 3, pagination.Clamp(3, 5))
	assert.Equal(t, 1, pagination.Clamp(4, 0), "zero pages still clamps to 1")
}

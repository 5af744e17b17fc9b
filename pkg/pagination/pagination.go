// Package pagination implements the page-window and range math used by
// every paged listing: the sliding window of page numbers a toolbar
// renders and the "Showing X to Y of Z" label.
package pagination

import "fmt"

// DefaultSpan is the width of the rendered page window.
const DefaultSpan = 5

// Window returns the ordered page numbers to render for the given current
// page. The window is at most span wide and slides with the current page,
// pinned to the edges near the start and end of the page range.
func Window(current, totalPages, span int) []int {
	if span <= 0 {
		span = DefaultSpan
	}
	if totalPages <= 0 {
		return nil
	}

	var start, end int
	switch {
	case totalPages <= span:
		start, end = 1, totalPages
	case current <= 3:
		start, end = 1, span
	case current >= totalPages-2:
		start, end = totalPages-span+1, totalPages
	default:
		start, end = current-2, current+2
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Range returns the 1-based inclusive index range of the records shown on
// the given page. For an empty result set both bounds are 0; the naive
// formula would yield the invalid range 1..0.
func Range(page, limit, total int) (start, end int) {
	if total <= 0 || limit <= 0 {
		return 0, 0
	}
	start = (page-1)*limit + 1
	end = page * limit
	if end > total {
		end = total
	}
	return start, end
}

// Label renders the "Showing X to Y of Z" caption for a page. An empty
// result set renders a plain zero-results caption instead of "1 to 0 of 0".
func Label(page, limit, total int) string {
	start, end := Range(page, limit, total)
	if start == 0 {
		return "Showing 0 results"
	}
	return fmt.Sprintf("Showing %d to %d of %d", start, end, total)
}

// Pages returns ceil(total/limit), the page count for a result set.
func Pages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// Clamp forces page into [1, max(pages,1)].
func Clamp(page, pages int) int {
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		return 1
	}
	if page > pages {
		return pages
	}
	return page
}

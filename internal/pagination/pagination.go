// Package pagination computes page windows and the page links shown under a table.
package pagination

// DefaultPageSize is the number of rows on one table page.
const DefaultPageSize = 5

// Marker is one entry of the page navigation: a page number or an ellipsis.
type Marker struct {
	Number   int  `json:"number,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
	Current  bool `json:"current,omitempty"`
}

// Page describes the visible window of a paginated list.
type Page struct {
	Number     int      `json:"page"`
	Size       int      `json:"pageSize"`
	TotalItems int      `json:"totalItems"`
	TotalPages int      `json:"totalPages"`
	Start      int      `json:"start"`
	End        int      `json:"end"`
	Sequence   []Marker `json:"sequence,omitempty"`
}

// Calculate clamps the requested page into range and computes its window.
// Out of range requests never fail; they land on the first or last page.
func Calculate(totalItems, pageSize, current int) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if totalItems < 0 {
		totalItems = 0
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	number := Clamp(current, totalPages)

	start := (number - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	p := Page{
		Number:     number,
		Size:       pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
	if p.Visible() {
		p.Sequence = Sequence(totalPages, number)
	}
	return p
}

// Clamp moves a page number into [1, totalPages]; with no pages it is 1.
func Clamp(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Visible reports whether the navigation control should be rendered.
func (p Page) Visible() bool {
	return p.TotalPages > 1
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.TotalPages
}

// Prev is the page before the current one, clamped.
func (p Page) Prev() int {
	return Clamp(p.Number-1, p.TotalPages)
}

// Next is the page after the current one, clamped.
func (p Page) Next() int {
	return Clamp(p.Number+1, p.TotalPages)
}

// Sequence lists the first page, the last page and the current page with its
// direct neighbours. Every run of hidden pages collapses into one ellipsis.
func Sequence(totalPages, current int) []Marker {
	if totalPages < 1 {
		return nil
	}
	current = Clamp(current, totalPages)

	var markers []Marker
	last := 0
	for n := 1; n <= totalPages; n++ {
		if n != 1 && n != totalPages && (n < current-1 || n > current+1) {
			continue
		}
		if n-last > 1 {
			markers = append(markers, Marker{Ellipsis: true})
		}
		markers = append(markers, Marker{Number: n, Current: n == current})
		last = n
	}
	return markers
}

// Slice returns the items inside the page window.
func Slice[T any](items []T, p Page) []T {
	if p.Start >= len(items) {
		return nil
	}
	end := p.End
	if end > len(items) {
		end = len(items)
	}
	return items[p.Start:end]
}

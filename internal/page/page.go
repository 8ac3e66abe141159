// Package page slices ordered sequences into fixed-size pages and computes
// the compact page-number window shown in navigation controls.
package page

// Ellipsis marks a gap in a page window. Page numbers start at 1, so the
// marker can never collide with a real page.
const Ellipsis = -1

// Page is one slice of an ordered sequence.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalCount int
	Size       int
}

// Paginate returns page number of items split into size-element pages.
// Out-of-range page numbers are clamped to the nearest valid page, and an
// empty sequence still has one (empty) page so "page 1 of 1" stays
// well-defined.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size < 1 {
		size = 1
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := min(start+size, len(items))
	if start > len(items) {
		start = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     number,
		TotalPages: totalPages,
		TotalCount: len(items),
		Size:       size,
	}
}

// Window returns the page numbers to display for navigating total pages
// from the current one: the first and last page, a radius-wide band around
// current, and Ellipsis markers where the band does not touch the edges.
func Window(current, total, radius int) []int {
	if total < 1 {
		total = 1
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if radius < 0 {
		radius = 0
	}

	start := max(1, current-radius)
	end := min(total, current+radius)

	var window []int
	if start > 1 {
		window = append(window, 1)
		if start > 2 {
			window = append(window, Ellipsis)
		}
	}
	for p := start; p <= end; p++ {
		window = append(window, p)
	}
	if end < total {
		if end < total-1 {
			window = append(window, Ellipsis)
		}
		window = append(window, total)
	}

	return window
}

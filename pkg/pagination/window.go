package pagination

// halfVisible is the number of pages shown on each side of the current page.
const halfVisible = MaxVisiblePages / 2

// TotalPagesFor returns max(1, ceil(totalItems / pageSize)).
// A non-positive pageSize is treated as MinPageSize and a negative total as 0,
// so the result is always >= 1.
func TotalPagesFor(totalItems, pageSize int) int {
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if totalItems <= 0 {
		return 1
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// PageWindow returns up to MaxVisiblePages consecutive page numbers around
// currentPage. The end is clamped to totalPages first and the start is then
// pulled back so the window keeps its full length whenever totalPages allows.
func PageWindow(currentPage, totalPages int) []int {
	if totalPages < 1 {
		totalPages = 1
	}

	startPage := max(currentPage-halfVisible, 1)
	endPage := min(startPage+MaxVisiblePages-1, totalPages)

	if endPage-startPage+1 < MaxVisiblePages {
		startPage = max(endPage-MaxVisiblePages+1, 1)
	}

	if endPage < startPage {
		return []int{}
	}

	pages := make([]int, 0, endPage-startPage+1)
	for p := startPage; p <= endPage; p++ {
		pages = append(pages, p)
	}
	return pages
}

// pageBounds returns the half-open [start, end) item offsets of page within a
// collection of length n, clipped to [0, n].
//
//nolint:nonamedreturns // Named returns document which bound is which.
func pageBounds(page, pageSize, n int) (start, end int) {
	start = (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end = min(start+pageSize, n)
	return start, end
}

package pagination

// State is a read-only snapshot of an Engine, recomputed on every read.
// StartIndex and EndIndex are 1-based and inclusive; both are 0 when there
// are no items.
type State struct {
	CurrentPage int  `json:"current_page"  yaml:"current_page"`
	TotalPages  int  `json:"total_pages"   yaml:"total_pages"`
	PageSize    int  `json:"page_size"     yaml:"page_size"`
	TotalItems  int  `json:"total_items"   yaml:"total_items"`
	StartIndex  int  `json:"start_index"   yaml:"start_index"`
	EndIndex    int  `json:"end_index"     yaml:"end_index"`
	HasPrevPage bool `json:"has_prev_page" yaml:"has_prev_page"`
	HasNextPage bool `json:"has_next_page" yaml:"has_next_page"`
	IsFirstPage bool `json:"is_first_page" yaml:"is_first_page"`
	IsLastPage  bool `json:"is_last_page"  yaml:"is_last_page"`
}

// NewState computes the snapshot for the given page, page size and total.
// The same formula applies to both modes.
func NewState(currentPage, pageSize, totalItems int) State {
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if totalItems < 0 {
		totalItems = 0
	}
	totalPages := TotalPagesFor(totalItems, pageSize)

	startIndex, endIndex := 0, 0
	if totalItems > 0 {
		startIndex = min((currentPage-1)*pageSize+1, totalItems)
		endIndex = min(currentPage*pageSize, totalItems)
	}

	return State{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		StartIndex:  startIndex,
		EndIndex:    endIndex,
		HasPrevPage: currentPage > 1,
		HasNextPage: currentPage < totalPages,
		IsFirstPage: currentPage == 1,
		IsLastPage:  currentPage == totalPages || totalItems == 0,
	}
}

// VisibleCount returns the number of items covered by StartIndex..EndIndex.
func (s State) VisibleCount() int {
	if s.TotalItems == 0 || s.EndIndex < s.StartIndex {
		return 0
	}
	return s.EndIndex - s.StartIndex + 1
}

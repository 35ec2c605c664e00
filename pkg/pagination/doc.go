// Package pagination provides the page-state engine used by gridpage grids.
//
// An Engine owns the current page and page size for one logical grid and
// derives everything a page-selector control needs from them:
//   - TotalPages: max(1, ceil(totalItems / pageSize))
//   - PaginatedItems: the slice for the current page (client mode) or the
//     caller-supplied page payload (server mode)
//   - PageNumbers: a window of up to MaxVisiblePages page numbers around the
//     current page
//   - State: a read-only snapshot with 1-based display indices and boundary
//     flags
//
// Two modes are supported. In client mode the engine slices an in-memory
// collection and the total item count always tracks len(items). In server
// mode the collection holds only the current page and the total is supplied
// by the caller through Options.TotalItems and UpdateTotalItems.
// UpdateTotalItems may be called in either mode, but in client mode it has no
// effect: the total stays len(items) until the collection is replaced with
// SetItems.
//
// Invalid requests never produce errors. Out-of-range pages, navigation past
// a boundary and non-positive page sizes are ignored, and a total of zero
// degrades to a single empty page.
//
//	eng := pagination.New(rows, pagination.Options{PageSize: 25})
//	eng.NextPage()
//	st := eng.State() // st.StartIndex == 26
//
// An Engine is safe for concurrent use. Observers registered with Subscribe
// are called synchronously after each effective change.
package pagination

// Package listview provides a paged list component for Bubble Tea TUI applications.
//
// PagedListModel renders one engine page at a time and keeps a cursor inside
// it. Key features:
//   - Cursor movement that turns the page at either edge
//   - Page navigation (pgup/pgdn, left/right, home/end)
//   - A caller-supplied RenderFunc for each row
//
// Only the current page is rendered, so the cost of View is bounded by the
// page size regardless of how many items the engine holds.
package listview

package listview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	paging "github.com/rshade/gridpage/pkg/pagination"
)

// RenderFunc is a function that renders an item.
// The selected parameter indicates whether this item is under the cursor.
type RenderFunc[T any] func(item T, selected bool) string

// PagedListModel lists the current page of an engine with a cursor.
// Moving the cursor past the first or last row turns the page.
type PagedListModel[T any] struct {
	// engine owns the paging state
	engine *paging.Engine[T]

	// renderFunc renders a single item
	renderFunc RenderFunc[T]

	// cursor is the selected index within the current page (0-based)
	cursor int

	// height is the viewport height in rows
	height int

	// width is the viewport width in columns
	width int

	// quitting is set once a quit key was pressed
	quitting bool
}

// NewPagedListModel creates a list over e.
// height: viewport height in rows.
// width: viewport width in columns.
// renderFunc: function to render each item.
func NewPagedListModel[T any](e *paging.Engine[T], height, width int, renderFunc RenderFunc[T]) *PagedListModel[T] {
	return &PagedListModel[T]{
		engine:     e,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
}

// Init initializes the model (required for tea.Model interface).
func (m *PagedListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *PagedListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input for navigation.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *PagedListModel[T]) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyUp:
		m.moveUp()

	case tea.KeyDown:
		m.moveDown()

	case tea.KeyPgUp, tea.KeyLeft:
		m.turn(m.engine.PrevPage)

	case tea.KeyPgDown, tea.KeyRight:
		m.turn(m.engine.NextPage)

	case tea.KeyHome:
		m.engine.FirstPage()
		m.cursor = 0

	case tea.KeyEnd:
		m.engine.LastPage()
		m.cursor = m.lastIndex()

	case tea.KeyRunes:
		// Handle vim-style navigation
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.moveDown()
			case 'k':
				m.moveUp()
			case 'q':
				m.quitting = true
				return m, tea.Quit
			}
		}

	default:
		// Ignore other key types (Ctrl combinations, function keys, etc.)
	}

	return m, nil
}

// moveUp moves the cursor up, turning to the bottom of the previous page
// from the first row.
func (m *PagedListModel[T]) moveUp() {
	if m.cursor > 0 {
		m.cursor--
		return
	}
	if m.engine.State().HasPrevPage {
		m.engine.PrevPage()
		m.cursor = m.lastIndex()
	}
}

// moveDown moves the cursor down, turning to the top of the next page from
// the last row.
func (m *PagedListModel[T]) moveDown() {
	if m.cursor < m.lastIndex() {
		m.cursor++
		return
	}
	if m.engine.State().HasNextPage {
		m.engine.NextPage()
		m.cursor = 0
	}
}

// turn applies a page transition, keeping the cursor inside the new page.
func (m *PagedListModel[T]) turn(transition func()) {
	transition()
	m.cursor = min(m.cursor, m.lastIndex())
}

// lastIndex is the index of the last row on the current page, or 0 when the
// page is empty.
func (m *PagedListModel[T]) lastIndex() int {
	return max(len(m.engine.PaginatedItems())-1, 0)
}

// View renders the current page followed by a "Page x of y" line.
func (m *PagedListModel[T]) View() string {
	if m.quitting {
		return ""
	}
	items := m.engine.PaginatedItems()
	st := m.engine.State()

	lines := make([]string, 0, len(items)+1)
	for i, item := range items {
		lines = append(lines, m.renderFunc(item, i == m.cursor))
	}
	lines = append(lines, fmt.Sprintf("Page %d of %d", st.CurrentPage, st.TotalPages))
	return strings.Join(lines, "\n")
}

// Cursor returns the selected index within the current page.
func (m *PagedListModel[T]) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor within the current page, capping to valid bounds.
func (m *PagedListModel[T]) SetCursor(index int) {
	m.cursor = min(max(index, 0), m.lastIndex())
}

// Engine returns the engine behind the list.
func (m *PagedListModel[T]) Engine() *paging.Engine[T] {
	return m.engine
}

// Height returns the viewport height.
func (m *PagedListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *PagedListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the item under the cursor.
// Returns nil if the page is empty.
func (m *PagedListModel[T]) GetSelectedItem() *T {
	items := m.engine.PaginatedItems()
	if m.cursor < 0 || m.cursor >= len(items) {
		return nil
	}
	return &items[m.cursor]
}

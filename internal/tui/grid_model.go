package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/gridpage/internal/dataset"
	"github.com/rshade/gridpage/internal/logging"
	paging "github.com/rshade/gridpage/pkg/pagination"
)

// GridModel is the Bubble Tea model for the interactive paged grid.
//
// The engine owns all paging state; the model only translates keys into
// engine calls and rebuilds the table from PaginatedItems after each one.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type GridModel struct {
	state   ViewState
	ctx     context.Context
	engine  *paging.Engine[dataset.Row]
	columns []dataset.Column

	// pageSizes are the choices cycled by [ and ].
	pageSizes []int

	table     table.Model
	textInput textinput.Model
	showGoto  bool
	selected  int

	// statusMsg reports the outcome of the last go-to-page attempt.
	statusMsg string

	width  int
	height int
}

// NewGridModel creates a grid over e. Columns are inferred from the current
// items when cols is empty.
func NewGridModel(
	ctx context.Context,
	e *paging.Engine[dataset.Row],
	cols []dataset.Column,
	pageSizes []int,
) GridModel {
	if len(cols) == 0 {
		cols = dataset.InferColumns(e.Items())
	}
	sizes := slices.Clone(pageSizes)
	if !slices.Contains(sizes, e.PageSize()) {
		sizes = append(sizes, e.PageSize())
	}
	slices.Sort(sizes)

	m := GridModel{
		state:     ViewStateList,
		ctx:       ctx,
		engine:    e,
		columns:   cols,
		pageSizes: slices.Compact(sizes),
		textInput: newTextInput(),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.table = m.buildTable()
	return m
}

// newTextInput builds the go-to-page prompt.
func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "page"
	ti.CharLimit = 9
	ti.Width = 10
	ti.Validate = func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := strconv.Atoi(s); err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		return nil
	}
	return ti
}

// Init initializes the model (Bubble Tea interface).
func (m GridModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	if m.showGoto {
		return m.handleGotoInput(msg)
	}

	switch m.state {
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateDetail:
		return m.handleDetailUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m GridModel) handleGotoInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter:
			m.applyGoto(m.textInput.Value())
			m.closeGoto()
			return m, nil
		case keyEsc:
			m.closeGoto()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// applyGoto moves to the typed page. Input that is not a page number, or a
// page that does not exist, leaves the engine where it is.
func (m *GridModel) applyGoto(value string) {
	value = strings.TrimSpace(value)
	page, err := strconv.Atoi(value)
	if err != nil {
		if value != "" {
			m.statusMsg = fmt.Sprintf("Not a page number: %q", value)
		}
		return
	}

	m.engine.SetPage(page)
	if m.engine.CurrentPage() != page {
		m.statusMsg = fmt.Sprintf("Page %d does not exist", page)
		logging.FromContext(m.ctx).Debug().
			Str("component", "tui").
			Int("requested_page", page).
			Int("total_pages", m.engine.TotalPages()).
			Msg("go-to-page ignored")
		return
	}
	m.statusMsg = ""
	m.rebuildTable()
}

func (m *GridModel) closeGoto() {
	m.showGoto = false
	m.textInput.Blur()
	m.textInput.SetValue("")
}

func (m GridModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m.handleListKeypress(keyMsg)
}

func (m GridModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyPgDown, keyRight, keyNext:
		m.navigate(m.engine.NextPage)
		return m, nil
	case keyPgUp, keyLeft, keyPrev:
		m.navigate(m.engine.PrevPage)
		return m, nil
	case keyHome, keyFirst:
		m.navigate(m.engine.FirstPage)
		return m, nil
	case keyEnd, keyLast:
		m.navigate(m.engine.LastPage)
		return m, nil
	case keyGrow:
		m.cyclePageSize(1)
		return m, nil
	case keyShrink:
		m.cyclePageSize(-1)
		return m, nil
	case keyGoToPage:
		m.showGoto = true
		m.statusMsg = ""
		m.textInput.Focus()
		return m, textinput.Blink
	case keyEnter:
		m.selected = m.table.Cursor()
		if m.selected >= 0 && m.selected < len(m.engine.PaginatedItems()) {
			m.state = ViewStateDetail
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

func (m GridModel) handleDetailUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEsc:
			m.state = ViewStateList
			m.table.Focus()
			return m, nil
		}
	}
	return m, nil
}

// navigate applies a page transition and rebuilds the table when the page
// actually changed.
func (m *GridModel) navigate(transition func()) {
	before := m.engine.CurrentPage()
	transition()
	m.statusMsg = ""
	if m.engine.CurrentPage() != before {
		m.rebuildTable()
	}
}

// cyclePageSize steps through pageSizes by dir, wrapping at either end.
func (m *GridModel) cyclePageSize(dir int) {
	if len(m.pageSizes) == 0 {
		return
	}
	idx := slices.Index(m.pageSizes, m.engine.PageSize())
	if idx < 0 {
		idx = 0
	}
	idx = (idx + dir + len(m.pageSizes)) % len(m.pageSizes)

	m.engine.SetPageSize(m.pageSizes[idx])
	m.statusMsg = ""
	m.rebuildTable()
}

// rebuildTable reconstructs the table from the engine's current page.
func (m *GridModel) rebuildTable() {
	m.table = m.buildTable()
}

// buildTable creates a new table model for the current page.
func (m *GridModel) buildTable() table.Model {
	items := m.engine.PaginatedItems()

	columns := make([]table.Column, len(m.columns))
	for i, c := range m.columns {
		columns[i] = table.Column{Title: c.Header, Width: columnWidth(c, items)}
	}

	rows := make([]table.Row, len(items))
	for i, item := range items {
		row := make(table.Row, len(m.columns))
		for j, c := range m.columns {
			row[j] = truncateCell(item.Cell(c.Field), columns[j].Width)
		}
		rows[i] = row
	}

	availableHeight := m.height - footerHeight - 1
	if availableHeight < minHeight {
		availableHeight = minHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(availableHeight),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// columnWidth returns c.Width when fixed, otherwise the widest of the header
// and the visible cells, bounded to [minColumnWidth, maxColumnWidth].
func columnWidth(c dataset.Column, items []dataset.Row) int {
	if c.Width > 0 {
		return c.Width
	}
	w := len([]rune(c.Header))
	for _, item := range items {
		w = max(w, len([]rune(item.Cell(c.Field))))
	}
	return min(max(w, minColumnWidth), maxColumnWidth)
}

// Engine returns the engine driving the grid.
func (m GridModel) Engine() *paging.Engine[dataset.Row] {
	return m.engine
}

// SelectedRow returns the row under the table cursor, or nil on an empty page.
func (m GridModel) SelectedRow() dataset.Row {
	items := m.engine.PaginatedItems()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(items) {
		return nil
	}
	return items[cursor]
}

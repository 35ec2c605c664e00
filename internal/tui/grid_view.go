package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpText lists the grid key bindings.
const helpText = "←/→ page · g/G first/last · [/] page size · : go to page · enter detail · q quit"

// msgSelectedOutOfBounds is shown when the detail view has no row to show.
const msgSelectedOutOfBounds = "No row selected"

// View renders the current view (Bubble Tea interface).
func (m GridModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView renders the table, the paging footer and the optional
// go-to-page prompt.
func (m GridModel) renderListView() string {
	sections := []string{
		m.table.View(),
		m.renderFooter(),
		m.renderStatusBar(),
	}

	if m.showGoto {
		sections = append(sections, LabelStyle.Render("Go to page: ")+m.textInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderFooter renders the item summary next to the page selector.
func (m GridModel) renderFooter() string {
	st := m.engine.State()
	summary := InfoStyle.Render(FormatSummary(st))
	position := SubtleStyle.Render(FormatPagePosition(st))
	selector := RenderPageSelector(m.engine.PageNumbers(), st)
	return lipgloss.JoinHorizontal(lipgloss.Center, summary, "  ", selector, "  ", position)
}

// renderStatusBar renders the page size, the last status message and key help.
func (m GridModel) renderStatusBar() string {
	var b strings.Builder
	b.WriteString(printer.Sprintf("Rows per page: %d", m.engine.PageSize()))
	if m.statusMsg != "" {
		b.WriteString(" | ")
		b.WriteString(WarningStyle.Render(m.statusMsg))
	}
	b.WriteString(" | ")
	b.WriteString(helpText)
	return SubtleStyle.Render(b.String())
}

// renderDetailView renders every field of the selected row.
func (m GridModel) renderDetailView() string {
	items := m.engine.PaginatedItems()
	if m.selected < 0 || m.selected >= len(items) {
		return msgSelectedOutOfBounds
	}

	row := items[m.selected]
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("ROW " + row.ID()))
	content.WriteString("\n\n")

	labelWidth := 0
	for _, c := range m.columns {
		labelWidth = max(labelWidth, len([]rune(c.Header)))
	}
	for _, c := range m.columns {
		content.WriteString(LabelStyle.Width(labelWidth + 2).Render(c.Header + ":"))
		content.WriteString(ValueStyle.Render(row.Cell(c.Field)))
		content.WriteString("\n")
	}

	content.WriteString(SubtleStyle.Render("\nPress ESC to return"))

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

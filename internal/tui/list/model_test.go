package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paging "github.com/rshade/gridpage/pkg/pagination"
)

func newTestList(n, pageSize int) *PagedListModel[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	e := paging.New(items, paging.Options{PageSize: pageSize})
	return NewPagedListModel(e, 10, 40, func(item int, selected bool) string {
		if selected {
			return fmt.Sprintf("> %d", item)
		}
		return fmt.Sprintf("  %d", item)
	})
}

func press(m *PagedListModel[int], msg tea.KeyMsg) *PagedListModel[int] {
	updated, _ := m.Update(msg)
	return updated.(*PagedListModel[int])
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPagedListModel_View(t *testing.T) {
	m := newTestList(12, 5)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "> 1", lines[0])
	assert.Equal(t, "  5", lines[4])
	assert.Equal(t, "Page 1 of 3", lines[5])
}

func TestPagedListModel_CursorTurnsPage(t *testing.T) {
	m := newTestList(12, 5)

	for range 4 {
		m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 4, m.Cursor())
	assert.Equal(t, 1, m.Engine().CurrentPage())

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Engine().CurrentPage(), "down from the last row turns the page")
	assert.Equal(t, 0, m.Cursor())
	require.NotNil(t, m.GetSelectedItem())
	assert.Equal(t, 6, *m.GetSelectedItem())

	m = press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Engine().CurrentPage(), "up from the first row turns back")
	assert.Equal(t, 4, m.Cursor())
	assert.Equal(t, 5, *m.GetSelectedItem())
}

func TestPagedListModel_StopsAtEdges(t *testing.T) {
	m := newTestList(7, 5)

	m = press(m, runeKey('k'))
	assert.Equal(t, 1, m.Engine().CurrentPage())
	assert.Equal(t, 0, m.Cursor())

	m = press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, m.Engine().CurrentPage())
	assert.Equal(t, 1, m.Cursor(), "last page holds two rows")

	m = press(m, runeKey('j'))
	assert.Equal(t, 2, m.Engine().CurrentPage())
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, 7, *m.GetSelectedItem())
}

func TestPagedListModel_PageKeys(t *testing.T) {
	m := newTestList(12, 5)
	m.SetCursor(4)

	m = press(m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 2, m.Engine().CurrentPage())
	assert.Equal(t, 4, m.Cursor())

	m = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 3, m.Engine().CurrentPage())
	assert.Equal(t, 1, m.Cursor(), "cursor is clamped into the short last page")

	m = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.Engine().CurrentPage())

	m = press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 1, m.Engine().CurrentPage())
	assert.Equal(t, 0, m.Cursor())
}

func TestPagedListModel_Empty(t *testing.T) {
	m := newTestList(0, 5)

	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyPgDown})

	assert.Equal(t, 0, m.Cursor())
	assert.Nil(t, m.GetSelectedItem())
	assert.Equal(t, "Page 1 of 1", m.View())
}

func TestPagedListModel_SetCursor(t *testing.T) {
	m := newTestList(12, 5)

	m.SetCursor(-3)
	assert.Equal(t, 0, m.Cursor())
	m.SetCursor(99)
	assert.Equal(t, 4, m.Cursor())
}

func TestPagedListModel_WindowSizeAndQuit(t *testing.T) {
	m := newTestList(3, 5)
	assert.Nil(t, m.Init())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = updated.(*PagedListModel[int])
	assert.Equal(t, 30, m.Height())
	assert.Equal(t, 80, m.Width())

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

package tui

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	paging "github.com/rshade/gridpage/pkg/pagination"
)

//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatSummary renders the item range of st, e.g. "Showing 11–20 of 1,234".
func FormatSummary(st paging.State) string {
	if st.TotalItems == 0 {
		return "No items"
	}
	return printer.Sprintf("Showing %d–%d of %d", st.StartIndex, st.EndIndex, st.TotalItems)
}

// FormatPagePosition renders "Page 2 of 3".
func FormatPagePosition(st paging.State) string {
	return printer.Sprintf("Page %d of %d", st.CurrentPage, st.TotalPages)
}

// RenderPageSelector renders the page window with the current page
// bracketed and highlighted, and prev/next arrows dimmed when unavailable.
func RenderPageSelector(pages []int, st paging.State) string {
	parts := make([]string, 0, len(pages)+4) //nolint:mnd // Arrows and ellipses.

	parts = append(parts, arrow("‹", st.HasPrevPage))
	if len(pages) > 0 && pages[0] > 1 {
		parts = append(parts, PageDisabledStyle.Render("…"))
	}
	for _, p := range pages {
		label := strconv.Itoa(p)
		if p == st.CurrentPage {
			parts = append(parts, PageCurrentStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, PageStyle.Render(label))
	}
	if len(pages) > 0 && pages[len(pages)-1] < st.TotalPages {
		parts = append(parts, PageDisabledStyle.Render("…"))
	}
	parts = append(parts, arrow("›", st.HasNextPage))

	return strings.Join(parts, "")
}

func arrow(glyph string, enabled bool) string {
	if enabled {
		return PageStyle.Render(glyph)
	}
	return PageDisabledStyle.Render(glyph)
}

// truncateCell shortens s to width runes, marking the cut with "...".
func truncateCell(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	const ellipsis = "..."
	if width <= len(ellipsis) {
		return string(r[:width])
	}
	return string(r[:width-len(ellipsis)]) + ellipsis
}

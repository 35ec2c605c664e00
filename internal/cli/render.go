package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/gridpage/internal/cli/pagination"
	"github.com/rshade/gridpage/internal/config"
	"github.com/rshade/gridpage/internal/dataset"
	"github.com/rshade/gridpage/internal/tui"
)

const tabPadding = 2

// pageResult is the structured form of one page.
type pageResult struct {
	Pagination pagination.Meta `json:"pagination" yaml:"pagination"`
	Items      []dataset.Row   `json:"items"      yaml:"items"`
}

// renderPage writes items and their paging state in format.
func renderPage(w io.Writer, format string, cols []dataset.Column, items []dataset.Row, meta pagination.Meta) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, pageResult{Pagination: meta, Items: items})
	case config.OutputYAML:
		return renderYAML(w, pageResult{Pagination: meta, Items: items})
	default:
		return renderPageTable(w, cols, items, meta)
	}
}

// renderWindow writes the page window and paging state in format.
func renderWindow(w io.Writer, format string, meta pagination.Meta) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, meta)
	case config.OutputYAML:
		return renderYAML(w, meta)
	default:
		return renderWindowTable(w, meta)
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd // Two-space indent matches the config files.
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// renderPageTable prints the page as an aligned table followed by a footer.
func renderPageTable(w io.Writer, cols []dataset.Column, items []dataset.Row, meta pagination.Meta) error {
	if len(items) == 0 {
		fmt.Fprintln(w, "No rows on this page")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

		headers := make([]string, len(cols))
		rules := make([]string, len(cols))
		for i, c := range cols {
			headers[i] = c.Header
			rules[i] = strings.Repeat("-", len([]rune(c.Header)))
		}
		fmt.Fprintln(tw, strings.Join(headers, "\t"))
		fmt.Fprintln(tw, strings.Join(rules, "\t"))

		cells := make([]string, len(cols))
		for _, item := range items {
			for i, c := range cols {
				cells[i] = item.Cell(c.Field)
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}

	fmt.Fprintln(w)
	return renderFooter(w, meta)
}

// renderWindowTable prints the page window and the paging state as key/value lines.
func renderWindowTable(w io.Writer, meta pagination.Meta) error {
	if err := renderFooter(w, meta); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "Start index:\t%d\n", meta.StartIndex)
	fmt.Fprintf(tw, "End index:\t%d\n", meta.EndIndex)
	fmt.Fprintf(tw, "Has previous:\t%t\n", meta.HasPrevPage)
	fmt.Fprintf(tw, "Has next:\t%t\n", meta.HasNextPage)
	fmt.Fprintf(tw, "First page:\t%t\n", meta.IsFirstPage)
	fmt.Fprintf(tw, "Last page:\t%t\n", meta.IsLastPage)
	return tw.Flush()
}

// renderFooter prints the summary line, the page window and a note when the
// requested page was ignored.
func renderFooter(w io.Writer, meta pagination.Meta) error {
	if meta.RequestedPage != 0 {
		fmt.Fprintf(w, "Note: page %d does not exist, showing page %d\n", meta.RequestedPage, meta.CurrentPage)
	}
	_, err := fmt.Fprintf(w, "%s | %s | Pages: %s\n",
		tui.FormatSummary(meta.State),
		tui.FormatPagePosition(meta.State),
		formatPages(meta.Pages, meta.CurrentPage),
	)
	return err
}

// formatPages renders the window as plain text with the current page bracketed.
func formatPages(pages []int, current int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		if p == current {
			parts[i] = "[" + strconv.Itoa(p) + "]"
			continue
		}
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}

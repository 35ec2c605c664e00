package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/gridpage/internal/cli/pagination"
	"github.com/rshade/gridpage/internal/config"
	"github.com/rshade/gridpage/internal/dataset"
	"github.com/rshade/gridpage/internal/logging"
	"github.com/rshade/gridpage/internal/tui"
	listview "github.com/rshade/gridpage/internal/tui/list"
	paging "github.com/rshade/gridpage/pkg/pagination"
)

// Browse views.
const (
	viewTable = "table"
	viewList  = "list"
)

// listViewHeight is the initial list viewport height before the first resize.
const listViewHeight = 20

// Browse errors.
var (
	ErrNotTerminal = errors.New("browse needs an interactive terminal; use 'gridpage page' instead")
	ErrInvalidView = errors.New("view must be 'table' or 'list'")
)

// NewBrowseCmd creates the browse command, an interactive paged grid.
func NewBrowseCmd() *cobra.Command {
	var (
		input inputFlags
		view  string
	)
	params := pagination.NewParams(config.DefaultPageSize)

	cmd := &cobra.Command{
		Use:   "browse [FILE...]",
		Short: "Browse rows in an interactive paged grid",
		Long: `Opens an interactive grid over the rows.

Keys: ←/→ (or n/p, pgup/pgdn) change page, g/G jump to the first/last page,
[ and ] cycle the page size, : jumps to a page number, enter shows the selected
row, q quits.`,
		Example: `  # Browse a file
  gridpage browse rows.json

  # Browse 1,000 generated rows as a list, 25 per page
  gridpage browse --generate 1000 --view list --page-size 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &params.PageSize, nil)
			if err := params.Validate(); err != nil {
				return err
			}
			if view != viewTable && view != viewList {
				return fmt.Errorf("%w: got %q", ErrInvalidView, view)
			}
			if !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			rows, err := input.loadRows(cmd.Context(), args)
			if err != nil {
				return err
			}

			model := newBrowseModel(cmd.Context(), rows, *params, view, config.GetGlobalConfig().PageSizeOptions())
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, runErr := p.Run(); runErr != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", runErr)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", params.Page, "page to open at (1-based)")
	cmd.Flags().IntVar(&params.PageSize, "page-size", params.PageSize, "items per page")
	cmd.Flags().StringVar(&view, "view", viewTable, "view: table or list")
	input.addFlags(cmd)

	return cmd
}

// newBrowseModel builds the Bubble Tea model for view over rows.
func newBrowseModel(
	ctx context.Context,
	rows []dataset.Row,
	params pagination.Params,
	view string,
	pageSizes []int,
) tea.Model {
	log := logging.ComponentLogger(*logging.FromContext(ctx), "pagination")
	e := paging.New(rows, params.Options(&log))
	pagination.Apply(e, params.RequestedPage())

	cols := dataset.InferColumns(rows)
	if view == viewList {
		return listview.NewPagedListModel(e, listViewHeight, 0, listRowRenderer(cols))
	}
	return tui.NewGridModel(ctx, e, cols, pageSizes)
}

// listRowRenderer renders a row as "id  field=value ..." with a cursor marker.
func listRowRenderer(cols []dataset.Column) listview.RenderFunc[dataset.Row] {
	return func(row dataset.Row, selected bool) string {
		var b strings.Builder
		if selected {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(row.ID())
		for _, c := range cols {
			if c.Field == dataset.IDField {
				continue
			}
			fmt.Fprintf(&b, "  %s=%s", c.Field, row.Cell(c.Field))
		}
		line := b.String()
		if selected {
			return tui.TableSelectedStyle.Render(line)
		}
		return line
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/gridpage/internal/cli/pagination"
	"github.com/rshade/gridpage/internal/config"
	"github.com/rshade/gridpage/internal/dataset"
	"github.com/rshade/gridpage/internal/logging"
	paging "github.com/rshade/gridpage/pkg/pagination"
)

// NewPageCmd creates the page command, which prints one page of a row set.
func NewPageCmd() *cobra.Command {
	var input inputFlags
	params := pagination.NewParams(config.DefaultPageSize)

	cmd := &cobra.Command{
		Use:   "page [FILE...]",
		Short: "Print one page of rows",
		Long: `Loads rows from JSON or YAML files (or generates them) and prints a single page
together with its paging state.

A --page past the last page is ignored and the first page is shown, the same way
the engine ignores an out-of-range SetPage. With --server-side the input rows are
taken as the payload of the requested page, and --total-items supplies the size
of the full result.`,
		Example: `  # Third page of 25 rows
  gridpage page rows.json --page 3 --page-size 25

  # Page containing the 120th row (0-based offset)
  gridpage page rows.yaml --offset 120

  # Structured output
  gridpage page a.json b.json -o yaml

  # One page of a server-side result
  gridpage page page7.json --server-side --total-items 1234 --page 7 --page-size 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, &params.PageSize, &params.Output)
			if err := params.Validate(); err != nil {
				return err
			}
			return runPage(cmd, &input, *params, args)
		},
	}

	params.AddFlags(cmd, true)
	input.addFlags(cmd)

	return cmd
}

func runPage(cmd *cobra.Command, input *inputFlags, params pagination.Params, args []string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	rows, err := input.loadRows(ctx, args)
	if err != nil {
		return err
	}

	engineLog := logging.ComponentLogger(*log, "pagination")
	e := paging.New(rows, params.Options(&engineLog))
	unsubscribe := e.Subscribe(func(st paging.State) {
		log.Debug().
			Str("component", "cli").
			Int("page", st.CurrentPage).
			Int("total_pages", st.TotalPages).
			Msg("page changed")
	})
	defer unsubscribe()

	meta := pagination.Apply(e, params.RequestedPage())
	if meta.RequestedPage != 0 {
		log.Debug().
			Str("component", "cli").
			Int("requested_page", meta.RequestedPage).
			Int("total_pages", meta.TotalPages).
			Msg("requested page out of range, ignored")
	}

	return renderPage(cmd.OutOrStdout(), params.Output, dataset.InferColumns(rows), e.PaginatedItems(), meta)
}

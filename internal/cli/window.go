package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/gridpage/internal/cli/pagination"
	"github.com/rshade/gridpage/internal/config"
	"github.com/rshade/gridpage/internal/logging"
	paging "github.com/rshade/gridpage/pkg/pagination"
)

// NewWindowCmd creates the window command, which prints the page-number
// window and paging state for a result of a given size.
func NewWindowCmd() *cobra.Command {
	params := pagination.NewParams(config.DefaultPageSize)
	params.ServerSide = true

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the page-number window for a result size",
		Long: `Computes the paging state for --total-items items without loading any rows.
The window holds at most five page numbers centered on the current page.`,
		Example: `  # Window around page 8 of 20
  gridpage window --total-items 200 --page 8

  # As JSON
  gridpage window --total-items 45 --page-size 20 --page 3 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyConfigDefaults(cmd, &params.PageSize, &params.Output)
			if err := params.Validate(); err != nil {
				return err
			}

			log := logging.ComponentLogger(*logging.FromContext(cmd.Context()), "pagination")
			e := paging.New[struct{}](nil, params.Options(&log))
			meta := pagination.Apply(e, params.RequestedPage())
			return renderWindow(cmd.OutOrStdout(), params.Output, meta)
		},
	}

	f := cmd.Flags()
	f.IntVar(&params.TotalItems, "total-items", params.TotalItems, "total number of items")
	f.IntVar(&params.Page, "page", params.Page, "current page (1-based)")
	f.IntVar(&params.PageSize, "page-size", params.PageSize, "items per page")
	f.StringVarP(&params.Output, "output", "o", params.Output, "output format: table, json, yaml")
	_ = cmd.MarkFlagRequired("total-items")

	return cmd
}

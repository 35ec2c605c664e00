package pagination

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/gridpage/internal/config"
	paging "github.com/rshade/gridpage/pkg/pagination"
)

// Flag limits.
const (
	MinPage      = paging.MinPage
	MinPageSize  = paging.MinPageSize
	MaxPageSize  = config.MaxPageSize
	NoTotalItems = -1
)

// Common validation errors.
var (
	ErrInvalidPage          = errors.New("page must be >= 1")
	ErrInvalidPageSize      = fmt.Errorf("page-size must be between %d and %d", MinPageSize, MaxPageSize)
	ErrInvalidOffset        = errors.New("offset must be non-negative")
	ErrInvalidTotalItems    = errors.New("total-items must be non-negative")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset) and page-based (--page) pagination")
	ErrTotalItemsClientMode = errors.New("--total-items requires --server-side")
	ErrMissingTotalItems    = errors.New("--server-side requires --total-items")
	ErrInvalidOutput        = errors.New("output must be one of table, json, yaml")
)

// Params holds the paging flags of a command.
//
// Page and Offset are alternative ways to choose the starting page and are
// mutually exclusive. A zero Page means the first page.
type Params struct {
	// Page is the 1-based page to show.
	Page int

	// PageSize is the number of items per page.
	PageSize int

	// Offset is a 0-based item offset; the page containing it is shown.
	Offset int

	// ServerSide treats loaded rows as the payload of the current page only.
	ServerSide bool

	// TotalItems is the server-side total, or NoTotalItems when unset.
	TotalItems int

	// Output is the render format. Empty means the configured default.
	Output string
}

// NewParams returns Params with the given default page size.
func NewParams(defaultPageSize int) *Params {
	if defaultPageSize < MinPageSize {
		defaultPageSize = paging.DefaultPageSize
	}
	return &Params{
		PageSize:   defaultPageSize,
		TotalItems: NoTotalItems,
	}
}

// AddFlags registers the paging flags on cmd. Commands that never render
// structured output can skip withOutput.
func (p *Params) AddFlags(cmd *cobra.Command, withOutput bool) {
	f := cmd.Flags()
	f.IntVar(&p.Page, "page", p.Page, "page number to show (1-based)")
	f.IntVar(&p.PageSize, "page-size", p.PageSize, "items per page")
	f.IntVar(&p.Offset, "offset", p.Offset, "show the page containing this 0-based item offset")
	f.BoolVar(&p.ServerSide, "server-side", p.ServerSide, "treat input rows as the current page only")
	f.IntVar(&p.TotalItems, "total-items", p.TotalItems, "total item count for --server-side")
	if withOutput {
		f.StringVarP(&p.Output, "output", "o", p.Output, "output format: table, json, yaml")
	}
}

// Validate checks the flags for values the engine would silently ignore.
func (p Params) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidOffset, p.Offset)
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}

	if p.TotalItems < NoTotalItems {
		return fmt.Errorf("%w: got %d", ErrInvalidTotalItems, p.TotalItems)
	}
	hasTotal := p.TotalItems != NoTotalItems
	if hasTotal && !p.ServerSide {
		return ErrTotalItemsClientMode
	}
	if p.ServerSide && !hasTotal {
		return ErrMissingTotalItems
	}

	if p.Output != "" && !config.IsValidOutputFormat(p.Output) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutput, p.Output)
	}
	return nil
}

// RequestedPage returns the page the user asked for, derived from Page or
// Offset.
func (p Params) RequestedPage() int {
	if p.Page > 0 {
		return p.Page
	}
	if p.Offset > 0 && p.PageSize > 0 {
		return p.Offset/p.PageSize + 1
	}
	return paging.DefaultInitialPage
}

// Options converts the flags into engine options. The requested page is not
// applied here; callers pass RequestedPage to SetPage so an out-of-range page
// is ignored instead of clamped.
func (p Params) Options(logger *zerolog.Logger) paging.Options {
	opts := paging.Options{
		PageSize:   p.PageSize,
		ServerSide: p.ServerSide,
		Logger:     logger,
	}
	if p.ServerSide && p.TotalItems != NoTotalItems {
		opts = opts.WithTotalItems(p.TotalItems)
	}
	return opts
}

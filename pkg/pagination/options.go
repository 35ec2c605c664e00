package pagination

import "github.com/rs/zerolog"

// Engine defaults and limits.
const (
	DefaultPageSize    = 10
	DefaultInitialPage = 1
	MinPageSize        = 1
	MinPage            = 1
	// MaxVisiblePages is the length of the page-number window.
	MaxVisiblePages = 5
)

// Mode selects where slicing happens.
type Mode int

const (
	// ModeClient slices an in-memory collection that holds every item.
	ModeClient Mode = iota
	// ModeServer passes the collection through untouched; it holds only the
	// current page and the total is supplied externally.
	ModeServer
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case ModeClient:
		return "client"
	case ModeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Options configures a new Engine. Zero values select the documented
// defaults, so Options{} is a valid client-mode configuration.
type Options struct {
	// PageSize is the number of items per page. Values <= 0 select
	// DefaultPageSize.
	PageSize int

	// InitialPage is the 1-based starting page. Values <= 0 select
	// DefaultInitialPage; values past the last page are clamped to it.
	InitialPage int

	// TotalItems is the server-side total. Nil means len(items). Ignored in
	// client mode, where the collection length is authoritative.
	TotalItems *int

	// ServerSide selects ModeServer.
	ServerSide bool

	// Logger receives debug events for ignored operations. Nil disables
	// logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the documented client-mode defaults.
func DefaultOptions() Options {
	return Options{
		PageSize:    DefaultPageSize,
		InitialPage: DefaultInitialPage,
	}
}

// WithTotalItems returns a copy of o with TotalItems set to n.
func (o Options) WithTotalItems(n int) Options {
	o.TotalItems = &n
	return o
}

// mode reports the Mode selected by o.
func (o Options) mode() Mode {
	if o.ServerSide {
		return ModeServer
	}
	return ModeClient
}

// normalized fills defaults and floors out-of-range values.
func (o Options) normalized() Options {
	if o.PageSize < MinPageSize {
		o.PageSize = DefaultPageSize
	}
	if o.InitialPage < MinPage {
		o.InitialPage = DefaultInitialPage
	}
	return o
}

package pagination

import (
	"sync"

	"github.com/rs/zerolog"
)

// Observer receives the snapshot produced by a state change.
type Observer func(State)

// Engine holds the pagination state for one grid. The zero value is not
// usable; construct engines with New.
type Engine[T any] struct {
	mu sync.RWMutex

	mode         Mode
	items        []T
	currentPage  int
	itemsPerPage int
	totalItems   int

	observers []*subscription
	logger    zerolog.Logger
}

// subscription wraps an Observer so it can be removed by identity.
type subscription struct {
	fn Observer
}

// New creates an Engine over items. The engine keeps a reference to items and
// never writes to it.
func New[T any](items []T, opts Options) *Engine[T] {
	opts = opts.normalized()

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("component", "pagination").Logger()
	}

	e := &Engine[T]{
		mode:         opts.mode(),
		items:        items,
		currentPage:  opts.InitialPage,
		itemsPerPage: opts.PageSize,
		logger:       logger,
	}

	switch {
	case e.mode == ModeClient, opts.TotalItems == nil:
		e.totalItems = len(items)
	default:
		e.totalItems = max(*opts.TotalItems, 0)
	}

	if tp := e.totalPagesLocked(); e.currentPage > tp {
		e.logger.Debug().
			Int("initial_page", e.currentPage).
			Int("total_pages", tp).
			Msg("initial page out of range, clamping to last page")
		e.currentPage = tp
	}

	return e
}

// Mode reports whether the engine slices locally or passes items through.
func (e *Engine[T]) Mode() Mode {
	return e.mode
}

// CurrentPage returns the 1-based current page.
func (e *Engine[T]) CurrentPage() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.currentPage
}

// PageSize returns the number of items per page.
func (e *Engine[T]) PageSize() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.itemsPerPage
}

// TotalItems returns the logical item count.
func (e *Engine[T]) TotalItems() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.totalItems
}

// TotalPages returns max(1, ceil(TotalItems / PageSize)).
func (e *Engine[T]) TotalPages() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.totalPagesLocked()
}

// Items returns the collection reference the engine was given.
func (e *Engine[T]) Items() []T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.items
}

// PaginatedItems returns the items visible on the current page.
// In server mode this is the collection itself. In client mode it is a
// capacity-capped sub-slice of the collection, empty when there is nothing
// to show.
func (e *Engine[T]) PaginatedItems() []T {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.mode == ModeServer {
		return e.items
	}

	start, end := pageBounds(e.currentPage, e.itemsPerPage, len(e.items))
	if start == end {
		return []T{}
	}
	return e.items[start:end:end]
}

// PageNumbers returns the page-selector window around the current page.
func (e *Engine[T]) PageNumbers() []int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return PageWindow(e.currentPage, e.totalPagesLocked())
}

// State returns a consistent snapshot of the engine.
func (e *Engine[T]) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stateLocked()
}

// SetPage moves to page when 1 <= page <= TotalPages. Other values are
// ignored.
func (e *Engine[T]) SetPage(page int) {
	e.mutate(func() {
		if page < MinPage || page > e.totalPagesLocked() {
			e.logger.Debug().
				Int("page", page).
				Int("total_pages", e.totalPagesLocked()).
				Msg("ignoring out-of-range page")
			return
		}
		e.currentPage = page
	})
}

// NextPage advances one page unless already on the last page.
func (e *Engine[T]) NextPage() {
	e.mutate(func() {
		if e.currentPage < e.totalPagesLocked() {
			e.currentPage++
		}
	})
}

// PrevPage goes back one page unless already on the first page.
func (e *Engine[T]) PrevPage() {
	e.mutate(func() {
		if e.currentPage > MinPage {
			e.currentPage--
		}
	})
}

// FirstPage jumps to page 1.
func (e *Engine[T]) FirstPage() {
	e.mutate(func() {
		e.currentPage = MinPage
	})
}

// LastPage jumps to TotalPages.
func (e *Engine[T]) LastPage() {
	e.mutate(e.lastPageLocked)
}

// SetPageSize replaces the page size. If the current page no longer exists
// the engine moves to the new last page. Non-positive sizes are ignored.
func (e *Engine[T]) SetPageSize(size int) {
	e.mutate(func() {
		if size < MinPageSize {
			e.logger.Debug().Int("page_size", size).Msg("ignoring non-positive page size")
			return
		}
		e.itemsPerPage = size
		e.clampLocked()
	})
}

// UpdateTotalItems sets the server-side total. If the current page no longer
// exists the engine moves to the new last page. Negative counts are ignored,
// and in client mode the call has no effect because the collection length is
// authoritative.
func (e *Engine[T]) UpdateTotalItems(count int) {
	e.mutate(func() {
		if e.mode == ModeClient {
			e.logger.Debug().
				Int("count", count).
				Msg("ignoring total update in client mode")
			return
		}
		if count < 0 {
			e.logger.Debug().Int("count", count).Msg("ignoring negative total")
			return
		}
		e.totalItems = count
		e.clampLocked()
	})
}

// SetItems swaps the collection reference. In client mode the total is
// re-derived from len(items) and the current page clamped; in server mode
// only the page payload changes.
func (e *Engine[T]) SetItems(items []T) {
	e.mutateNotify(true, func() {
		e.items = items
		if e.mode == ModeClient {
			e.totalItems = len(items)
			e.clampLocked()
		}
	})
}

// Subscribe registers fn to be called with the new State after every
// mutation that changes it, and after every SetItems. Observers run
// synchronously, in registration order, outside the engine lock, so they may
// read from the engine. The returned function removes the observer.
func (e *Engine[T]) Subscribe(fn Observer) func() {
	sub := &subscription{fn: fn}

	e.mu.Lock()
	e.observers = append(e.observers, sub)
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, s := range e.observers {
				if s == sub {
					e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// mutate applies fn under the write lock and notifies observers when the
// snapshot changed.
func (e *Engine[T]) mutate(fn func()) {
	e.mutateNotify(false, fn)
}

// mutateNotify is mutate with an option to notify even when the snapshot is
// unchanged, as happens when a server-mode page payload is swapped.
func (e *Engine[T]) mutateNotify(always bool, fn func()) {
	e.mu.Lock()
	before := e.stateLocked()
	fn()
	after := e.stateLocked()
	observers := e.observers
	e.mu.Unlock()

	if before == after && !always {
		return
	}
	for _, sub := range observers {
		sub.fn(after)
	}
}

func (e *Engine[T]) totalPagesLocked() int {
	return TotalPagesFor(e.totalItems, e.itemsPerPage)
}

func (e *Engine[T]) lastPageLocked() {
	e.currentPage = e.totalPagesLocked()
}

// clampLocked applies the last-page transition when the current page fell
// off the end.
func (e *Engine[T]) clampLocked() {
	if e.currentPage > e.totalPagesLocked() {
		e.lastPageLocked()
	}
}

func (e *Engine[T]) stateLocked() State {
	return NewState(e.currentPage, e.itemsPerPage, e.totalItems)
}

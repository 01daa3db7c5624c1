package cli

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/client"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/client/listing"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
)

// listController is the non-generic face of a mounted list view.
type listController interface {
	search(term string)
	next() bool
	prev() bool
	page(n int)
	limit(n int)
	more() bool
	refresh()
	remove(key string) bool
	// ref maps a 1-based row number on screen to the item's key; anything
	// else is returned unchanged.
	ref(arg string) string
	infinite() bool
	// await blocks until the list has settled, then renders it.
	await(ctx context.Context) string
	close()
}

type listView[T listing.Keyed] struct {
	p       *listing.Pipeline[T]
	changed chan struct{}
	wait    time.Duration
	mode    listing.Mode
	view    func(listing.Snapshot[T]) string
}

func newListView[T listing.Keyed](
	fetch listing.FetchFunc[T],
	mode listing.Mode,
	wait time.Duration,
	view func(listing.Snapshot[T]) string,
	opts ...listing.Option,
) *listView[T] {
	lv := &listView[T]{
		changed: make(chan struct{}, 1),
		wait:    wait,
		mode:    mode,
		view:    view,
	}
	opts = append(opts, listing.WithMode(mode), listing.WithOnChange(lv.poke))
	lv.p = listing.New(fetch, opts...)
	lv.p.Start()
	return lv
}

func (l *listView[T]) poke() {
	select {
	case l.changed <- struct{}{}:
	default:
	}
}

func (l *listView[T]) search(term string) { l.p.SetSearch(term) }
func (l *listView[T]) next() bool         { return l.p.NextPage() }
func (l *listView[T]) prev() bool         { return l.p.PrevPage() }
func (l *listView[T]) page(n int)         { l.p.SetPage(n) }
func (l *listView[T]) limit(n int)        { l.p.SetLimit(n) }
func (l *listView[T]) more() bool         { return l.p.LoadMore() }
func (l *listView[T]) refresh()           { l.p.Refresh() }
func (l *listView[T]) remove(key string) bool {
	return l.p.Remove(key)
}
func (l *listView[T]) infinite() bool { return l.mode == listing.ModeInfinite }
func (l *listView[T]) close()         { l.p.Close() }

func (l *listView[T]) replace(item T) bool { return l.p.Replace(item) }

func (l *listView[T]) ref(arg string) string {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || len(arg) > 4 {
		return arg
	}
	items := l.p.Snapshot().Items
	if n > len(items) {
		return arg
	}
	return items[n-1].Key()
}

// lookup returns the loaded item with key, if present.
func (l *listView[T]) lookup(key string) (T, bool) {
	for _, it := range l.p.Snapshot().Items {
		if it.Key() == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (l *listView[T]) await(ctx context.Context) string {
	return l.view(l.settle(ctx))
}

func (l *listView[T]) settle(ctx context.Context) listing.Snapshot[T] {
	timer := time.NewTimer(l.wait)
	defer timer.Stop()
	for {
		snap := l.p.Snapshot()
		if settled(snap) {
			return snap
		}
		select {
		case <-l.changed:
		case <-timer.C:
			return l.p.Snapshot()
		case <-ctx.Done():
			return l.p.Snapshot()
		}
	}
}

func settled[T any](s listing.Snapshot[T]) bool {
	return !s.Loading && s.State != listing.StateDebouncing && s.State != listing.StateFetching
}

// userError carries the text shown to the user while keeping the cause.
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

// listFetch adapts a service call for a list pipeline. Authorization
// failures are reported as cancellations because the 401 hook already
// handled them; other failures carry the backend's message.
func listFetch[T any](fetch listing.FetchFunc[T], fallback string) listing.FetchFunc[T] {
	return func(ctx context.Context, q listing.Query) (listing.Result[T], error) {
		res, err := fetch(ctx, q)
		switch {
		case err == nil:
			return res, nil
		case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrCanceled):
			return res, context.Canceled
		default:
			return res, &userError{msg: client.Message(err, fallback), err: err}
		}
	}
}

// Ref maps a row number of the mounted list to the item's id.
func (a *App) Ref(arg string) string {
	if l := a.mounted(); l != nil {
		return l.ref(arg)
	}
	return arg
}

// withList runs fn on the mounted list and redraws it once it settles. fn
// returns false when there is nothing to redraw.
func (a *App) withList(ctx context.Context, fn func(l listController) bool) error {
	l := a.mounted()
	if l == nil {
		a.println("No list is open. Try 'articles', 'drafts' or 'users'.")
		return nil
	}
	if fn(l) {
		a.println(l.await(ctx))
	}
	return nil
}

// Search sets the search term; an empty term clears it. The fetch runs once
// the debounce interval has passed.
func (a *App) Search(ctx context.Context, term string) error {
	return a.withList(ctx, func(l listController) bool {
		l.search(term)
		return true
	})
}

func (a *App) NextPage(ctx context.Context) error {
	return a.withList(ctx, func(l listController) bool {
		if l.infinite() {
			a.println("Type 'more' to load more.")
			return false
		}
		if !l.next() {
			a.println("Already on the last page.")
			return false
		}
		return true
	})
}

func (a *App) PrevPage(ctx context.Context) error {
	return a.withList(ctx, func(l listController) bool {
		if l.infinite() || !l.prev() {
			a.println("Already on the first page.")
			return false
		}
		return true
	})
}

func (a *App) GoToPage(ctx context.Context, n int) error {
	return a.withList(ctx, func(l listController) bool {
		if l.infinite() {
			a.println("Type 'more' to load more.")
			return false
		}
		l.page(n)
		return true
	})
}

// SetLimit changes the page size and starts over from the first page.
func (a *App) SetLimit(ctx context.Context, n int) error {
	return a.withList(ctx, func(l listController) bool {
		l.limit(n)
		return true
	})
}

// LoadMore appends the next page of an infinite list.
func (a *App) LoadMore(ctx context.Context) error {
	return a.withList(ctx, func(l listController) bool {
		if !l.infinite() {
			a.println("Type 'next' for the next page.")
			return false
		}
		if !l.more() {
			a.println("Nothing more to load.")
			return false
		}
		return true
	})
}

func (a *App) Refresh(ctx context.Context) error {
	return a.withList(ctx, func(l listController) bool {
		l.refresh()
		return true
	})
}

package listing

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/logging"
)

// Pipeline is one list instance. All methods are safe for concurrent use.
type Pipeline[T Keyed] struct {
	fetch FetchFunc[T]
	opts  options

	ctx    context.Context
	stop   context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool

	state       State
	query       Query
	searchInput string
	items       []T
	index       map[string]struct{}
	removed     map[string]struct{}
	total       int
	totalKnown  bool
	hasMore     bool
	err         error
	loadedOnce  bool

	// gen is bumped for every issued fetch; only the latest may apply.
	gen      uint64
	inFlight context.CancelFunc
	// pageMove marks the next issued fetch as a page move; if it fails the
	// query falls back to loadedPage.
	pageMove   bool
	loadedPage int

	timer         *time.Timer
	debounceSeq   uint64
	searchPending bool
}

// change is what a locked section hands to emit once the lock is released.
type change struct {
	notify string
}

func New[T Keyed](fetch FetchFunc[T], opts ...Option) *Pipeline[T] {
	o := options{
		mode:     ModePaged,
		debounce: DefaultDebounce,
		limit:    DefaultLimit,
		log:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Pipeline[T]{
		fetch:   fetch,
		opts:    o,
		ctx:     ctx,
		stop:    stop,
		query:   Query{Page: 1, Limit: o.limit, Status: o.status},
		index:   map[string]struct{}{},
		removed: map[string]struct{}{},
	}
}

// Start issues the initial fetch. Calling it again is a no-op.
func (p *Pipeline[T]) Start() {
	p.mu.Lock()
	if p.closed || p.state != StateIdle || p.gen != 0 {
		p.mu.Unlock()
		return
	}
	p.issueLocked()
	p.mu.Unlock()
	p.emit(change{})
}

// SetSearch records a keystroke. The term is committed and fetched only after
// the debounce interval passes with no further calls.
func (p *Pipeline[T]) SetSearch(term string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.searchInput = term
	if p.timer != nil {
		p.timer.Stop()
	}
	p.debounceSeq++
	seq := p.debounceSeq
	p.searchPending = true
	p.state = StateDebouncing
	p.timer = time.AfterFunc(p.opts.debounce, func() { p.commitSearch(seq) })
	p.mu.Unlock()
	p.emit(change{})
}

func (p *Pipeline[T]) commitSearch(seq uint64) {
	p.mu.Lock()
	if p.closed || seq != p.debounceSeq {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.searchPending = false
	p.query.Search = p.searchInput
	p.query.Page = 1
	p.resetLocked()
	p.issueLocked()
	p.mu.Unlock()
	p.emit(change{})
}

// SetPage jumps to page n (paged mode).
func (p *Pipeline[T]) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	p.mutate(func() bool {
		p.pageMove = true
		p.query.Page = n
		return true
	})
}

// NextPage advances when another page exists.
func (p *Pipeline[T]) NextPage() bool {
	return p.mutate(func() bool {
		if !p.hasMore {
			return false
		}
		p.pageMove = true
		p.query.Page++
		return true
	})
}

func (p *Pipeline[T]) PrevPage() bool {
	return p.mutate(func() bool {
		if p.query.Page <= 1 {
			return false
		}
		p.pageMove = true
		p.query.Page--
		return true
	})
}

// SetLimit changes the page size and starts over from page 1.
func (p *Pipeline[T]) SetLimit(n int) {
	if n < 1 {
		return
	}
	p.mutate(func() bool {
		p.query.Limit = n
		p.query.Page = 1
		p.resetLocked()
		return true
	})
}

// SetStatus changes the status filter and starts over from page 1.
func (p *Pipeline[T]) SetStatus(s string) {
	p.mutate(func() bool {
		p.query.Status = s
		p.query.Page = 1
		p.resetLocked()
		return true
	})
}

// Refresh drops accumulated state and refetches page 1.
func (p *Pipeline[T]) Refresh() {
	p.mutate(func() bool {
		p.query.Page = 1
		p.resetLocked()
		return true
	})
}

// LoadMore fetches the next page if the list is loaded (or the last fetch
// failed), has more, and no fetch is running. It reports whether a fetch was
// issued.
func (p *Pipeline[T]) LoadMore() bool {
	return p.mutate(func() bool {
		settled := p.state == StateLoaded || (p.state == StateError && p.loadedOnce)
		if !settled || !p.hasMore || p.inFlight != nil {
			return false
		}
		p.pageMove = true
		p.query.Page++
		return true
	})
}

// mutate runs fn under the lock and issues a fetch if it returns true.
func (p *Pipeline[T]) mutate(fn func() bool) bool {
	p.mu.Lock()
	if p.closed || !fn() {
		p.mu.Unlock()
		return false
	}
	p.issueLocked()
	p.mu.Unlock()
	p.emit(change{})
	return true
}

// Remove drops the item with key locally and decrements the total. The key
// stays hidden from later pages until the next reset.
func (p *Pipeline[T]) Remove(key string) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.removed[key] = struct{}{}
	idx := p.indexOf(key)
	if idx < 0 {
		p.mu.Unlock()
		return false
	}
	p.items = append(p.items[:idx:idx], p.items[idx+1:]...)
	delete(p.index, key)
	if p.total > 0 {
		p.total--
	}
	p.mu.Unlock()
	p.emit(change{})
	return true
}

// Replace swaps in an updated copy of an item already in the list.
func (p *Pipeline[T]) Replace(item T) bool {
	p.mu.Lock()
	idx := p.indexOf(item.Key())
	if p.closed || idx < 0 {
		p.mu.Unlock()
		return false
	}
	p.items[idx] = item
	p.mu.Unlock()
	p.emit(change{})
	return true
}

func (p *Pipeline[T]) indexOf(key string) int {
	for i, it := range p.items {
		if it.Key() == key {
			return i
		}
	}
	return -1
}

func (p *Pipeline[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]T, len(p.items))
	copy(items, p.items)
	return Snapshot[T]{
		State:       p.state,
		Query:       p.query,
		SearchInput: p.searchInput,
		Items:       items,
		Total:       p.total,
		TotalKnown:  p.totalKnown,
		Pages:       totalPages(p.total, p.query.Limit),
		HasMore:     p.hasMore,
		Loading:     p.inFlight != nil,
		Err:         p.err,
		Generation:  p.gen,
	}
}

// Close cancels the pending debounce and any running fetch, then waits for
// fetch goroutines to exit. The pipeline is unusable afterwards.
func (p *Pipeline[T]) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.inFlight != nil {
		p.inFlight()
		p.inFlight = nil
	}
	p.stop()
	p.mu.Unlock()

	p.wg.Wait()
}

// resetLocked forgets accumulated pages. In paged mode the current items
// stay visible until the replacement page arrives.
func (p *Pipeline[T]) resetLocked() {
	p.removed = map[string]struct{}{}
	if p.opts.mode == ModeInfinite {
		p.items = nil
		p.index = map[string]struct{}{}
		p.total = 0
		p.totalKnown = false
		p.hasMore = false
	}
}

// issueLocked supersedes whatever is in flight and starts a new fetch.
func (p *Pipeline[T]) issueLocked() {
	if p.inFlight != nil {
		p.inFlight()
	}
	p.gen++
	gen := p.gen
	ctx, cancel := context.WithCancel(p.ctx)
	p.inFlight = cancel
	p.err = nil
	if !p.searchPending {
		p.state = StateFetching
	}
	q := p.query
	move := p.pageMove
	p.pageMove = false

	p.wg.Add(1)
	go p.run(ctx, cancel, gen, q, move)
}

func (p *Pipeline[T]) run(ctx context.Context, cancel context.CancelFunc, gen uint64, q Query, move bool) {
	defer p.wg.Done()
	defer cancel()

	res, err := p.fetch(ctx, q)

	p.mu.Lock()
	if p.closed || gen != p.gen {
		p.mu.Unlock()
		p.opts.log.Debug(ctx, "list fetch superseded", "generation", gen, "page", q.Page)
		return
	}
	p.inFlight = nil

	var ch change
	switch {
	case err != nil && (errors.Is(err, context.Canceled) || ctx.Err() != nil):
		p.state = p.settledState()
		p.opts.log.Debug(ctx, "list fetch canceled", "generation", gen)
	case err != nil:
		if move && p.loadedOnce {
			p.query.Page = p.loadedPage
		}
		p.state = StateError
		p.err = err
		ch.notify = err.Error()
		p.opts.log.Warn(ctx, "list fetch failed", "generation", gen, "page", q.Page, "error", err)
	default:
		p.applyLocked(q, res)
		p.loadedOnce = true
		p.loadedPage = q.Page
		p.state = p.settledState()
	}
	p.mu.Unlock()
	p.emit(ch)
}

func (p *Pipeline[T]) settledState() State {
	switch {
	case p.searchPending:
		return StateDebouncing
	case p.loadedOnce:
		return StateLoaded
	default:
		return StateIdle
	}
}

func (p *Pipeline[T]) applyLocked(q Query, res Result[T]) {
	fresh := make([]T, 0, len(res.Items))
	for _, it := range res.Items {
		if _, gone := p.removed[it.Key()]; gone {
			continue
		}
		fresh = append(fresh, it)
	}

	if p.opts.mode == ModePaged {
		p.items = make([]T, 0, len(fresh))
		p.index = map[string]struct{}{}
		for _, it := range fresh {
			if _, dup := p.index[it.Key()]; dup {
				continue
			}
			p.index[it.Key()] = struct{}{}
			p.items = append(p.items, it)
		}
		if res.TotalKnown {
			p.total, p.totalKnown = res.Total, true
			p.hasMore = q.Page < totalPages(res.Total, q.Limit)
		} else {
			p.total, p.totalKnown = len(p.items), false
			p.hasMore = len(res.Items) == q.Limit
		}
		return
	}

	for _, it := range fresh {
		if _, dup := p.index[it.Key()]; dup {
			continue
		}
		p.index[it.Key()] = struct{}{}
		p.items = append(p.items, it)
	}
	if res.TotalKnown {
		p.total, p.totalKnown = res.Total, true
		p.hasMore = q.Page*q.Limit < res.Total
	} else {
		p.total = len(p.items)
		p.hasMore = len(res.Items) == q.Limit
	}
}

func (p *Pipeline[T]) emit(ch change) {
	if ch.notify != "" && p.opts.notifier != nil {
		p.opts.notifier.Error(ch.notify)
	}
	if p.opts.onChange != nil {
		p.opts.onChange()
	}
}

package search

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/dmitrijs2005/techblog/internal/client/models"
	"github.com/dmitrijs2005/techblog/internal/logging"
)

const DefaultDebounce = 500 * time.Millisecond

type Options struct {
	// Debounce is the quiet period before a term/category/sort change is
	// sent. Zero means DefaultDebounce.
	Debounce time.Duration
	// Limit is the page size sent with every request; zero lets the server
	// choose.
	Limit int
	// RequireTerm makes a blank term clear the results instead of
	// listing everything (search page behaviour).
	RequireTerm        bool
	IncludeUnpublished bool
	Initial            *Query

	Scheduler Scheduler
	Logger    logging.Logger
	// Context is the parent of every request context. Defaults to
	// context.Background.
	Context context.Context

	// OnChange is called outside the controller's lock from whichever
	// goroutine made the change, so two calls can overlap or arrive out of
	// order. Compare State.Version, or wrap the callback in LatestOnly.
	OnChange     func(State)
	OnURLChange  func(url.Values)
	OnPageChange func(page int)
}

// Controller owns one view's query and its results.
type Controller struct {
	lister    Lister
	opts      Options
	log       logging.Logger
	ctx       context.Context
	debouncer *Debouncer

	mu    sync.Mutex
	state State
	seq   uint64

	wg sync.WaitGroup
}

func NewController(lister Lister, opts Options) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	q := DefaultQuery()
	if opts.Initial != nil {
		q = *opts.Initial
		q.Category = normalizeCategory(q.Category)
		q.Sort = ParseSort(string(q.Sort))
		if q.Page < 1 {
			q.Page = 1
		}
	}

	return &Controller{
		lister:    lister,
		opts:      opts,
		log:       opts.Logger.With("component", "search"),
		ctx:       opts.Context,
		debouncer: NewDebouncer(opts.Scheduler, opts.Debounce),
		state:     State{Query: q},
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Query
}

// Values returns the current query as URL parameters.
func (c *Controller) Values() url.Values {
	return c.Query().Values()
}

// SetTerm changes the free-text term and resets to page 1.
func (c *Controller) SetTerm(term string) {
	c.change(func(q *Query) { q.Term = term })
}

// SetCategory changes the category filter; blank means all categories.
func (c *Controller) SetCategory(category string) {
	c.change(func(q *Query) { q.Category = normalizeCategory(category) })
}

// SetSort changes the sort order; unknown values mean SortLatest.
func (c *Controller) SetSort(sort string) {
	c.change(func(q *Query) { q.Sort = ParseSort(sort) })
}

func (c *Controller) change(apply func(*Query)) {
	c.mu.Lock()
	apply(&c.state.Query)
	c.state.Query.Page = 1

	if c.opts.RequireTerm && c.state.Query.Blank() {
		c.cancelLocked()
		c.clearLocked()
	} else {
		if !c.debouncer.Trigger(c.fire) {
			c.wg.Add(1)
		}
		c.state.Phase = PhaseDebouncing
	}
	st := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(st)
	c.notifyURL(st.Query)
}

// SetPage moves to page n without debouncing. Pages below 1 are ignored;
// pages past the end are sent as they are.
func (c *Controller) SetPage(n int) {
	if n < 1 {
		return
	}
	c.mu.Lock()
	c.state.Query.Page = n
	c.cancelLocked()
	st, issued := c.resolveLocked()
	c.mu.Unlock()

	c.notify(st)
	c.notifyURL(st.Query)
	if c.opts.OnPageChange != nil {
		c.opts.OnPageChange(n)
	}
	if issued != nil {
		go issued()
	}
}

// Refresh re-sends the current query immediately.
func (c *Controller) Refresh() {
	c.mu.Lock()
	c.cancelLocked()
	st, issued := c.resolveLocked()
	c.mu.Unlock()

	c.notify(st)
	if issued != nil {
		go issued()
	}
}

// Hydrate loads a query from URL parameters and resolves it immediately.
func (c *Controller) Hydrate(v url.Values) {
	c.mu.Lock()
	c.state.Query = QueryFromValues(v)
	c.cancelLocked()
	st, issued := c.resolveLocked()
	c.mu.Unlock()

	c.notify(st)
	if issued != nil {
		go issued()
	}
}

// Wait blocks until no request is scheduled or in flight.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close drops a scheduled request. Requests already sent still complete
// but their results are discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	c.cancelLocked()
	c.seq++
	c.mu.Unlock()
}

// fire runs when the debounce delay elapses.
func (c *Controller) fire() {
	c.mu.Lock()
	st, issued := c.resolveLocked()
	c.mu.Unlock()
	c.wg.Done()

	c.notify(st)
	if issued != nil {
		go issued()
	}
}

// resolveLocked tags a request for the current query and returns the
// function that performs it. With RequireTerm and a blank term the results
// are cleared instead and no request is made.
func (c *Controller) resolveLocked() (State, func()) {
	if c.opts.RequireTerm && c.state.Query.Blank() {
		c.clearLocked()
		return c.snapshotLocked(), nil
	}

	c.seq++
	seq := c.seq
	q := c.state.Query
	c.state.Phase = PhaseResolving
	c.wg.Add(1)

	return c.snapshotLocked(), func() {
		defer c.wg.Done()
		c.run(seq, q)
	}
}

func (c *Controller) run(seq uint64, q Query) {
	params := q.Params(c.opts.Limit, c.opts.IncludeUnpublished)
	c.log.Debug(c.ctx, "list request", "seq", seq, "term", params.Search, "category", q.Category, "sort", q.Sort, "page", q.Page)

	list, err := c.lister.List(c.ctx, params)

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.log.Debug(c.ctx, "discarding stale list response", "seq", seq, "current", c.latestSeq())
		return
	}
	c.state.Searched = true
	if err != nil {
		c.state.Phase = PhaseFailed
		c.state.Results = models.PostList{}
		c.state.Err = err
	} else {
		c.state.Phase = PhaseResolved
		c.state.Err = nil
		c.state.Results = models.PostList{}
		if list != nil {
			c.state.Results = *list
		}
	}
	st := c.snapshotLocked()
	c.mu.Unlock()

	if err != nil {
		c.log.Warn(c.ctx, "list request failed", "seq", seq, "error", err)
	}
	c.notify(st)
}

func (c *Controller) latestSeq() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// snapshotLocked stamps the state with the next version and returns a copy
// for notification.
func (c *Controller) snapshotLocked() State {
	c.state.Version++
	return c.state
}

// cancelLocked drops a scheduled (not yet sent) request.
func (c *Controller) cancelLocked() {
	if c.debouncer.Cancel() {
		c.wg.Done()
	}
}

// clearLocked empties the results and invalidates requests in flight.
func (c *Controller) clearLocked() {
	c.seq++
	c.state.Phase = PhaseIdle
	c.state.Results = models.PostList{}
	c.state.Err = nil
	c.state.Searched = false
}

func (c *Controller) notify(st State) {
	if c.opts.OnChange != nil {
		c.opts.OnChange(st)
	}
}

// LatestOnly wraps an OnChange callback so that calls are serialized and a
// state older than one already delivered is dropped. fn runs under a lock
// and must not call back into the controller.
func LatestOnly(fn func(State)) func(State) {
	var (
		mu   sync.Mutex
		last uint64
	)
	return func(st State) {
		mu.Lock()
		defer mu.Unlock()
		if st.Version <= last {
			return
		}
		last = st.Version
		fn(st)
	}
}

func (c *Controller) notifyURL(q Query) {
	if c.opts.OnURLChange != nil {
		c.opts.OnURLChange(q.Values())
	}
}

// Summary is a one-line description of the current page, e.g.
// "page 2 of 5 (48 posts)".
func (s State) Summary() string {
	p := s.Results.Pagination
	noun := "posts"
	if p.TotalPosts == 1 {
		noun = "post"
	}
	if p.TotalPages > 0 {
		return fmt.Sprintf("page %d of %d (%d %s)", s.Query.Page, p.TotalPages, p.TotalPosts, noun)
	}
	return fmt.Sprintf("page %d (%d %s)", s.Query.Page, p.TotalPosts, noun)
}

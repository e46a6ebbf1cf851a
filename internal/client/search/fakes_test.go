package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/techblog/internal/client/models"
)

// manualScheduler never fires on its own; tests call FireAll.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return &manualHandle{s: s, t: t}
}

type manualHandle struct {
	s *manualScheduler
	t *manualTimer
}

func (h *manualHandle) Stop() bool {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	active := !h.t.stopped && !h.t.fired
	h.t.stopped = true
	return active
}

// Active counts timers that are neither stopped nor fired.
func (s *manualScheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// FireAll runs every active timer, as if its delay had elapsed.
func (s *manualScheduler) FireAll() {
	s.mu.Lock()
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

type listReply struct {
	list *models.PostList
	err  error
}

type pendingCall struct {
	params models.ListParams
	reply  chan listReply
}

// blockingLister hands every request to the test, which answers it with
// respond; answers can be given in any order.
type blockingLister struct {
	calls chan *pendingCall

	mu   sync.Mutex
	seen []models.ListParams
}

func newBlockingLister() *blockingLister {
	return &blockingLister{calls: make(chan *pendingCall, 16)}
}

func (l *blockingLister) List(_ context.Context, p models.ListParams) (*models.PostList, error) {
	l.mu.Lock()
	l.seen = append(l.seen, p)
	l.mu.Unlock()

	c := &pendingCall{params: p, reply: make(chan listReply, 1)}
	l.calls <- c
	r := <-c.reply
	return r.list, r.err
}

func (l *blockingLister) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}

func (l *blockingLister) next(t *testing.T) *pendingCall {
	t.Helper()
	select {
	case c := <-l.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("expected a list request")
		return nil
	}
}

func (c *pendingCall) respond(list *models.PostList, err error) {
	c.reply <- listReply{list: list, err: err}
}

// page builds a one-post result labelled by title.
func page(title string, current, total int) *models.PostList {
	return &models.PostList{
		Posts: []models.Post{{ID: title, Title: title}},
		Pagination: models.Pagination{
			CurrentPage: current,
			TotalPages:  total,
			TotalPosts:  total,
			HasPrevPage: current > 1,
			HasNextPage: current < total,
		},
	}
}

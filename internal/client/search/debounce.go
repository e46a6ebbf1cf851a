package search

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer the debouncer needs.
type Timer interface {
	Stop() bool
}

// Scheduler runs f after d. The default uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer coalesces triggers: only the last fn passed to Trigger runs,
// once the delay has passed without another Trigger or a Cancel.
type Debouncer struct {
	sched Scheduler
	delay time.Duration

	mu      sync.Mutex
	timer   Timer
	gen     uint64
	pending bool
}

func NewDebouncer(sched Scheduler, delay time.Duration) *Debouncer {
	if sched == nil {
		sched = realScheduler{}
	}
	return &Debouncer{sched: sched, delay: delay}
}

// Trigger schedules fn, dropping any call still pending. It reports
// whether a pending call was dropped.
func (d *Debouncer) Trigger(fn func()) (replaced bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	replaced = d.stopLocked()
	d.pending = true
	gen := d.gen
	d.timer = d.sched.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.gen || !d.pending {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
	return replaced
}

// Cancel drops the pending call, if any, and reports whether there was one.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopLocked()
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) stopLocked() bool {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	was := d.pending
	d.pending = false
	return was
}

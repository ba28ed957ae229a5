// Package debounce coalesces rapid repeated triggers into a single delayed
// callback invocation.
//
// A Debouncer is either idle or pending. Trigger moves it to pending, replacing
// any scheduled invocation with a new one carrying the latest argument. When
// the delay elapses without another trigger the debouncer returns to idle and
// the callback runs once with that argument.
package debounce

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/domkit/internal/logger"
	domerrors "github.com/alexisbeaulieu97/domkit/pkg/errors"
)

// DefaultDelay is the quiet period used by DefaultOptions.
const DefaultDelay = time.Second

// Timer is a cancelable scheduled task.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(d time.Duration, f func()) Timer

// AfterFunc calls fn(d, f).
func (fn SchedulerFunc) AfterFunc(d time.Duration, f func()) Timer {
	return fn(d, f)
}

// TimeScheduler schedules on the runtime timer via time.AfterFunc.
var TimeScheduler Scheduler = SchedulerFunc(func(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
})

// Options configures a Debouncer.
type Options struct {
	Delay     time.Duration
	Scheduler Scheduler
	Logger    *logger.Logger
}

// DefaultOptions returns options with DefaultDelay and the runtime scheduler.
func DefaultOptions() Options {
	return Options{Delay: DefaultDelay, Scheduler: TimeScheduler}
}

// Debouncer delays calls to a callback until triggers stop arriving for the
// configured delay. It is safe for concurrent use.
type Debouncer[T any] struct {
	cb        func(T)
	delay     time.Duration
	scheduler Scheduler
	log       *logger.Logger

	mu      sync.Mutex
	pending Timer
	// gen identifies the most recent trigger. A timer whose generation no
	// longer matches was superseded and must not run the callback.
	gen uint64
}

// New returns a Debouncer for cb. A negative delay or nil callback is rejected.
func New[T any](cb func(T), opts Options) (*Debouncer[T], error) {
	if cb == nil {
		return nil, domerrors.NewInvalidArgumentError("debounce.New", "callback is nil")
	}
	if opts.Delay < 0 {
		return nil, domerrors.NewInvalidArgumentError("debounce.New", "delay %s is negative", opts.Delay)
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = TimeScheduler
	}
	return &Debouncer[T]{
		cb:        cb,
		delay:     opts.Delay,
		scheduler: scheduler,
		log:       opts.Logger,
	}, nil
}

// Func debounces an argument-less callback.
func Func(cb func(), delay time.Duration) (func(), error) {
	if cb == nil {
		return nil, domerrors.NewInvalidArgumentError("debounce.Func", "callback is nil")
	}
	d, err := New(func(struct{}) { cb() }, Options{Delay: delay})
	if err != nil {
		return nil, err
	}
	return func() { d.Trigger(struct{}{}) }, nil
}

// Delay returns the configured quiet period.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

// Trigger cancels any pending invocation and schedules a new one carrying arg.
func (d *Debouncer[T]) Trigger(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
		d.log.Debug("debounce: pending invocation replaced")
	}
	d.gen++
	gen := d.gen
	d.pending = d.scheduler.AfterFunc(d.delay, func() {
		d.fire(gen, arg)
	})
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	d.log.Debug("debounce: invoking callback")
	d.cb(arg)
}

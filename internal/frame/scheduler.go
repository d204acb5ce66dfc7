// Package frame drives simulations one step per display refresh.
//
// A Scheduler hands out frame callbacks and interval timers; a Driver
// uses it to run Update then Render once per frame and to own every timer
// a simulation registers, so tearing a view down cancels all of them.
package frame

import (
	"context"
	"time"
)

// Handle cancels a scheduled frame or timer. Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler is the host's frame and timer primitive.
type Scheduler interface {
	// RequestFrame runs fn once on the next frame.
	RequestFrame(fn func()) Handle
	// Every runs fn each time d elapses until cancelled.
	Every(d time.Duration, fn func()) Handle
	// Pending counts frame requests and timers that are still live.
	Pending() int
}

type task struct {
	fn       func()
	period   time.Duration
	next     time.Duration
	canceled bool
}

func (t *task) Cancel() { t.canceled = true }

// Pump is a Scheduler advanced explicitly by its host. It is not safe
// for concurrent use: everything it runs happens on the goroutine that
// calls Advance.
type Pump struct {
	now    time.Duration
	frames []*task
	timers []*task
}

func NewPump() *Pump {
	return &Pump{}
}

func (p *Pump) RequestFrame(fn func()) Handle {
	t := &task{fn: fn}
	p.frames = append(p.frames, t)
	return t
}

func (p *Pump) Every(d time.Duration, fn func()) Handle {
	if d <= 0 {
		d = time.Millisecond
	}
	t := &task{fn: fn, period: d, next: p.now + d}
	p.timers = append(p.timers, t)
	return t
}

func (p *Pump) Pending() int {
	n := 0
	for _, t := range p.frames {
		if !t.canceled {
			n++
		}
	}
	for _, t := range p.timers {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Elapsed returns the total time advanced so far.
func (p *Pump) Elapsed() time.Duration {
	return p.now
}

// Advance moves the clock forward by dt, fires every timer that came due
// (a timer spanning several periods fires once per period), then runs the
// frame callbacks queued before this call. Frames requested while pumping
// run on the next Advance.
func (p *Pump) Advance(dt time.Duration) {
	p.now += dt

	timers := p.timers
	for _, t := range timers {
		for !t.canceled && t.next <= p.now {
			t.next += t.period
			t.fn()
		}
	}

	frames := p.frames
	p.frames = nil
	for _, t := range frames {
		if t.canceled {
			continue
		}
		t.canceled = true
		t.fn()
	}

	p.compact()
}

// Frame runs queued frame callbacks without advancing time.
func (p *Pump) Frame() {
	p.Advance(0)
}

func (p *Pump) compact() {
	live := p.timers[:0]
	for _, t := range p.timers {
		if !t.canceled {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(p.timers); i++ {
		p.timers[i] = nil
	}
	p.timers = live
}

// Run advances p once per interval until ctx is done. Functions received
// on inbox run on the same goroutine between frames, which is how other
// goroutines (socket readers, input pollers) touch simulation state.
func Run(ctx context.Context, p *Pump, interval time.Duration, inbox <-chan func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn, ok := <-inbox:
			if !ok {
				inbox = nil
				continue
			}
			fn()
		case now := <-ticker.C:
			p.Advance(now.Sub(last))
			last = now
		}
	}
}

// Interval converts a frame rate into a tick interval, defaulting to 60 Hz.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

package content

import (
	"fmt"
	"time"

	"github.com/Zachkp/folio/internal/frame"
)

// JokeEvery is how long each hero joke stays up.
const JokeEvery = 5 * time.Second

// Rotator cycles through a list of lines on a driver timer.
type Rotator struct {
	lines []string
	i     int
	timer *frame.Timer
}

func NewRotator(lines []string) *Rotator {
	return &Rotator{lines: lines}
}

// Start advances the rotator every interval while d is running. Starting
// again replaces the previous timer.
func (r *Rotator) Start(d *frame.Driver, every time.Duration) {
	r.Stop()
	if len(r.lines) < 2 {
		return
	}
	r.timer = d.Every(every, r.Next)
}

func (r *Rotator) Stop() {
	if r.timer != nil {
		r.timer.Cancel()
		r.timer = nil
	}
}

func (r *Rotator) Next() {
	if len(r.lines) > 0 {
		r.i = (r.i + 1) % len(r.lines)
	}
}

func (r *Rotator) Current() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[r.i]
}

// Counter counts from zero up to a target in unit steps spread over a
// duration, then stops its own timer.
type Counter struct {
	target int
	value  int
	suffix string
	timer  *frame.Timer
}

func NewCounter(target int, suffix string) *Counter {
	return &Counter{target: max(target, 0), suffix: suffix}
}

// Start restarts the count from zero on d.
func (c *Counter) Start(d *frame.Driver, over time.Duration) {
	c.Stop()
	c.value = 0
	if c.target == 0 {
		return
	}
	step := max(over/time.Duration(c.target), time.Millisecond)
	c.timer = d.Every(step, c.tick)
}

func (c *Counter) tick() {
	c.value++
	if c.value >= c.target {
		c.value = c.target
		c.Stop()
	}
}

func (c *Counter) Stop() {
	if c.timer != nil {
		c.timer.Cancel()
		c.timer = nil
	}
}

func (c *Counter) Value() int     { return c.value }
func (c *Counter) Done() bool     { return c.value >= c.target }
func (c *Counter) String() string { return fmt.Sprintf("%d%s", c.value, c.suffix) }

package frame

import "time"

// State is the lifecycle of a Driver.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Hooks are the per-frame and teardown callbacks of a simulation.
// Any of them may be nil.
type Hooks struct {
	Update   func()
	Render   func()
	Teardown func()
}

// Timer is a driver-owned interval timer.
type Timer struct {
	d     *Driver
	every time.Duration
	fn    func()
	live  Handle
}

// Cancel stops the timer and removes it from its driver.
func (t *Timer) Cancel() {
	t.disarm()
	t.d.forget(t)
}

func (t *Timer) arm() {
	if t.live == nil {
		t.live = t.d.sched.Every(t.every, t.fn)
	}
}

func (t *Timer) disarm() {
	if t.live != nil {
		t.live.Cancel()
		t.live = nil
	}
}

// Driver runs Update then Render once per frame while Running.
// Every frame request and timer it creates is cancelled on Pause or
// Unmount; timers come back on Resume.
type Driver struct {
	sched  Scheduler
	hooks  Hooks
	state  State
	frame  Handle
	timers []*Timer
	frames uint64
}

func NewDriver(s Scheduler, h Hooks) *Driver {
	return &Driver{sched: s, hooks: h}
}

func (d *Driver) State() State { return d.state }

// Frames counts frames stepped since the last Mount.
func (d *Driver) Frames() uint64 { return d.frames }

// Mount starts ticking. It is a no-op unless the driver is Idle.
func (d *Driver) Mount() {
	if d.state != Idle {
		return
	}
	d.state = Running
	d.frames = 0
	d.armTimers()
	d.request()
}

func (d *Driver) Pause() {
	if d.state != Running {
		return
	}
	d.state = Paused
	d.cancelFrame()
	for _, t := range d.timers {
		t.disarm()
	}
}

func (d *Driver) Resume() {
	if d.state != Paused {
		return
	}
	d.state = Running
	d.armTimers()
	d.request()
}

// Unmount cancels the pending frame and every timer, runs the teardown
// hook and returns to Idle. It is safe to call from any state.
func (d *Driver) Unmount() {
	if d.state == Idle && d.frame == nil && len(d.timers) == 0 {
		return
	}
	d.cancelFrame()
	d.ClearTimers()
	d.state = Idle
	if d.hooks.Teardown != nil {
		d.hooks.Teardown()
	}
}

// Every registers a timer owned by the driver. It fires only while the
// driver is Running.
func (d *Driver) Every(every time.Duration, fn func()) *Timer {
	t := &Timer{d: d, every: every, fn: fn}
	d.timers = append(d.timers, t)
	if d.state == Running {
		t.arm()
	}
	return t
}

// ClearTimers cancels and forgets every driver timer.
func (d *Driver) ClearTimers() {
	for _, t := range d.timers {
		t.disarm()
	}
	d.timers = nil
}

// Timers reports how many timers the driver owns.
func (d *Driver) Timers() int { return len(d.timers) }

// Step runs one Update and Render pass regardless of state.
func (d *Driver) Step() {
	d.frames++
	if d.hooks.Update != nil {
		d.hooks.Update()
	}
	d.Draw()
}

// Draw runs only the Render hook, for hosts that need to repaint a
// paused or ended simulation.
func (d *Driver) Draw() {
	if d.hooks.Render != nil {
		d.hooks.Render()
	}
}

func (d *Driver) tick() {
	d.frame = nil
	if d.state != Running {
		return
	}
	d.Step()
	d.request()
}

func (d *Driver) request() {
	if d.state == Running && d.frame == nil {
		d.frame = d.sched.RequestFrame(d.tick)
	}
}

func (d *Driver) cancelFrame() {
	if d.frame != nil {
		d.frame.Cancel()
		d.frame = nil
	}
}

func (d *Driver) armTimers() {
	for _, t := range d.timers {
		t.arm()
	}
}

func (d *Driver) forget(t *Timer) {
	for i, x := range d.timers {
		if x == t {
			d.timers = append(d.timers[:i], d.timers[i+1:]...)
			return
		}
	}
}

// Package input holds the latest pointer and keyboard activity for a
// simulation. Hosts translate their own events into calls on State; the
// update step only ever reads it.
package input

import "math"

// Key is a DOM-style key name such as "ArrowLeft" or "a".
type Key string

const (
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
	KeyUp     Key = "ArrowUp"
	KeyDown   Key = "ArrowDown"
	KeyEscape Key = "Escape"
	KeySpace  Key = " "
)

// Pointer is the last known pointer position and whether it is engaged
// (mouse button held, touch active, or hovering for ambient scenes).
type Pointer struct {
	X, Y   float64
	Active bool
}

// Valid reports whether the coordinates are finite.
func (p Pointer) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// State is the shared input record. The zero value is ready to use and
// reports an inactive pointer at the canvas origin.
type State struct {
	pointer Pointer
	keys    map[Key]bool
}

// New returns an empty input state.
func New() *State {
	return &State{keys: make(map[Key]bool)}
}

// Pointer returns a copy of the pointer record. Non-finite coordinates
// never escape: they read back as an inactive pointer at the origin.
func (s *State) Pointer() Pointer {
	if !s.pointer.Valid() {
		return Pointer{}
	}
	return s.pointer
}

// Move records a pointer position without changing the active flag.
func (s *State) Move(x, y float64) {
	s.pointer.X, s.pointer.Y = x, y
}

// Press records a position and marks the pointer active.
func (s *State) Press(x, y float64) {
	s.Move(x, y)
	s.pointer.Active = true
}

// Release marks the pointer inactive, keeping the last position.
func (s *State) Release() {
	s.pointer.Active = false
}

// Leave is Release for hosts that report the pointer leaving the surface.
func (s *State) Leave() {
	s.Release()
}

func (s *State) KeyDown(k Key) {
	if s.keys == nil {
		s.keys = make(map[Key]bool)
	}
	s.keys[k] = true
}

func (s *State) KeyUp(k Key) {
	delete(s.keys, k)
}

// Pressed reports whether any of the given keys is held.
func (s *State) Pressed(keys ...Key) bool {
	for _, k := range keys {
		if s.keys[k] {
			return true
		}
	}
	return false
}

// Reset forgets every key and returns the pointer to the origin.
func (s *State) Reset() {
	s.pointer = Pointer{}
	clear(s.keys)
}

// EventType names a raw host input event.
type EventType string

const (
	EventMove    EventType = "move"
	EventDown    EventType = "down"
	EventUp      EventType = "up"
	EventEnter   EventType = "enter"
	EventLeave   EventType = "leave"
	EventKeyDown EventType = "keydown"
	EventKeyUp   EventType = "keyup"
)

// Event is a host-neutral input event. Hosts (terminal, window, socket)
// translate their native events into these.
type Event struct {
	Type EventType `json:"type"`
	X    float64   `json:"x,omitempty"`
	Y    float64   `json:"y,omitempty"`
	Key  Key       `json:"key,omitempty"`
}

// Apply folds ev into the state: buttons and touches drive Active,
// entering the surface only moves the pointer.
func (s *State) Apply(ev Event) {
	switch ev.Type {
	case EventMove, EventEnter:
		s.Move(ev.X, ev.Y)
	case EventDown:
		s.Press(ev.X, ev.Y)
	case EventUp, EventLeave:
		s.Release()
	case EventKeyDown:
		s.KeyDown(ev.Key)
	case EventKeyUp:
		s.KeyUp(ev.Key)
	}
}

// ApplyHover is Apply for ambient surfaces where merely hovering counts
// as an active pointer.
func (s *State) ApplyHover(ev Event) {
	switch ev.Type {
	case EventMove, EventEnter, EventDown:
		s.Press(ev.X, ev.Y)
	case EventUp:
	case EventLeave:
		s.Release()
	default:
		s.Apply(ev)
	}
}

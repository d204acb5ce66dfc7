package input

import (
	"math"
	"testing"
)

func TestStateDefaultsToOrigin(t *testing.T) {
	var s State
	p := s.Pointer()
	if p.X != 0 || p.Y != 0 || p.Active {
		t.Errorf("Expected inactive pointer at origin, got %+v", p)
	}
	if s.Pressed(KeyLeft) {
		t.Error("Expected no keys pressed on zero state")
	}
}

func TestStateLastEventWins(t *testing.T) {
	s := New()
	s.Press(10, 20)
	s.Move(30, 40)

	p := s.Pointer()
	if p.X != 30 || p.Y != 40 || !p.Active {
		t.Errorf("Expected active pointer at (30,40), got %+v", p)
	}

	s.Release()
	if s.Pointer().Active {
		t.Error("Expected pointer inactive after release")
	}
	if got := s.Pointer(); got.X != 30 || got.Y != 40 {
		t.Errorf("Release should keep the last position, got %+v", got)
	}
}

func TestStateRejectsNonFiniteCoordinates(t *testing.T) {
	s := New()
	s.Press(math.NaN(), 5)

	p := s.Pointer()
	if p.Active || p.X != 0 || p.Y != 0 {
		t.Errorf("Expected NaN pointer to read as inactive origin, got %+v", p)
	}

	s.Press(math.Inf(1), 5)
	if s.Pointer().Active {
		t.Error("Expected Inf pointer to read as inactive")
	}
}

func TestStateKeys(t *testing.T) {
	s := New()
	s.KeyDown(KeyLeft)
	s.KeyDown("a")

	if !s.Pressed(KeyRight, KeyLeft) {
		t.Error("Expected ArrowLeft to be reported as pressed")
	}
	s.KeyUp(KeyLeft)
	if s.Pressed(KeyLeft) {
		t.Error("Expected ArrowLeft released")
	}
	if !s.Pressed("a") {
		t.Error("Releasing one key must not affect others")
	}

	s.Reset()
	if s.Pressed("a") {
		t.Error("Expected Reset to clear keys")
	}
}

func TestApply(t *testing.T) {
	s := New()
	s.Apply(Event{Type: EventEnter, X: 3, Y: 4})
	if p := s.Pointer(); p.Active || p.X != 3 {
		t.Errorf("Enter should only move the pointer, got %+v", p)
	}
	s.Apply(Event{Type: EventDown, X: 5, Y: 6})
	if !s.Pointer().Active {
		t.Error("Expected down to activate the pointer")
	}
	s.Apply(Event{Type: EventLeave})
	if s.Pointer().Active {
		t.Error("Expected leave to release the pointer")
	}
	s.Apply(Event{Type: EventKeyDown, Key: "w"})
	if !s.Pressed("w") {
		t.Error("Expected w pressed")
	}
	s.Apply(Event{Type: EventKeyUp, Key: "w"})
	if s.Pressed("w") {
		t.Error("Expected w released")
	}
}

func TestApplyHover(t *testing.T) {
	s := New()
	s.ApplyHover(Event{Type: EventMove, X: 10, Y: 10})
	if !s.Pointer().Active {
		t.Error("Hovering should activate an ambient pointer")
	}
	s.ApplyHover(Event{Type: EventUp})
	if !s.Pointer().Active {
		t.Error("Button release must not end hovering")
	}
	s.ApplyHover(Event{Type: EventLeave})
	if s.Pointer().Active {
		t.Error("Leaving should deactivate the pointer")
	}
}

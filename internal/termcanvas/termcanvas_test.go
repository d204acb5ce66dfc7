package termcanvas

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSizeExcludesHUD(t *testing.T) {
	screen := newScreen(t, 80, 24)
	c := New(screen, 2)
	w, h := c.Size()
	if w != 80*CellW || h != 22*CellH {
		t.Errorf("Expected %dx%d, got %vx%v", 80*CellW, 22*CellH, w, h)
	}
}

func TestCircleAndGlyph(t *testing.T) {
	screen := newScreen(t, 20, 10)
	c := New(screen, 1)
	white := colorful.Color{R: 1, G: 1, B: 1}

	c.Circle(4, 8, 3, white, 1)
	if r, _, _, _ := screen.GetContent(0, 1); r != '•' {
		t.Errorf("Expected a dot below the HUD row, got %q", r)
	}

	c.Glyph(80, 40, "JS", white, 1)
	r1, _, _, _ := screen.GetContent(9, 3)
	r2, _, _, _ := screen.GetContent(10, 3)
	if r1 != 'J' || r2 != 'S' {
		t.Errorf("Expected JS centred at cell 10, got %q%q", r1, r2)
	}

	// off-canvas draws are dropped
	c.Circle(-50, -50, 3, white, 1)
	c.Rect(1000, 1000, 10, 10, white, 1)
}

func TestAlphaDims(t *testing.T) {
	red := particle.MustHex("#ff0000")
	r, _, _ := blend(red, 0.5).RGB()
	full, _, _ := blend(red, 1).RGB()
	if r >= full || r == 0 {
		t.Errorf("Expected half alpha to dim the colour, got %d vs %d", r, full)
	}
}

func TestTranslateMouse(t *testing.T) {
	screen := newScreen(t, 20, 10)
	c := New(screen, 1)

	evs := c.Translate(tcell.NewEventMouse(2, 3, tcell.Button1, 0), false)
	if len(evs) != 1 || evs[0].Type != input.EventDown {
		t.Fatalf("Expected a press, got %+v", evs)
	}
	if evs[0].X != 2*CellW+CellW/2 || evs[0].Y != 2*CellH+CellH/2 {
		t.Errorf("Unexpected pixel position %+v", evs[0])
	}

	evs = c.Translate(tcell.NewEventMouse(2, 3, tcell.ButtonNone, 0), true)
	if evs[0].Type != input.EventUp {
		t.Errorf("Expected a release after a held button, got %+v", evs[0])
	}
	evs = c.Translate(tcell.NewEventMouse(2, 3, tcell.ButtonNone, 0), false)
	if evs[0].Type != input.EventMove {
		t.Errorf("Expected plain motion, got %+v", evs[0])
	}
}

func TestTranslateKeys(t *testing.T) {
	c := New(newScreen(t, 10, 10), 0)
	evs := c.Translate(tcell.NewEventKey(tcell.KeyLeft, 0, 0), false)
	if len(evs) != 1 || evs[0].Key != input.KeyLeft {
		t.Errorf("Expected ArrowLeft, got %+v", evs)
	}
	evs = c.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', 0), false)
	if len(evs) != 1 || evs[0].Key != "a" {
		t.Errorf("Expected a, got %+v", evs)
	}
	if evs := c.Translate(tcell.NewEventKey(tcell.KeyF1, 0, 0), false); evs != nil {
		t.Errorf("Expected F1 to be ignored, got %+v", evs)
	}
}

func TestKeyLatch(t *testing.T) {
	l := NewKeyLatch(100 * time.Millisecond)
	l.Tap(input.KeyLeft, 0)
	l.Tap(input.KeyLeft, 80*time.Millisecond)

	if got := l.Expired(150 * time.Millisecond); len(got) != 0 {
		t.Errorf("Expected a repeating key to stay held, got %v", got)
	}
	got := l.Expired(200 * time.Millisecond)
	if len(got) != 1 || got[0] != input.KeyLeft {
		t.Errorf("Expected ArrowLeft released, got %v", got)
	}
	if got := l.Expired(time.Second); len(got) != 0 {
		t.Errorf("Expected released keys forgotten, got %v", got)
	}
}

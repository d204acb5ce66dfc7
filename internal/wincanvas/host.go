package wincanvas

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Zachkp/folio/internal/cursor"
	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/scene"
)

// Host runs one scene as an ebiten.Game. Ebiten calls Layout, Update
// and Draw from one goroutine, so the scene needs no locking.
type Host struct {
	Scene  scene.Scene
	Pump   *frame.Pump
	Canvas *Canvas
	Cursor *cursor.Follower
	// Hotkey handles keys before the scene sees them; it returns true
	// when it consumed the key. Returning ebiten.Termination quits.
	Hotkey func(k input.Key) (bool, error)
	// HUD lines drawn at the top left.
	HUD func() []string
	// Tick is the simulated time per Update.
	Tick time.Duration

	w, h    int
	mounted bool
	pointer input.State
	seen    bool
	keys    []ebiten.Key
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	h.w, h.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (h *Host) Update() error {
	if h.w <= 0 || h.h <= 0 {
		return nil
	}
	if cw, ch := h.Canvas.Size(); int(cw) != h.w || int(ch) != h.h {
		h.Canvas.Resize(h.w, h.h)
		if h.mounted {
			h.Scene.Resize(float64(h.w), float64(h.h))
		}
	}
	if !h.mounted {
		h.Scene.Mount(float64(h.w), float64(h.h))
		h.mounted = true
	}

	if err := h.keyboard(); err != nil {
		return err
	}
	h.mouse()

	tick := h.Tick
	if tick <= 0 {
		tick = time.Second / time.Duration(ebiten.TPS())
	}
	h.Pump.Advance(tick)
	if h.Cursor != nil {
		h.Cursor.Step(h.pointer.Pointer(), h.seen)
	}
	return nil
}

func (h *Host) keyboard() error {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		key, ok := Key(k)
		if !ok {
			continue
		}
		if h.Hotkey != nil {
			used, err := h.Hotkey(key)
			if err != nil {
				return err
			}
			if used {
				continue
			}
		}
		h.Scene.Handle(input.Event{Type: input.EventKeyDown, Key: key})
	}
	h.keys = inpututil.AppendJustReleasedKeys(h.keys[:0])
	for _, k := range h.keys {
		if key, ok := Key(k); ok {
			h.Scene.Handle(input.Event{Type: input.EventKeyUp, Key: key})
		}
	}
	return nil
}

func (h *Host) mouse() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	inside := cx >= 0 && cy >= 0 && cx < h.w && cy < h.h

	var ev input.Event
	switch {
	case !inside:
		if !h.seen {
			return
		}
		ev = input.Event{Type: input.EventLeave}
		h.seen = false
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ev = input.Event{Type: input.EventDown, X: x, Y: y}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ev = input.Event{Type: input.EventUp, X: x, Y: y}
	case !h.seen:
		ev = input.Event{Type: input.EventEnter, X: x, Y: y}
	default:
		ev = input.Event{Type: input.EventMove, X: x, Y: y}
	}
	if inside {
		h.seen = true
	}
	h.pointer.Apply(ev)
	h.Scene.Handle(ev)
}

func (h *Host) Draw(screen *ebiten.Image) {
	if img := h.Canvas.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if h.Cursor != nil {
		h.Cursor.Draw(&Canvas{img: screen, w: h.w, h: h.h})
	}
	if h.HUD != nil {
		for i, line := range h.HUD() {
			ebitenutil.DebugPrintAt(screen, line, 8, 8+i*glyphH)
		}
	}
}

// Key maps an ebiten key to a DOM-style key name.
func Key(k ebiten.Key) (input.Key, bool) {
	switch k {
	case ebiten.KeyArrowLeft:
		return input.KeyLeft, true
	case ebiten.KeyArrowRight:
		return input.KeyRight, true
	case ebiten.KeyArrowUp:
		return input.KeyUp, true
	case ebiten.KeyArrowDown:
		return input.KeyDown, true
	case ebiten.KeyEscape:
		return input.KeyEscape, true
	case ebiten.KeySpace:
		return input.KeySpace, true
	}
	name := k.String()
	switch {
	case len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z':
		return input.Key(strings.ToLower(name)), true
	case len(name) == 6 && strings.HasPrefix(name, "Digit"):
		return input.Key(name[5:]), true
	}
	return "", false
}

// Package termcanvas paints scenes onto a tcell screen. Scenes work in
// pixels; each terminal cell stands for a CellW×CellH block of them.
package termcanvas

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/input"
)

const (
	CellW = 8
	CellH = 16
)

var background = colorful.Color{}

// Canvas implements scene.Surface on a tcell.Screen.
type Canvas struct {
	screen tcell.Screen
	// Top rows reserved for a HUD.
	top int
}

func New(screen tcell.Screen, hudRows int) *Canvas {
	return &Canvas{screen: screen, top: hudRows}
}

// Size is the drawable area in scene pixels.
func (c *Canvas) Size() (float64, float64) {
	w, h := c.screen.Size()
	h -= c.top
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return float64(w * CellW), float64(h * CellH)
}

func (c *Canvas) Clear() {
	c.screen.Clear()
}

// cell converts scene pixels to a screen cell.
func (c *Canvas) cell(x, y float64) (int, int, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	cx, cy := int(x/CellW), int(y/CellH)
	w, h := c.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy+c.top >= h {
		return 0, 0, false
	}
	return cx, cy + c.top, true
}

func style(col colorful.Color, alpha float64) tcell.Style {
	return tcell.StyleDefault.Foreground(blend(col, alpha)).Background(tcell.ColorBlack)
}

func blend(col colorful.Color, alpha float64) tcell.Color {
	b := background.BlendRgb(col, math.Max(0, math.Min(1, alpha))).Clamped()
	r, g, bl := b.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func (c *Canvas) set(x, y float64, ch rune, st tcell.Style) {
	if cx, cy, ok := c.cell(x, y); ok {
		c.screen.SetContent(cx, cy, ch, nil, st)
	}
}

// Circle fills every cell whose centre lies inside the circle, or just
// the centre cell for small ones.
func (c *Canvas) Circle(x, y, r float64, col colorful.Color, alpha float64) {
	st := style(col, alpha)
	if r < CellW {
		ch := '•'
		if r < 2 {
			ch = '·'
		}
		c.set(x, y, ch, st)
		return
	}
	for py := y - r; py <= y+r; py += CellH {
		for px := x - r; px <= x+r; px += CellW {
			if math.Hypot(px-x, py-y) <= r {
				c.set(px, py, '█', st)
			}
		}
	}
}

// Line steps along the segment one cell at a time.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col colorful.Color, alpha float64) {
	st := style(col, alpha)
	dx, dy := (x2-x1)/CellW, (y2-y1)/CellH
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.set(x1, y1, '·', st)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.set(x1+(x2-x1)*t, y1+(y2-y1)*t, '·', st)
	}
}

// Glyph centres text on the point.
func (c *Canvas) Glyph(x, y float64, text string, col colorful.Color, alpha float64) {
	st := style(col, alpha).Bold(true)
	runes := []rune(text)
	x -= float64(len(runes)) * CellW / 2
	for i, r := range runes {
		c.set(x+float64(i)*CellW+CellW/2, y, r, st)
	}
}

func (c *Canvas) Rect(x, y, w, h float64, col colorful.Color, alpha float64) {
	st := style(col, alpha)
	for py := y; py < y+h; py += CellH {
		for px := x; px < x+w; px += CellW {
			c.set(px+CellW/2, py+CellH/2, '█', st)
		}
	}
}

// HUD writes a line of text into the reserved rows.
func (c *Canvas) HUD(row int, text string, col colorful.Color) {
	if row < 0 || row >= c.top {
		return
	}
	w, _ := c.screen.Size()
	st := style(col, 1)
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		c.screen.SetContent(x, row, r, nil, st)
		x++
	}
}

// Translate turns a tcell event into input events in scene pixels.
// Mouse motion with a button held is a press so drags keep the pointer
// engaged. Unhandled events yield nothing.
func (c *Canvas) Translate(ev tcell.Event, held bool) []input.Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x := float64(cx*CellW + CellW/2)
		y := float64((cy-c.top)*CellH + CellH/2)
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down:
			return []input.Event{{Type: input.EventDown, X: x, Y: y}}
		case held:
			return []input.Event{{Type: input.EventUp, X: x, Y: y}}
		default:
			return []input.Event{{Type: input.EventMove, X: x, Y: y}}
		}
	case *tcell.EventKey:
		if k, ok := key(ev); ok {
			// terminals report no key release, so a press is a tap
			return []input.Event{{Type: input.EventKeyDown, Key: k}}
		}
	}
	return nil
}

func key(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft, true
	case tcell.KeyRight:
		return input.KeyRight, true
	case tcell.KeyUp:
		return input.KeyUp, true
	case tcell.KeyDown:
		return input.KeyDown, true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	case tcell.KeyRune:
		return input.Key(string(ev.Rune())), true
	}
	return "", false
}

// KeyLatch turns the key taps of a terminal into held keys: a key stays
// down until no repeat has arrived for TTL.
type KeyLatch struct {
	TTL  time.Duration
	seen map[input.Key]time.Duration
}

func NewKeyLatch(ttl time.Duration) *KeyLatch {
	return &KeyLatch{TTL: ttl, seen: make(map[input.Key]time.Duration)}
}

func (l *KeyLatch) Tap(k input.Key, now time.Duration) {
	l.seen[k] = now
}

// Expired returns and forgets the keys whose last tap is older than TTL.
func (l *KeyLatch) Expired(now time.Duration) []input.Key {
	var out []input.Key
	for k, at := range l.seen {
		if now-at > l.TTL {
			out = append(out, k)
			delete(l.seen, k)
		}
	}
	return out
}

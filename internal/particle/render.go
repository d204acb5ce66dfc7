package particle

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/input"
)

// Canvas is a 2D drawing surface. Coordinates are canvas pixels, alpha is
// in [0, 1].
type Canvas interface {
	// Size reports the drawable extent; a zero dimension means the
	// surface is not ready and nothing should be drawn.
	Size() (w, h float64)
	Clear()
	Circle(x, y, r float64, c colorful.Color, alpha float64)
	Line(x1, y1, x2, y2 float64, c colorful.Color, alpha float64)
	Glyph(x, y float64, text string, c colorful.Color, alpha float64)
}

const ringSegments = 16

// Render paints the store in slot order. Each particle's links to later
// slots are drawn just before the particle itself.
func Render(c Canvas, s *Store, ptr input.Pointer, mode Mode) {
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	c.Clear()

	cfg := &s.cfg
	for i := range s.slots {
		p := &s.slots[i]
		if cfg.LinkDistance > 0 {
			s.link(c, i)
		}

		alpha := p.Alpha
		if p.MaxLife > 0 {
			alpha *= clamp(p.Life/p.MaxLife, 0, 1)
		}
		if s.noise != nil {
			n := s.noise.Noise2D(float64(i)*0.37, float64(s.frame)*0.02)
			alpha *= 1 - cfg.Twinkle*clamp(0.5+0.5*n, 0, 1)
		}
		c.Circle(p.Pos.X, p.Pos.Y, p.Size, p.Color, alpha)
		if p.Kind != KindNone && p.Size > cfg.GlyphMinSize {
			c.Glyph(p.Pos.X, p.Pos.Y, p.Kind.Glyph(), cfg.Ink, alpha)
		}
	}

	if ptr.Active && ptr.Valid() && cfg.RingRadius > 0 {
		ring(c, ptr.X, ptr.Y, cfg.RingRadius, ringColor(cfg.Palette, mode))
	}
}

// link draws constellation lines from slot i to every later slot in
// range. Closer pairs are more opaque.
func (s *Store) link(c Canvas, i int) {
	cfg := &s.cfg
	a := s.slots[i].Pos
	for j := i + 1; j < len(s.slots); j++ {
		b := s.slots[j].Pos
		d := a.Dist(b)
		if d >= cfg.LinkDistance {
			continue
		}
		c.Line(a.X, a.Y, b.X, b.Y, cfg.LinkColor, LinkAlpha(d, cfg.LinkDistance, cfg.LinkAlpha))
	}
}

// LinkAlpha is the opacity of a link between two particles d apart.
func LinkAlpha(d, maxDist, scale float64) float64 {
	if maxDist <= 0 || d >= maxDist {
		return 0
	}
	return (1 - d/maxDist) * scale
}

func ring(c Canvas, x, y, r float64, col colorful.Color) {
	step := 2 * math.Pi / ringSegments
	for k := 0; k < ringSegments; k++ {
		a0, a1 := float64(k)*step, float64(k+1)*step
		c.Line(x+math.Cos(a0)*r, y+math.Sin(a0)*r, x+math.Cos(a1)*r, y+math.Sin(a1)*r, col, 1)
	}
}

// ringColor picks a palette entry per mode so the pointer ring hints at
// the active mode.
func ringColor(p Palette, mode Mode) colorful.Color {
	if len(p.Colors) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return p.Colors[int(mode)%len(p.Colors)]
}

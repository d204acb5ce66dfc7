// Package wincanvas paints scenes in a desktop window with ebiten.
package wincanvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// debug font cell size
const (
	glyphW = 6
	glyphH = 16
)

// Canvas draws into an offscreen image so scenes can paint from Update;
// the host copies it to the screen in Draw.
type Canvas struct {
	img  *ebiten.Image
	w, h int
}

func New() *Canvas {
	return &Canvas{}
}

// Resize reallocates the backing image when the size changes.
func (c *Canvas) Resize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.w, c.h = w, h
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

func (c *Canvas) Image() *ebiten.Image { return c.img }

func (c *Canvas) Size() (float64, float64) {
	if c.img == nil {
		return 0, 0
	}
	return float64(c.w), float64(c.h)
}

func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Fill(color.Black)
	}
}

func rgba(col colorful.Color, alpha float64) color.Color {
	r, g, b := col.Clamped().RGB255()
	a := max(0, min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

func (c *Canvas) Circle(x, y, r float64, col colorful.Color, alpha float64) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), rgba(col, alpha), true)
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, col colorful.Color, alpha float64) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), 1, rgba(col, alpha), true)
}

// Glyph uses the built-in debug font, which ignores colour.
func (c *Canvas) Glyph(x, y float64, text string, col colorful.Color, alpha float64) {
	if c.img == nil || alpha <= 0 {
		return
	}
	n := len([]rune(text))
	ebitenutil.DebugPrintAt(c.img, text, int(x)-n*glyphW/2, int(y)-glyphH/2)
}

func (c *Canvas) Rect(x, y, w, h float64, col colorful.Color, alpha float64) {
	if c.img == nil {
		return
	}
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), rgba(col, alpha), true)
}

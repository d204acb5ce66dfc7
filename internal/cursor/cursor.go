// Package cursor draws the decorative pointer: a ring that chases the
// real pointer on a spring and leaves a short fading trail.
package cursor

import (
	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

const (
	TrailLength = 10
	Radius      = 16

	frequency = 8.0
	damping   = 0.7
)

type axis struct {
	pos, vel float64
}

// Follower is stepped once per frame alongside a scene.
type Follower struct {
	spring  harmonica.Spring
	x, y    axis
	trail   []particle.Vec
	pressed bool
	visible bool
	Color   colorful.Color
}

func NewFollower(fps int) *Follower {
	if fps <= 0 {
		fps = 60
	}
	return &Follower{
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		trail:  make([]particle.Vec, 0, TrailLength),
		Color:  particle.MustHex("#e11d48"),
	}
}

// Step moves the ring toward the pointer and records the trail. A
// pointer that was never seen keeps the cursor hidden.
func (f *Follower) Step(p input.Pointer, seen bool) {
	if !seen || !p.Valid() {
		f.visible = false
		f.trail = f.trail[:0]
		return
	}
	if !f.visible {
		f.x = axis{pos: p.X}
		f.y = axis{pos: p.Y}
		f.visible = true
	}
	f.pressed = p.Active
	f.x.pos, f.x.vel = f.spring.Update(f.x.pos, f.x.vel, p.X)
	f.y.pos, f.y.vel = f.spring.Update(f.y.pos, f.y.vel, p.Y)

	if len(f.trail) == TrailLength {
		copy(f.trail, f.trail[1:])
		f.trail = f.trail[:TrailLength-1]
	}
	f.trail = append(f.trail, particle.Vec{X: p.X, Y: p.Y})
}

func (f *Follower) Pos() particle.Vec     { return particle.Vec{X: f.x.pos, Y: f.y.pos} }
func (f *Follower) Trail() []particle.Vec { return f.trail }
func (f *Follower) Visible() bool         { return f.visible }

// Draw paints the trail oldest first, then the ring. The ring shrinks
// while the pointer is pressed.
func (f *Follower) Draw(c particle.Canvas) {
	if !f.visible {
		return
	}
	n := len(f.trail)
	for i, t := range f.trail {
		a := float64(i+1) / float64(n+1) * 0.5
		c.Circle(t.X, t.Y, 2+float64(i)/3, f.Color, a)
	}
	r := float64(Radius)
	if f.pressed {
		r *= 0.75
	}
	c.Circle(f.x.pos, f.y.pos, r, f.Color, 0.2)
	c.Circle(f.x.pos, f.y.pos, 3, f.Color, 1)
}

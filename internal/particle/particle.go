// Package particle is the shared canvas particle engine: a fixed-size
// store of particles, the per-frame update step, and a render step that
// paints through a Canvas.
package particle

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Vec is a 2D vector in canvas pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64  { return v.Sub(o).Len() }

// Kind tags a particle or game item with a tech category. It picks the
// glyph drawn on top of the particle.
type Kind uint8

const (
	KindNone Kind = iota
	KindHTML
	KindCSS
	KindJS
	KindReact
	KindDatabase
	KindDesign
	KindVideo
)

// Kinds lists every category a particle can be tagged with.
var Kinds = []Kind{KindHTML, KindCSS, KindJS, KindReact, KindDatabase, KindDesign, KindVideo}

var kindNames = [...]string{"none", "html", "css", "js", "react", "database", "design", "video"}

var kindGlyphs = [...]string{"*", "</>", "#", "JS", "⚛", "□", "◆", "▶"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "none"
}

// Glyph is the short symbol drawn for the kind.
func (k Kind) Glyph() string {
	if int(k) < len(kindGlyphs) {
		return kindGlyphs[k]
	}
	return "*"
}

// Particle is one slot of a Store.
type Particle struct {
	Pos, Vel Vec
	Size     float64
	Color    colorful.Color
	Alpha    float64
	Kind     Kind
	Life     float64
	MaxLife  float64
}

// Mode is how an active pointer pushes particles around.
type Mode int

const (
	Attract Mode = iota
	Repel
	Explode
	Vortex
)

// Modes lists the interaction modes in menu order.
var Modes = []Mode{Attract, Repel, Explode, Vortex}

func (m Mode) String() string {
	switch m {
	case Repel:
		return "repel"
	case Explode:
		return "explode"
	case Vortex:
		return "vortex"
	default:
		return "attract"
	}
}

// ParseMode accepts the lower-case mode names.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return Attract, fmt.Errorf("unknown interaction mode %q", s)
}

// Boundary is what happens when a particle reaches the canvas edge.
type Boundary int

const (
	// Reflect negates the crossing velocity component and clamps.
	Reflect Boundary = iota
	// Wrap moves the particle to the opposite edge.
	Wrap
)

package particle

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds the constants of one simulation usage.
type Config struct {
	Count int

	Friction    float64
	ForceScale  float64
	MaxForce    float64
	MinDistance float64
	// Radius limits pointer interaction; zero means unlimited.
	Radius float64
	// Nudge makes the pointer shift positions directly, falling off
	// linearly to Radius, instead of adding velocity.
	Nudge         bool
	ExplodeRadius float64
	ExplodeSpeed  float64

	InitialSpeed float64
	SizeMin      float64
	SizeMax      float64
	AlphaMin     float64
	AlphaMax     float64

	// MaxLife of zero disables respawning.
	MaxLife   float64
	LifeDecay float64

	Boundary Boundary
	Palette  Palette
	Tagged   bool

	GlyphMinSize float64
	Ink          colorful.Color

	LinkDistance float64
	LinkAlpha    float64
	LinkColor    colorful.Color

	RingRadius float64
	// Twinkle is the amplitude of noise-driven alpha flicker.
	Twinkle float64
}

// Palette is a named list of particle colors.
type Palette struct {
	Name   string
	Colors []colorful.Color
}

var palettes = map[string]Palette{
	"rainbow": newPalette("rainbow", "#ff0000", "#ff7f00", "#ffff00", "#00ff00", "#0000ff", "#4b0082", "#9400d3"),
	"rose":    newPalette("rose", "#3b82f6", "#1d4ed8", "#2563eb", "#1e40af", "#1e3a8a"),
	"cyan":    newPalette("cyan", "#06b6d4", "#0891b2", "#22d3ee", "#155e75", "#083344"),
	"amber":   newPalette("amber", "#f59e0b", "#d97706", "#fbbf24", "#b45309", "#78350f"),
	"sky":     newPalette("sky", "#3b82f6"),
}

// MustHex parses a "#rrggbb" colour and panics on malformed input. It is
// meant for package-level colour constants.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func newPalette(name string, hexes ...string) Palette {
	p := Palette{Name: name}
	for _, h := range hexes {
		p.Colors = append(p.Colors, MustHex(h))
	}
	return p
}

// PaletteByName looks up a palette, falling back to cyan.
func PaletteByName(name string) (Palette, bool) {
	p, ok := palettes[name]
	if !ok {
		return palettes["cyan"], false
	}
	return p, true
}

// PaletteNames returns the palette names in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Toy is the interactive particle field: pointer-driven modes, glyphs,
// lifetimes and reflective edges.
func Toy() Config {
	cyan, _ := PaletteByName("cyan")
	return Config{
		Count:         100,
		Friction:      0.98,
		ForceScale:    100,
		MaxForce:      5,
		MinDistance:   5,
		Radius:        200,
		ExplodeRadius: 100,
		ExplodeSpeed:  5,
		InitialSpeed:  1,
		SizeMin:       2,
		SizeMax:       7,
		AlphaMin:      1,
		AlphaMax:      1,
		MaxLife:       200,
		LifeDecay:     0.5,
		Boundary:      Reflect,
		Palette:       cyan,
		Tagged:        true,
		GlyphMinSize:  3,
		Ink:           colorful.Color{R: 1, G: 1, B: 1},
		RingRadius:    50,
	}
}

// MaxBackgroundCount caps the ambient field; links cost O(n²) per frame.
const MaxBackgroundCount = 150

// Background is the ambient constellation behind the page: slow drift,
// wrap-around edges, links between neighbours and a repelling pointer.
func Background(w, h float64) Config {
	sky, _ := PaletteByName("sky")
	n := min(max(int(min(w, h)/10), 0), MaxBackgroundCount)
	return Config{
		Count:        n,
		Friction:     1,
		ForceScale:   100,
		MaxForce:     2,
		Radius:       150,
		Nudge:        true,
		InitialSpeed: 0.1,
		SizeMin:      1,
		SizeMax:      4,
		AlphaMin:     0.1,
		AlphaMax:     0.4,
		MaxLife:      900,
		LifeDecay:    1,
		Boundary:     Wrap,
		Palette:      sky,
		LinkDistance: 100,
		LinkAlpha:    0.15,
		LinkColor:    MustHex("#e11d48"),
		Twinkle:      0.5,
	}
}

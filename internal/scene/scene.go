// Package scene holds the canvas usages of the site: thin configurations
// over the particle engine or the mini-game, plus the 3D model viewer.
package scene

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/game"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

// Surface is a particle canvas that can also fill rectangles.
type Surface interface {
	particle.Canvas
	Rect(x, y, w, h float64, c colorful.Color, alpha float64)
}

// Scene is one mounted canvas view.
type Scene interface {
	Name() string
	// Mount seeds state for a w×h surface and starts the driver.
	Mount(w, h float64)
	Resize(w, h float64)
	// Unmount stops the driver, cancels every timer and drops state.
	Unmount()
	Handle(ev input.Event)
	// Command applies a named control such as "mode" or "start".
	Command(name, arg string) error
	Driver() *frame.Driver
	// Status is a short line for a HUD.
	Status() string
}

// Options wire a scene to its host.
type Options struct {
	Context   context.Context
	Scheduler frame.Scheduler
	Surface   Surface
	Rand      *rand.Rand
	Scores    game.ScoreKeeper
	// AfterRender runs after each painted frame, e.g. to flush it to a
	// socket.
	AfterRender func()
	OnCollect   func(game.Item)
	// ModelPath is the OBJ file for the 3D viewer.
	ModelPath string
}

func (o *Options) defaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

func (o *Options) flushed() {
	if o.AfterRender != nil {
		o.AfterRender()
	}
}

// Names lists the scenes New can build.
var Names = []string{"background", "particles", "game", "model"}

// New builds a scene by name.
func New(name string, opts Options) (Scene, error) {
	opts.defaults()
	switch name {
	case "background":
		return NewBackground(opts), nil
	case "particles", "toy":
		return NewToy(opts), nil
	case "game":
		if opts.Scores == nil {
			return nil, fmt.Errorf("scene %q needs a score keeper", name)
		}
		return NewGame(opts), nil
	case "model":
		return NewViewer(opts), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

// ErrUnknownCommand is returned for controls a scene does not support.
type ErrUnknownCommand struct {
	Scene, Name string
}

func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("scene %s has no command %q", e.Scene, e.Name)
}

package scene

import (
	"fmt"
	"strconv"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

// Background is the ambient constellation behind the page. Hovering
// pushes particles away.
type Background struct {
	opts   Options
	in     *input.State
	store  *particle.Store
	driver *frame.Driver
}

func NewBackground(opts Options) *Background {
	opts.defaults()
	b := &Background{opts: opts, in: input.New()}
	b.driver = frame.NewDriver(opts.Scheduler, frame.Hooks{
		Update:   b.update,
		Render:   b.render,
		Teardown: b.teardown,
	})
	return b
}

func (b *Background) Name() string          { return "background" }
func (b *Background) Driver() *frame.Driver { return b.driver }

func (b *Background) Mount(w, h float64) {
	b.store = particle.NewStore(particle.Background(w, h), w, h, b.opts.Rand)
	b.driver.Mount()
}

// Resize reseeds the field; the particle count follows the canvas size.
func (b *Background) Resize(w, h float64) {
	if b.store == nil {
		return
	}
	b.store = particle.NewStore(particle.Background(w, h), w, h, b.opts.Rand)
}

func (b *Background) Unmount() { b.driver.Unmount() }

func (b *Background) Handle(ev input.Event) { b.in.ApplyHover(ev) }

func (b *Background) Command(name, arg string) error {
	return &ErrUnknownCommand{Scene: b.Name(), Name: name}
}

func (b *Background) Status() string {
	if b.store == nil {
		return "background"
	}
	return fmt.Sprintf("background · %d particles", b.store.Len())
}

func (b *Background) update() {
	if b.store != nil {
		particle.Step(b.store, b.in.Pointer(), particle.Repel)
	}
}

func (b *Background) render() {
	if b.store == nil {
		return
	}
	particle.Render(b.opts.Surface, b.store, input.Pointer{}, particle.Repel)
	b.opts.flushed()
}

func (b *Background) teardown() {
	b.store = nil
	b.in.Reset()
}

// Toy is the interactive particle playground: hold the pointer down to
// attract, repel, explode or swirl the field.
type Toy struct {
	opts    Options
	in      *input.State
	cfg     particle.Config
	mode    particle.Mode
	store   *particle.Store
	driver  *frame.Driver
	w, h    float64
	mounted bool
}

// Count limits for SetCount.
const (
	MinCount = 10
	MaxCount = 500
)

func NewToy(opts Options) *Toy {
	opts.defaults()
	t := &Toy{opts: opts, in: input.New(), cfg: particle.Toy()}
	t.driver = frame.NewDriver(opts.Scheduler, frame.Hooks{
		Update:   t.update,
		Render:   t.render,
		Teardown: t.teardown,
	})
	return t
}

func (t *Toy) Name() string          { return "particles" }
func (t *Toy) Driver() *frame.Driver { return t.driver }
func (t *Toy) Mode() particle.Mode   { return t.mode }

func (t *Toy) Mount(w, h float64) {
	t.w, t.h = w, h
	t.mounted = true
	t.reseed()
	t.driver.Mount()
}

func (t *Toy) Resize(w, h float64) {
	t.w, t.h = w, h
	if t.mounted {
		t.reseed()
	}
}

func (t *Toy) Unmount() { t.driver.Unmount() }

func (t *Toy) Handle(ev input.Event) { t.in.Apply(ev) }

func (t *Toy) SetMode(m particle.Mode) { t.mode = m }
func (t *Toy) Palette() string         { return t.cfg.Palette.Name }

func (t *Toy) SetPalette(name string) error {
	p, ok := particle.PaletteByName(name)
	if !ok {
		return fmt.Errorf("unknown palette %q", name)
	}
	t.cfg.Palette = p
	if t.mounted {
		t.reseed()
	}
	return nil
}

func (t *Toy) SetCount(n int) {
	t.cfg.Count = max(MinCount, min(MaxCount, n))
	if t.mounted {
		t.reseed()
	}
}

func (t *Toy) Command(name, arg string) error {
	switch name {
	case "mode":
		m, err := particle.ParseMode(arg)
		if err != nil {
			return err
		}
		t.SetMode(m)
	case "palette":
		return t.SetPalette(arg)
	case "count":
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("count: %w", err)
		}
		t.SetCount(n)
	case "reset":
		if t.mounted {
			t.reseed()
		}
	default:
		return &ErrUnknownCommand{Scene: t.Name(), Name: name}
	}
	return nil
}

func (t *Toy) Status() string {
	return fmt.Sprintf("particles · %s · %s · %d", t.mode, t.cfg.Palette.Name, t.cfg.Count)
}

func (t *Toy) reseed() {
	t.store = particle.NewStore(t.cfg, t.w, t.h, t.opts.Rand)
}

func (t *Toy) update() {
	if t.store != nil {
		particle.Step(t.store, t.in.Pointer(), t.mode)
	}
}

func (t *Toy) render() {
	if t.store == nil {
		return
	}
	particle.Render(t.opts.Surface, t.store, t.in.Pointer(), t.mode)
	t.opts.flushed()
}

func (t *Toy) teardown() {
	t.store = nil
	t.mounted = false
	t.in.Reset()
}

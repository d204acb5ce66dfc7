package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/game"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

var (
	playerColor = particle.MustHex("#e11d48")
	inkColor    = colorful.Color{R: 1, G: 1, B: 1}
	itemColors  = map[particle.Kind]colorful.Color{
		particle.KindHTML:     particle.MustHex("#f97316"),
		particle.KindCSS:      particle.MustHex("#3b82f6"),
		particle.KindJS:       particle.MustHex("#eab308"),
		particle.KindReact:    particle.MustHex("#06b6d4"),
		particle.KindDatabase: particle.MustHex("#22c55e"),
		particle.KindDesign:   particle.MustHex("#a855f7"),
		particle.KindVideo:    particle.MustHex("#ef4444"),
	}
)

// Game is the mini-game canvas.
type Game struct {
	opts Options
	in   *input.State
	g    *game.Game
}

func NewGame(opts Options) *Game {
	opts.defaults()
	s := &Game{opts: opts, in: input.New()}
	s.g = game.New(game.Config{
		Context:   opts.Context,
		Scheduler: opts.Scheduler,
		Input:     s.in,
		Scores:    opts.Scores,
		Rand:      opts.Rand,
		Render:    s.render,
		OnCollect: opts.OnCollect,
	})
	return s
}

func (s *Game) Name() string          { return "game" }
func (s *Game) Driver() *frame.Driver { return s.g.Driver() }

// Session exposes the underlying game for hosts that show its state.
func (s *Game) Session() *game.Game { return s.g }

// Mount sizes the play area and paints the start screen. The driver only
// runs once a session is started.
func (s *Game) Mount(w, h float64) {
	s.g.Resize(w, h)
	s.render()
}

func (s *Game) Resize(w, h float64) { s.g.Resize(w, h) }

func (s *Game) Unmount() {
	s.g.Close()
	s.in.Reset()
}

func (s *Game) Handle(ev input.Event) { s.in.Apply(ev) }

func (s *Game) Command(name, arg string) error {
	switch name {
	case "start":
		s.g.Start()
	case "pause":
		s.g.Pause()
	case "resume":
		s.g.Resume()
	case "toggle":
		s.g.TogglePause()
	case "restart":
		s.g.Restart()
	default:
		return &ErrUnknownCommand{Scene: s.Name(), Name: name}
	}
	return nil
}

func (s *Game) Status() string {
	v := s.g.View()
	return fmt.Sprintf("game · %s · score %d · best %d · %ds", v.State, v.Score, v.High, v.TimeLeft)
}

func (s *Game) render() {
	c := s.opts.Surface
	w, h := c.Size()
	if w <= 0 || h <= 0 {
		return
	}
	c.Clear()

	v := s.g.View()
	for _, it := range v.Items {
		r := 15.0
		c.Circle(it.X+r, it.Y+r, r, itemColors[it.Kind], 1)
		c.Glyph(it.X+r, it.Y+r, it.Kind.Glyph(), inkColor, 1)
	}
	if v.State == game.Running || v.State == game.Paused {
		p := v.Player
		c.Rect(p.X, p.Y, p.W, p.H, playerColor, 1)
		c.Glyph(p.X+p.W/2, p.Y+p.H/2, "💻", inkColor, 1)
	}

	c.Glyph(60, 12, fmt.Sprintf("Score %d", v.Score), inkColor, 1)
	c.Glyph(w/2, 12, fmt.Sprintf("Time %ds", v.TimeLeft), inkColor, 1)
	c.Glyph(w-60, 12, fmt.Sprintf("Best %d", v.High), inkColor, 1)

	switch v.State {
	case game.NotStarted:
		c.Glyph(w/2, h/2, "Collect the tech! Press start", inkColor, 1)
	case game.Paused:
		c.Glyph(w/2, h/2, "Paused", inkColor, 1)
	case game.Ended:
		c.Glyph(w/2, h/2, fmt.Sprintf("Game over! Score %d", v.Score), inkColor, 1)
		if v.Record {
			c.Glyph(w/2, h/2+24, "New high score!", playerColor, 1)
		}
	}
	s.opts.flushed()
}

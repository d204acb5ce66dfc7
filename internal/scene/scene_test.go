package scene

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/game"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

type surface struct {
	w, h                          float64
	clears, circles, lines, rects int
	glyphs                        []string
}

func (s *surface) Size() (float64, float64) { return s.w, s.h }
func (s *surface) Clear()                   { s.clears++ }
func (s *surface) Circle(x, y, r float64, c colorful.Color, a float64) {
	s.circles++
}
func (s *surface) Line(x1, y1, x2, y2 float64, c colorful.Color, a float64) {
	s.lines++
}
func (s *surface) Glyph(x, y float64, text string, c colorful.Color, a float64) {
	s.glyphs = append(s.glyphs, text)
}
func (s *surface) Rect(x, y, w, h float64, c colorful.Color, a float64) {
	s.rects++
}

func (s *surface) hasGlyph(prefix string) bool {
	for _, g := range s.glyphs {
		if strings.HasPrefix(g, prefix) {
			return true
		}
	}
	return false
}

type scores struct{ value int }

func (m *scores) HighScore(ctx context.Context) (int, error) { return m.value, nil }
func (m *scores) SaveHighScore(ctx context.Context, score int) (bool, error) {
	if score <= m.value {
		return false, nil
	}
	m.value = score
	return true, nil
}

func options(pump *frame.Pump, surf *surface) Options {
	return Options{
		Scheduler: pump,
		Surface:   surf,
		Rand:      rand.New(rand.NewPCG(3, 5)),
		Scores:    &scores{},
	}
}

func TestNew(t *testing.T) {
	pump := frame.NewPump()
	for _, name := range Names {
		s, err := New(name, options(pump, &surface{}))
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Expected scene %q, got %q", name, s.Name())
		}
	}

	if _, err := New("nope", options(pump, &surface{})); err == nil {
		t.Error("Expected an error for an unknown scene")
	}

	opts := options(pump, &surface{})
	opts.Scores = nil
	if _, err := New("game", opts); err == nil {
		t.Error("Expected game scene to require a score keeper")
	}
}

func TestBackgroundLifecycle(t *testing.T) {
	pump := frame.NewPump()
	surf := &surface{w: 800, h: 600}
	flushes := 0
	opts := options(pump, surf)
	opts.AfterRender = func() { flushes++ }

	b := NewBackground(opts)
	b.Mount(800, 600)
	if got := b.store.Len(); got != 60 {
		t.Errorf("Expected min(w,h)/10 = 60 particles, got %d", got)
	}

	for i := 0; i < 5; i++ {
		pump.Frame()
	}
	if surf.clears != 5 || flushes != 5 {
		t.Errorf("Expected 5 painted frames, got clears=%d flushes=%d", surf.clears, flushes)
	}
	if surf.circles != 5*60 {
		t.Errorf("Expected %d circles, got %d", 5*60, surf.circles)
	}

	b.Resize(300, 200)
	if got := b.store.Len(); got != 20 {
		t.Errorf("Expected 20 particles after resize, got %d", got)
	}

	b.Unmount()
	if pump.Pending() != 0 {
		t.Errorf("Expected nothing pending after unmount, got %d", pump.Pending())
	}
	if b.store != nil {
		t.Error("Expected store dropped on unmount")
	}
	if err := b.Command("mode", "attract"); err == nil {
		t.Error("Background takes no commands")
	}
}

func TestBackgroundCountIsCapped(t *testing.T) {
	pump := frame.NewPump()
	b := NewBackground(options(pump, &surface{w: 40000, h: 40000}))
	b.Mount(40000, 40000)
	if got := b.store.Len(); got > particle.MaxBackgroundCount {
		t.Errorf("Expected at most %d particles, got %d", particle.MaxBackgroundCount, got)
	}
	b.Resize(20000, 30000)
	if got := b.store.Len(); got > particle.MaxBackgroundCount {
		t.Errorf("Expected at most %d particles after resize, got %d", particle.MaxBackgroundCount, got)
	}
	b.Unmount()
}

func TestBackgroundHoverRepels(t *testing.T) {
	pump := frame.NewPump()
	b := NewBackground(options(pump, &surface{w: 400, h: 400}))
	b.Mount(400, 400)

	p := b.store.At(0)
	p.Pos = particle.Vec{X: 210, Y: 200}
	p.Vel = particle.Vec{}
	b.store.Set(0, p)

	b.Handle(input.Event{Type: input.EventMove, X: 200, Y: 200})
	pump.Frame()

	if got := b.store.At(0); got.Pos.X <= 210 {
		t.Errorf("Expected particle pushed away from the pointer, got x=%v", got.Pos.X)
	}
	b.Unmount()
}

func TestToyCommands(t *testing.T) {
	pump := frame.NewPump()
	toy := NewToy(options(pump, &surface{w: 500, h: 500}))
	toy.Mount(500, 500)
	defer toy.Unmount()

	if err := toy.Command("mode", "vortex"); err != nil {
		t.Fatalf("mode: %v", err)
	}
	if toy.Mode() != particle.Vortex {
		t.Errorf("Expected vortex, got %s", toy.Mode())
	}
	if err := toy.Command("mode", "spin"); err == nil {
		t.Error("Expected error for unknown mode")
	}

	if err := toy.Command("palette", "amber"); err != nil {
		t.Fatalf("palette: %v", err)
	}
	if err := toy.Command("palette", "plaid"); err == nil {
		t.Error("Expected error for unknown palette")
	}

	if err := toy.Command("count", "9000"); err != nil {
		t.Fatalf("count: %v", err)
	}
	if toy.store.Len() != MaxCount {
		t.Errorf("Expected count clamped to %d, got %d", MaxCount, toy.store.Len())
	}
	toy.SetCount(1)
	if toy.store.Len() != MinCount {
		t.Errorf("Expected count clamped to %d, got %d", MinCount, toy.store.Len())
	}
	if err := toy.Command("count", "many"); err == nil {
		t.Error("Expected error for a non-numeric count")
	}

	var unknown *ErrUnknownCommand
	if err := toy.Command("fly", ""); !errors.As(err, &unknown) {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}
	if !strings.Contains(toy.Status(), "amber") {
		t.Errorf("Expected status to name the palette, got %q", toy.Status())
	}
}

func TestToyPointerRing(t *testing.T) {
	pump := frame.NewPump()
	surf := &surface{w: 300, h: 300}
	toy := NewToy(options(pump, surf))
	toy.Mount(300, 300)

	pump.Frame()
	if surf.lines != 0 {
		t.Errorf("Expected no ring without a pressed pointer, got %d lines", surf.lines)
	}

	toy.Handle(input.Event{Type: input.EventDown, X: 150, Y: 150})
	pump.Frame()
	if surf.lines == 0 {
		t.Error("Expected a ring while the pointer is held")
	}

	toy.Unmount()
	if pump.Pending() != 0 {
		t.Errorf("Expected nothing pending after unmount, got %d", pump.Pending())
	}
}

func TestGameScene(t *testing.T) {
	pump := frame.NewPump()
	surf := &surface{w: 600, h: 400}
	s := NewGame(options(pump, surf))
	s.Mount(600, 400)

	if !surf.hasGlyph("Collect the tech") {
		t.Errorf("Expected start screen, got %v", surf.glyphs)
	}
	if s.Driver().State() != frame.Idle {
		t.Error("Game driver must stay idle until started")
	}

	if err := s.Command("start", ""); err != nil {
		t.Fatal(err)
	}
	if s.Session().State() != game.Running {
		t.Fatalf("Expected running, got %s", s.Session().State())
	}
	pump.Frame()
	if surf.rects == 0 {
		t.Error("Expected the player box drawn while running")
	}

	surf.glyphs = nil
	if err := s.Command("toggle", ""); err != nil {
		t.Fatal(err)
	}
	if !surf.hasGlyph("Paused") {
		t.Errorf("Expected paused banner, got %v", surf.glyphs)
	}
	if err := s.Command("jump", ""); err == nil {
		t.Error("Expected error for unknown command")
	}

	s.Unmount()
	if pump.Pending() != 0 {
		t.Errorf("Expected nothing pending after unmount, got %d", pump.Pending())
	}
}

const cubeOBJ = `o cube
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 2 3 4
f 5 6 7 8
f 1 2 6 5
f 2 3 7 6
f 3 4 8 7
f 4 1 5 8
`

func writeModel(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cube.obj")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write model: %v", err)
	}
	return path
}

func TestViewerDrawsWireframe(t *testing.T) {
	pump := frame.NewPump()
	surf := &surface{w: 400, h: 300}
	opts := options(pump, surf)
	opts.ModelPath = writeModel(t, cubeOBJ)

	v := NewViewer(opts)
	v.Mount(400, 300)
	if v.Err() != nil {
		t.Fatalf("Mount failed to load: %v", v.Err())
	}
	pump.Frame()
	if surf.lines != 12 {
		t.Errorf("Expected 12 cube edges drawn, got %d", surf.lines)
	}
	if !strings.Contains(v.Status(), "cube") {
		t.Errorf("Expected model name in status, got %q", v.Status())
	}

	yaw := v.yaw
	pump.Frame()
	if v.yaw == yaw {
		t.Error("Expected auto-rotation to turn the model")
	}

	v.Command("rotate", "")
	v.Handle(input.Event{Type: input.EventDown, X: 100, Y: 100})
	pump.Frame()
	yaw = v.yaw
	v.Handle(input.Event{Type: input.EventMove, X: 150, Y: 100})
	pump.Frame()
	if got := v.yaw - yaw; math.Abs(got-50*dragSpeed) > 1e-9 {
		t.Errorf("Expected drag to turn by %v, got %v", 50*dragSpeed, got)
	}

	v.Command("scale", "99")
	if v.scale != MaxScale {
		t.Errorf("Expected scale clamped to %v, got %v", MaxScale, v.scale)
	}
	v.Command("zoom", "out")
	if v.scale != MaxScale-0.5 {
		t.Errorf("Expected zoom out to %v, got %v", MaxScale-0.5, v.scale)
	}
	if err := v.Command("color", "not-a-colour"); err == nil {
		t.Error("Expected bad colour to be rejected")
	}

	v.Unmount()
	if pump.Pending() != 0 {
		t.Errorf("Expected nothing pending after unmount, got %d", pump.Pending())
	}
}

func TestViewerLoadFailure(t *testing.T) {
	pump := frame.NewPump()
	surf := &surface{w: 400, h: 300}
	opts := options(pump, surf)
	opts.ModelPath = filepath.Join(t.TempDir(), "missing.obj")

	v := NewViewer(opts)
	v.Mount(400, 300)
	if v.Err() == nil {
		t.Fatal("Expected a load error")
	}
	if !surf.hasGlyph("Failed to load 3D model") {
		t.Errorf("Expected inline error message, got %v", surf.glyphs)
	}
	if v.Driver().State() != frame.Idle || pump.Pending() != 0 {
		t.Errorf("Expected a halted viewer, got state %s with %d pending", v.Driver().State(), pump.Pending())
	}
	if err := v.Command("zoom", "in"); err == nil {
		t.Error("Expected commands to fail without a model")
	}
	v.Handle(input.Event{Type: input.EventDown, X: 10, Y: 10})
	if !strings.Contains(v.Status(), "failed") {
		t.Errorf("Expected failure in status, got %q", v.Status())
	}

	// other canvases on the same page keep running
	toySurf := &surface{w: 400, h: 300}
	toy := NewToy(options(pump, toySurf))
	toy.Mount(400, 300)
	pump.Frame()
	if toySurf.circles == 0 {
		t.Error("Expected the particle toy to keep painting")
	}
	if surf.lines != 0 {
		t.Errorf("Expected the failed viewer to draw nothing, got %d lines", surf.lines)
	}
	toy.Unmount()
	v.Unmount()
}

func TestViewerBadModelFile(t *testing.T) {
	pump := frame.NewPump()
	surf := &surface{w: 400, h: 300}
	opts := options(pump, surf)
	opts.ModelPath = writeModel(t, "v 0 0\n")

	v := NewViewer(opts)
	v.Mount(400, 300)
	if v.Err() == nil || !surf.hasGlyph("Failed to load 3D model") {
		t.Errorf("Expected a parse failure shown inline, got err=%v glyphs=%v", v.Err(), surf.glyphs)
	}
}

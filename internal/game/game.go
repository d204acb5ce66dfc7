// Package game is the "collect the tech" mini-game: steer a player box
// with the arrow keys or WASD and catch falling items before the clock
// runs out.
package game

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/Zachkp/folio/internal/frame"
	"github.com/Zachkp/folio/internal/input"
	"github.com/Zachkp/folio/internal/particle"
)

// State is where a session is in its lifecycle.
type State int

const (
	NotStarted State = iota
	Running
	Paused
	Ended
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return "not-started"
	}
}

// Points per item kind.
var Points = map[particle.Kind]int{
	particle.KindHTML:     1,
	particle.KindCSS:      1,
	particle.KindJS:       2,
	particle.KindReact:    3,
	particle.KindDatabase: 3,
	particle.KindDesign:   2,
	particle.KindVideo:    2,
}

// Rules are the tunables of a session.
type Rules struct {
	Duration     int // seconds
	InitialItems int
	SpawnBatch   int
	SpawnEvery   time.Duration
	PlayerSize   float64
	PlayerSpeed  float64
	ItemSize     float64
	FallSpeed    float64
}

func DefaultRules() Rules {
	return Rules{
		Duration:     30,
		InitialItems: 10,
		SpawnBatch:   3,
		SpawnEvery:   3 * time.Second,
		PlayerSize:   40,
		PlayerSpeed:  5,
		ItemSize:     30,
		FallSpeed:    1,
	}
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps is a strict AABB test; touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Item is a falling collectible.
type Item struct {
	ID        int
	X, Y      float64
	Kind      particle.Kind
	Collected bool
}

func (it Item) Points() int { return Points[it.Kind] }

// ScoreKeeper persists the best score across sessions.
type ScoreKeeper interface {
	HighScore(ctx context.Context) (int, error)
	// SaveHighScore stores score if it beats the stored value and
	// reports whether it did.
	SaveHighScore(ctx context.Context, score int) (bool, error)
}

// Config wires a Game to its host.
type Config struct {
	// Context bounds score store calls for the life of the view.
	Context   context.Context
	Scheduler frame.Scheduler
	Input     *input.State
	Scores    ScoreKeeper
	Rand      *rand.Rand
	Rules     Rules
	// Render paints the current View; it runs after every frame and
	// after every state change.
	Render    func()
	OnCollect func(Item)
	OnEnd     func(score int, record bool)
}

// View is a read-only snapshot for renderers.
type View struct {
	State    State
	Score    int
	High     int
	TimeLeft int
	Width    float64
	Height   float64
	Player   Rect
	Items    []Item
	Record   bool
}

// Game is one mini-game view. All methods must be called from the
// goroutine that pumps its scheduler.
type Game struct {
	cfg    Config
	rules  Rules
	driver *frame.Driver

	w, h     float64
	state    State
	player   Rect
	items    []Item
	nextID   int
	score    int
	high     int
	timeLeft int
	record   bool
}

func New(cfg Config) *Game {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Input == nil {
		cfg.Input = input.New()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Rules == (Rules{}) {
		cfg.Rules = DefaultRules()
	}
	g := &Game{cfg: cfg, rules: cfg.Rules, timeLeft: cfg.Rules.Duration}
	g.driver = frame.NewDriver(cfg.Scheduler, frame.Hooks{
		Update: g.update,
		Render: g.draw,
	})
	return g
}

func (g *Game) State() State { return g.state }

func (g *Game) Driver() *frame.Driver { return g.driver }

// Resize sets the play area and keeps the player inside it.
func (g *Game) Resize(w, h float64) {
	g.w, g.h = w, h
	g.player.X = clamp(g.player.X, 0, g.w-g.player.W)
	g.player.Y = clamp(g.player.Y, 0, g.h-g.player.H)
}

// Start begins a session from NotStarted, or restarts from Ended.
func (g *Game) Start() {
	switch g.state {
	case Ended:
		g.Reset()
	case NotStarted:
	default:
		return
	}

	size := g.rules.PlayerSize
	g.player = Rect{X: g.w/2 - size/2, Y: g.h - size - 20, W: size, H: size}
	g.Resize(g.w, g.h)
	g.score = 0
	g.record = false
	g.timeLeft = g.rules.Duration
	g.items = g.items[:0]

	if high, err := g.cfg.Scores.HighScore(g.cfg.Context); err != nil {
		log.Printf("Error loading high score: %v", err)
	} else {
		g.high = high
	}

	g.spawn(g.rules.InitialItems)
	g.state = Running
	g.driver.Mount()
	g.driver.Every(time.Second, g.countdown)
	if g.rules.SpawnBatch > 0 {
		g.driver.Every(g.rules.SpawnEvery, func() { g.spawn(g.rules.SpawnBatch) })
	}
	g.draw()
}

func (g *Game) Pause() {
	if g.state != Running {
		return
	}
	g.state = Paused
	g.driver.Pause()
	g.draw()
}

func (g *Game) Resume() {
	if g.state != Paused {
		return
	}
	g.state = Running
	g.driver.Resume()
}

// TogglePause flips between Running and Paused.
func (g *Game) TogglePause() {
	if g.state == Paused {
		g.Resume()
	} else {
		g.Pause()
	}
}

// Reset returns an Ended session to NotStarted.
func (g *Game) Reset() {
	if g.state != Ended {
		return
	}
	g.state = NotStarted
	g.score = 0
	g.record = false
	g.timeLeft = g.rules.Duration
	g.items = nil
}

func (g *Game) Restart() {
	g.Reset()
	g.Start()
}

// Close tears the view down: no frame or timer survives it. An
// unfinished session is abandoned without touching the high score.
func (g *Game) Close() {
	g.driver.Unmount()
	g.items = nil
	if g.state != Ended {
		g.state = NotStarted
	}
}

// View snapshots the session for rendering.
func (g *Game) View() View {
	items := make([]Item, len(g.items))
	copy(items, g.items)
	return View{
		State:    g.state,
		Score:    g.score,
		High:     g.high,
		TimeLeft: g.timeLeft,
		Width:    g.w,
		Height:   g.h,
		Player:   g.player,
		Items:    items,
		Record:   g.record,
	}
}

func (g *Game) end() {
	g.state = Ended
	g.timeLeft = 0
	g.driver.ClearTimers()
	g.driver.Unmount()
	g.items = nil

	if g.score > g.high {
		wrote, err := g.cfg.Scores.SaveHighScore(g.cfg.Context, g.score)
		switch {
		case err != nil:
			// the record still shows for this session
			log.Printf("Error saving high score: %v", err)
			g.high = g.score
			g.record = true
		case wrote:
			g.high = g.score
			g.record = true
		default:
			// another session stored a higher score meanwhile
			if high, err := g.cfg.Scores.HighScore(g.cfg.Context); err != nil {
				log.Printf("Error loading high score: %v", err)
			} else {
				g.high = high
			}
		}
	}
	if g.cfg.OnEnd != nil {
		g.cfg.OnEnd(g.score, g.record)
	}
	g.draw()
}

func (g *Game) countdown() {
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.end()
	}
}

func (g *Game) spawn(n int) {
	size := g.rules.ItemSize
	for i := 0; i < n; i++ {
		g.nextID++
		g.items = append(g.items, Item{
			ID:   g.nextID,
			X:    g.cfg.Rand.Float64() * max(g.w-size, 0),
			Y:    g.cfg.Rand.Float64() * (g.h / 2),
			Kind: particle.Kinds[g.cfg.Rand.IntN(len(particle.Kinds))],
		})
	}
}

func (g *Game) movePlayer() {
	in := g.cfg.Input
	speed := g.rules.PlayerSpeed
	if in.Pressed(input.KeyLeft, "a") {
		g.player.X = max(0, g.player.X-speed)
	}
	if in.Pressed(input.KeyRight, "d") {
		g.player.X = min(g.w-g.player.W, g.player.X+speed)
	}
	if in.Pressed(input.KeyUp, "w") {
		g.player.Y = max(0, g.player.Y-speed)
	}
	if in.Pressed(input.KeyDown, "s") {
		g.player.Y = min(g.h-g.player.H, g.player.Y+speed)
	}
}

// update is the single per-frame step: the player moves, items fall,
// collisions score. Timers only touch the countdown and the item list.
func (g *Game) update() {
	if g.state != Running {
		return
	}
	g.movePlayer()

	size := g.rules.ItemSize
	kept := g.items[:0]
	for _, it := range g.items {
		if it.Collected {
			continue
		}
		it.Y += g.rules.FallSpeed
		if it.Y > g.h {
			continue
		}
		if g.player.Overlaps(Rect{X: it.X, Y: it.Y, W: size, H: size}) {
			it.Collected = true
			g.score += it.Points()
			if g.cfg.OnCollect != nil {
				g.cfg.OnCollect(it)
			}
			continue
		}
		kept = append(kept, it)
	}
	g.items = kept
}

func (g *Game) draw() {
	if g.cfg.Render != nil {
		g.cfg.Render()
	}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(hi, v))
}

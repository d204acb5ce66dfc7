package particle

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
)

// Store is a fixed-capacity arena of particles. Its length is set at
// construction and never changes: expired particles are respawned in
// their slot.
type Store struct {
	cfg   Config
	slots []Particle
	w, h  float64
	rng   *rand.Rand
	noise *perlin.Perlin
	frame uint64
}

// NewStore allocates cfg.Count slots and seeds them across a w×h canvas.
func NewStore(cfg Config, w, h float64, rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	s := &Store{
		cfg:   cfg,
		slots: make([]Particle, cfg.Count),
		rng:   rng,
	}
	if cfg.Twinkle > 0 {
		s.noise = perlin.NewPerlin(2, 2, 3, rng.Int64())
	}
	s.Reset(w, h)
	return s
}

// Reset reseeds every slot for a canvas of the given size.
func (s *Store) Reset(w, h float64) {
	s.w, s.h = max(w, 0), max(h, 0)
	s.frame = 0
	for i := range s.slots {
		s.spawn(&s.slots[i], true)
	}
}

// Len is the fixed number of slots.
func (s *Store) Len() int { return len(s.slots) }

// At returns a copy of slot i.
func (s *Store) At(i int) Particle { return s.slots[i] }

// Set overwrites slot i.
func (s *Store) Set(i int, p Particle) { s.slots[i] = p }

func (s *Store) Bounds() (w, h float64) { return s.w, s.h }

func (s *Store) Config() Config { return s.cfg }

// Frame counts update steps since the last Reset.
func (s *Store) Frame() uint64 { return s.frame }

// spawn reinitialises p with a random position and velocity. Fresh
// particles get a staggered life so they don't all expire together.
func (s *Store) spawn(p *Particle, fresh bool) {
	cfg := &s.cfg
	p.Pos = Vec{s.rng.Float64() * s.w, s.rng.Float64() * s.h}
	p.Vel = Vec{
		(s.rng.Float64() - 0.5) * 2 * cfg.InitialSpeed,
		(s.rng.Float64() - 0.5) * 2 * cfg.InitialSpeed,
	}
	p.Size = cfg.SizeMin + s.rng.Float64()*(cfg.SizeMax-cfg.SizeMin)
	p.Alpha = cfg.AlphaMin + s.rng.Float64()*(cfg.AlphaMax-cfg.AlphaMin)
	if n := len(cfg.Palette.Colors); n > 0 {
		p.Color = cfg.Palette.Colors[s.rng.IntN(n)]
	}
	p.Kind = KindNone
	if cfg.Tagged {
		p.Kind = Kinds[s.rng.IntN(len(Kinds))]
	}
	p.MaxLife = cfg.MaxLife
	p.Life = cfg.MaxLife
	if fresh && cfg.MaxLife > 0 {
		p.Life = cfg.MaxLife/2 + s.rng.Float64()*cfg.MaxLife/2
	}
}

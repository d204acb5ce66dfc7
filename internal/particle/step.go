package particle

import (
	"math"

	"github.com/Zachkp/folio/internal/input"
)

// Step advances every particle by one frame: pointer interaction (only
// while the pointer is active), friction, motion, the boundary policy and
// finally lifetime.
func Step(s *Store, ptr input.Pointer, mode Mode) {
	s.frame++
	active := ptr.Active && ptr.Valid()
	for i := range s.slots {
		p := &s.slots[i]
		if active {
			s.interact(p, ptr, mode)
		}
		p.Vel = p.Vel.Scale(s.cfg.Friction)
		p.Pos = p.Pos.Add(p.Vel)
		s.bound(p)
		s.age(p)
	}
}

func (s *Store) radius(mode Mode) float64 {
	if mode == Explode {
		return s.cfg.ExplodeRadius
	}
	return s.cfg.Radius
}

func (s *Store) interact(p *Particle, ptr input.Pointer, mode Mode) {
	cfg := &s.cfg
	dx, dy := ptr.X-p.Pos.X, ptr.Y-p.Pos.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return
	}
	r := s.radius(mode)
	if r > 0 && d > r {
		return
	}
	ux, uy := dx/d, dy/d

	if cfg.Nudge {
		push := cfg.MaxForce
		if r > 0 {
			push *= (r - d) / r
		}
		if mode == Attract {
			push = -push
		}
		p.Pos.X -= ux * push
		p.Pos.Y -= uy * push
		return
	}

	force := math.Min(cfg.ForceScale/(d*d), cfg.MaxForce)

	switch mode {
	case Attract:
		if d > cfg.MinDistance {
			p.Vel.X += ux * force
			p.Vel.Y += uy * force
		}
	case Repel:
		p.Vel.X -= ux * force
		p.Vel.Y -= uy * force
	case Explode:
		p.Vel.X = -ux * cfg.ExplodeSpeed
		p.Vel.Y = -uy * cfg.ExplodeSpeed
	case Vortex:
		p.Vel.X += uy * force
		p.Vel.Y -= ux * force
	}
}

func (s *Store) bound(p *Particle) {
	switch s.cfg.Boundary {
	case Wrap:
		p.Pos.X = wrap(p.Pos.X, s.w)
		p.Pos.Y = wrap(p.Pos.Y, s.h)
	default:
		if p.Pos.X < 0 || p.Pos.X > s.w {
			p.Vel.X = -p.Vel.X
			p.Pos.X = clamp(p.Pos.X, 0, s.w)
		}
		if p.Pos.Y < 0 || p.Pos.Y > s.h {
			p.Vel.Y = -p.Vel.Y
			p.Pos.Y = clamp(p.Pos.Y, 0, s.h)
		}
	}
}

func (s *Store) age(p *Particle) {
	if p.MaxLife <= 0 {
		return
	}
	p.Life -= s.cfg.LifeDecay
	if p.Life <= 0 {
		s.spawn(p, false)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func wrap(v, extent float64) float64 {
	if extent <= 0 {
		return 0
	}
	if v >= 0 && v <= extent {
		return v
	}
	v = math.Mod(v, extent)
	if v < 0 {
		v += extent
	}
	return v
}

package starfall

import (
	"math"
	"math/rand"

	"github.com/faiface/pixel"
)

// Particle is one ambient star.
type Particle struct {
	Pos   pixel.Vec
	Vel   pixel.Vec
	Size  float64
	Alpha float64
}

// ParticleSystem is the ambient starfield. Particles are never created or
// destroyed between resizes, they wrap around the screen edges instead.
type ParticleSystem struct {
	particles []Particle
	width     float64
	height    float64
	cfg       ParticleConfig
	rng       *rand.Rand
}

func NewParticleSystem(width, height float64, rng *rand.Rand, cfg ParticleConfig) *ParticleSystem {
	ps := &ParticleSystem{cfg: cfg, rng: rng}
	ps.Resize(width, height)
	return ps
}

// ParticleCount is min(width*height/areaPerParticle, maxParticles).
func ParticleCount(width, height float64, cfg ParticleConfig) int {
	n := int(width * height / cfg.AreaPerParticle)
	if n > cfg.MaxParticles {
		n = cfg.MaxParticles
	}
	if n < 0 {
		n = 0
	}
	return n
}

// Resize recomputes the pool for a new canvas. Surviving particles keep their
// state, clamped into the new bounds.
func (ps *ParticleSystem) Resize(width, height float64) {
	ps.width, ps.height = width, height

	n := ParticleCount(width, height, ps.cfg)
	if n < len(ps.particles) {
		ps.particles = ps.particles[:n]
	}
	for i := range ps.particles {
		ps.particles[i].Pos = ps.wrap(ps.particles[i].Pos)
	}
	for len(ps.particles) < n {
		ps.particles = append(ps.particles, ps.newParticle())
	}
}

func (ps *ParticleSystem) newParticle() Particle {
	return Particle{
		Pos: pixel.V(ps.rng.Float64()*ps.width, ps.rng.Float64()*ps.height),
		Vel: pixel.V(
			(ps.rng.Float64()-0.5)*ps.cfg.MaxDriftSpeed,
			(ps.rng.Float64()-0.5)*ps.cfg.MaxDriftSpeed,
		),
		Size:  0.5 + ps.rng.Float64()*1.5,
		Alpha: 0.2 + ps.rng.Float64()*0.6,
	}
}

func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles exposes the pool for drawing; callers must not retain it.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Update advances every particle one frame. pointer is only honoured when
// pointerActive is set.
func (ps *ParticleSystem) Update(scale float64, pointer pixel.Vec, pointerActive bool) {
	cfg := ps.cfg
	friction := math.Pow(cfg.Friction, scale)

	for i := range ps.particles {
		p := &ps.particles[i]

		// random walk
		p.Vel.X += (ps.rng.Float64()*2 - 1) * cfg.Drift * scale
		p.Vel.Y += (ps.rng.Float64()*2 - 1) * cfg.Drift * scale

		if pointerActive && cfg.RepulsionRadius > 0 {
			away := p.Pos.Sub(pointer)
			dist := away.Len()
			if dist < cfg.RepulsionRadius && dist > 0 {
				strength := (cfg.RepulsionRadius - dist) / cfg.RepulsionRadius
				p.Vel = p.Vel.Add(away.Unit().Scaled(strength * cfg.RepulsionForce * scale))
			}
		}

		// excess speed from repulsion bleeds off, ambient drift stays
		if speed := p.Vel.Len(); speed > cfg.MaxDriftSpeed {
			p.Vel = p.Vel.Scaled(friction)
			if p.Vel.Len() < cfg.MaxDriftSpeed {
				p.Vel = p.Vel.Unit().Scaled(cfg.MaxDriftSpeed)
			}
		}

		p.Pos = ps.wrap(p.Pos.Add(p.Vel.Scaled(scale)))
	}
}

func (ps *ParticleSystem) wrap(v pixel.Vec) pixel.Vec {
	if ps.width > 0 {
		v.X = math.Mod(v.X, ps.width)
		if v.X < 0 {
			v.X += ps.width
		}
	}
	if ps.height > 0 {
		v.Y = math.Mod(v.Y, ps.height)
		if v.Y < 0 {
			v.Y += ps.height
		}
	}
	return v
}

package starfall

import (
	"math"
	"math/rand"

	"github.com/faiface/pixel"
)

type Spark struct {
	Pos  pixel.Vec
	Vel  pixel.Vec
	Life float64 // 1 when born, expired at 0
}

type Explosion struct {
	Pos    pixel.Vec
	Hue    float64 // [0, 6), see HSVToColor
	Sparks []Spark
	decay  float64
}

func NewExplosion(pos pixel.Vec, rng *rand.Rand, cfg ExplosionConfig) *Explosion {
	e := &Explosion{
		Pos:    pos,
		Hue:    rng.Float64() * 1.2, // reds to yellows
		Sparks: make([]Spark, cfg.Particles),
		decay:  cfg.Decay,
	}
	for i := range e.Sparks {
		angle := rng.Float64() * 2 * math.Pi
		speed := cfg.Speed * (0.25 + rng.Float64()*0.75)
		e.Sparks[i] = Spark{
			Pos:  pos,
			Vel:  pixel.V(math.Cos(angle), math.Sin(angle)).Scaled(speed),
			Life: 1,
		}
	}
	return e
}

func (e *Explosion) Update(scale float64) {
	for i := range e.Sparks {
		s := &e.Sparks[i]
		if s.Life <= 0 {
			continue
		}
		s.Pos = s.Pos.Add(s.Vel.Scaled(scale))
		s.Life -= e.decay * scale
	}
}

// Done reports whether every spark has burnt out.
func (e *Explosion) Done() bool {
	for _, s := range e.Sparks {
		if s.Life > 0 {
			return false
		}
	}
	return true
}

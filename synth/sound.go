// Package synth builds the game's sound effects from oscillators and noise and
// plays them through an audio output once one is available.
package synth

import "time"

// Sound identifies one of the synthesized effects.
type Sound int

const (
	SoundShoot Sound = iota
	SoundExplosion
	SoundAmbience
)

// Sounds lists every effect, in export order.
var Sounds = []Sound{SoundShoot, SoundExplosion, SoundAmbience}

func (s Sound) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplosion:
		return "explosion"
	case SoundAmbience:
		return "ambience"
	default:
		return "unknown"
	}
}

// Effect timings.
const (
	ShootDuration     = 100 * time.Millisecond
	ExplosionDuration = 500 * time.Millisecond
	AmbienceDuration  = 2500 * time.Millisecond

	ambienceAttack = 600 * time.Millisecond
)

// Duration is how long the graph for s plays before it stops itself.
func (s Sound) Duration() time.Duration {
	switch s {
	case SoundShoot:
		return ShootDuration
	case SoundExplosion:
		return ExplosionDuration
	case SoundAmbience:
		return AmbienceDuration
	default:
		return 0
	}
}

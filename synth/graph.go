package synth

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// Synthesize builds a fresh graph for s. Every call returns a new chain with
// its own oscillator, filter and envelope state, bounded to s.Duration(), so
// graphs started in the same frame never share anything.
func Synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	var graph beep.Streamer

	switch s {
	case SoundShoot:
		// square wave diving from 880Hz to 110Hz
		osc := NewSweep(880, 110, ShootDuration, ShootDuration, WaveSquare, rate)
		graph = NewEnvelope(osc, 0.25, 0.01, 0, ShootDuration, rate)

	case SoundExplosion:
		// white noise through a closing low-pass
		noise := NewOscillator(0, ExplosionDuration, WaveNoise, rate)
		filtered := NewLowPassGlide(noise, 1000, 120, rate.N(ExplosionDuration), rate)
		graph = NewEnvelope(filtered, 1.0, 0.01, 0, ExplosionDuration, rate)

	case SoundAmbience:
		// low drone with a breath of filtered noise
		drone := NewOscillator(55, AmbienceDuration, WaveSine, rate)
		hum := NewLowPass(NewOscillator(110, AmbienceDuration, WaveSaw, rate), 400, rate)
		air := NewLowPass(NewOscillator(0, AmbienceDuration, WaveNoise, rate), 250, rate)
		mixed := beep.Mix(
			gain(drone, 0.6),
			gain(hum, 0.25),
			gain(air, 0.15),
		)
		graph = NewEnvelope(mixed, 0.5, 0.001, ambienceAttack, AmbienceDuration-ambienceAttack, rate)

	default:
		return nil
	}

	return beep.Take(rate.N(s.Duration()), graph)
}

// gain scales a streamer linearly; effects.Gain multiplies by 1+Gain.
func gain(s beep.Streamer, g float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: g - 1}
}

// bufferSize is the speaker buffer used by the engine: 1/10s like the
// speaker setup the game has always used.
func bufferSize(rate beep.SampleRate) int {
	return rate.N(time.Second / 10)
}

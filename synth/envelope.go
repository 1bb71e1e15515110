package synth

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// envelope is a gain stage: linear attack up to peak, then an exponential ramp
// down to floor over the decay window, holding floor afterwards.
type envelope struct {
	streamer beep.Streamer
	peak     float64
	floor    float64
	attack   int
	decay    int
	position int
}

func NewEnvelope(s beep.Streamer, peak, floor float64, attack, decay time.Duration, rate beep.SampleRate) beep.Streamer {
	if floor <= 0 {
		floor = 0.0001
	}
	return &envelope{
		streamer: s,
		peak:     peak,
		floor:    floor,
		attack:   rate.N(attack),
		decay:    rate.N(decay),
	}
}

func (e *envelope) gain() float64 {
	if e.peak <= 0 {
		return 0
	}
	if e.position < e.attack {
		return e.peak * float64(e.position) / float64(e.attack)
	}
	if e.decay <= 0 {
		return e.peak
	}
	t := float64(e.position-e.attack) / float64(e.decay)
	if t >= 1 {
		return e.floor
	}
	return e.peak * math.Pow(e.floor/e.peak, t)
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

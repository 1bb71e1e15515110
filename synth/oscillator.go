package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a mono wave, optionally sweeping its frequency
// exponentially from freq to endFreq over the sweep window.
type oscillator struct {
	freq     float64
	endFreq  float64
	sweep    int
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, duration, wave, rate)
}

// NewSweep creates an oscillator ramping from startFreq to endFreq over sweep,
// the way an exponential frequency ramp behaves on a web audio oscillator.
func NewSweep(startFreq, endFreq float64, sweep, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		sweep:    rate.N(sweep),
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(rand.Int63())),
	}
}

func (o *oscillator) frequency() float64 {
	if o.sweep <= 0 || o.freq == o.endFreq || o.freq <= 0 || o.endFreq <= 0 {
		return o.freq
	}
	t := float64(o.position) / float64(o.sweep)
	if t > 1 {
		t = 1
	}
	return o.freq * math.Pow(o.endFreq/o.freq, t)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

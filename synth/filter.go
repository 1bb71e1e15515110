package synth

import (
	"math"

	"github.com/faiface/beep"
)

// lowPass is a one-pole low-pass filter. The cutoff may glide from cutoff to
// endCutoff over the glide window, which is how the explosion loses its hiss.
type lowPass struct {
	streamer  beep.Streamer
	cutoff    float64
	endCutoff float64
	glide     int
	position  int
	rate      beep.SampleRate
	state     [2]float64
}

func NewLowPass(s beep.Streamer, cutoff float64, rate beep.SampleRate) beep.Streamer {
	return &lowPass{streamer: s, cutoff: cutoff, endCutoff: cutoff, rate: rate}
}

func NewLowPassGlide(s beep.Streamer, cutoff, endCutoff float64, glideSamples int, rate beep.SampleRate) beep.Streamer {
	return &lowPass{streamer: s, cutoff: cutoff, endCutoff: endCutoff, glide: glideSamples, rate: rate}
}

func (f *lowPass) alpha() float64 {
	fc := f.cutoff
	if f.glide > 0 && f.endCutoff != f.cutoff {
		t := float64(f.position) / float64(f.glide)
		if t > 1 {
			t = 1
		}
		fc = f.cutoff + (f.endCutoff-f.cutoff)*t
	}
	return 1 - math.Exp(-2*math.Pi*fc/float64(f.rate))
}

func (f *lowPass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		a := f.alpha()
		for c := 0; c < 2; c++ {
			f.state[c] += a * (samples[i][c] - f.state[c])
			samples[i][c] = f.state[c]
		}
		f.position++
	}
	return n, ok
}

func (f *lowPass) Err() error { return f.streamer.Err() }

package synth

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// DefaultSampleRate is the rate the engine opens the output with.
const DefaultSampleRate = beep.SampleRate(44100)

// Output is an audio device. speaker satisfies it through a thin adapter.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
}

// Engine plays synthesized sounds. The output may only be opened after a user
// gesture, so until Start has finished every Play is a silent no-op.
type Engine struct {
	out    Output
	rate   beep.SampleRate
	volume float64

	starting atomic.Bool
	ready    atomic.Bool
	silent   atomic.Bool
	muted    atomic.Bool
	playing  atomic.Int32

	started chan struct{}
}

// NewEngine creates an engine for out. volume is a base 2 exponent as used by
// effects.Volume: 0 is unity, -1 halves the amplitude.
func NewEngine(out Output, rate beep.SampleRate, volume float64) *Engine {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Engine{
		out:     out,
		rate:    rate,
		volume:  volume,
		started: make(chan struct{}),
	}
}

// Start opens the output in the background. Calls after the first are ignored.
func (e *Engine) Start() {
	if !e.starting.CompareAndSwap(false, true) {
		return
	}

	go func() {
		defer close(e.started)

		if e.out == nil {
			e.silent.Store(true)
			log.Printf("[audio] no output, running silent")
			return
		}

		if err := e.init(); err != nil {
			e.silent.Store(true)
			log.Printf("[audio] %v, running silent", err)
			return
		}
		e.ready.Store(true)
		log.Printf("[audio] output ready at %dHz", e.rate)
	}()
}

func (e *Engine) init() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio init panicked: %v", r)
		}
	}()
	if err := e.out.Init(e.rate, bufferSize(e.rate)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	return nil
}

// Started is closed once Start has either opened the output or given up.
func (e *Engine) Started() <-chan struct{} {
	return e.started
}

// Ready reports whether sounds are currently audible.
func (e *Engine) Ready() bool {
	return e.ready.Load() && !e.silent.Load()
}

// Play synthesizes s and hands it to the output. It returns false when the
// sound was dropped.
func (e *Engine) Play(s Sound) bool {
	if !e.Ready() || e.muted.Load() {
		return false
	}
	graph := Synthesize(s, e.rate)
	if graph == nil {
		return false
	}
	return e.PlayStreamer(graph)
}

// PlayStreamer plays an arbitrary streamer through the engine's volume stage.
func (e *Engine) PlayStreamer(s beep.Streamer) bool {
	if !e.Ready() || e.muted.Load() || s == nil {
		return false
	}

	e.playing.Add(1)
	e.out.Play(beep.Seq(
		&effects.Volume{Streamer: s, Base: 2, Volume: e.volume, Silent: false},
		beep.Callback(func() { e.playing.Add(-1) }),
	))
	return true
}

// Playing is the number of graphs handed to the output that have not finished.
func (e *Engine) Playing() int {
	return int(e.playing.Load())
}

// SampleRate is the rate graphs are built for.
func (e *Engine) SampleRate() beep.SampleRate {
	return e.rate
}

// ToggleMute toggles mute state, returns true if now audible
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

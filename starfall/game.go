package starfall

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/nathanKramer/starfall/synth"
)

const maxFrameTime = 0.1

type State int

const (
	StateBoot State = iota
	StateActive
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateBoot:
		return "boot"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Audio is the sound side of the game. synth.Engine implements it.
type Audio interface {
	Start()
	Play(s synth.Sound) bool
}

type silentAudio struct{}

func (silentAudio) Start()                {}
func (silentAudio) Play(synth.Sound) bool { return false }

// Deps are the collaborators of a Game. Nil fields fall back to silent
// audio, no telemetry, an in-memory high score and a time seeded source.
type Deps struct {
	Audio    Audio
	Notifier Notifier
	Store    HighScoreStore
	Rand     *rand.Rand
}

type Game struct {
	State   State
	Session *Session
	Input   InputState

	// FPS is the last measured frame rate, for the HUD only.
	FPS float64

	cfg      *Config
	audio    Audio
	notifier Notifier
	store    HighScoreStore
	fps      *fpsMonitor
	rng      *rand.Rand

	ambiencePending bool
	storedHigh      int
	recordNotified  bool
}

func NewGame(cfg *Config, width, height float64, deps Deps) *Game {
	game := &Game{
		State:    StateBoot,
		cfg:      cfg,
		audio:    deps.Audio,
		notifier: deps.Notifier,
		store:    deps.Store,
		rng:      deps.Rand,
		fps:      newFPSMonitor(cfg.Telemetry),
	}
	if game.audio == nil {
		game.audio = silentAudio{}
	}
	if game.notifier == nil || !cfg.Telemetry.Enabled {
		game.notifier = NopNotifier{}
	}
	if game.store == nil {
		game.store = &memoryStore{}
	}
	if game.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		game.rng = rand.New(rand.NewSource(seed))
	}

	game.Session = NewSession(cfg, width, height, game.rng)

	high, err := game.store.Load()
	if err != nil {
		log.Printf("[persistence] error loading high score: %v", err)
	}
	game.storedHigh = high
	game.Session.HighScore = high

	return game
}

// Start leaves the boot overlay. It must run from a user gesture since that is
// when the audio output may be opened.
func (game *Game) Start() {
	if game.State != StateBoot {
		return
	}
	game.State = StateActive
	game.audio.Start()
	game.ambiencePending = true
	game.notifier.Notify(EventSessionStarted, Fields{
		"width":     game.Session.Width,
		"height":    game.Session.Height,
		"highScore": game.Session.HighScore,
		"motion":    game.cfg.Motion,
	})
}

func (game *Game) TogglePause() {
	switch game.State {
	case StateActive:
		game.State = StatePaused
	case StatePaused:
		game.State = StateActive
	}
}

// scale converts the measured frame time into the per-frame motion factor.
func (game *Game) scale(dt float64) float64 {
	if game.cfg.Motion != MotionScaled || dt <= 0 {
		return 1
	}
	return math.Min(dt, maxFrameTime) * 60
}

// Update runs one frame. dt is the measured time since the previous frame in
// seconds; in fixed motion mode it only feeds diagnostics.
func (game *Game) Update(dt float64) {
	if dt > 0 {
		game.FPS = 1 / dt
	}
	if game.fps.observe(dt) {
		game.notifier.Notify(EventLowFPS, Fields{
			"fps":   math.Round(game.FPS*10) / 10,
			"frame": game.Session.Frame,
		})
	}

	if game.Input.consumePause() {
		game.TogglePause()
	}

	scale := game.scale(dt)

	switch game.State {
	case StateBoot:
		if game.Input.ConsumePress() || game.Input.consumeStart() {
			game.Start()
		}
		game.Session.Idle(&game.Input, scale)

	case StatePaused:
		// presses made while paused must not fire on resume
		game.Input.ConsumePress()
		game.Input.consumeStart()
		game.Session.Idle(&game.Input, scale)

	case StateActive:
		game.Input.consumeStart()
		ev := game.Session.Step(&game.Input, scale)
		game.handleEvents(ev)
	}
}

func (game *Game) handleEvents(ev FrameEvents) {
	if game.ambiencePending && game.audio.Play(synth.SoundAmbience) {
		game.ambiencePending = false
	}

	for i := 0; i < ev.Shots; i++ {
		game.audio.Play(synth.SoundShoot)
	}
	for i := 0; i < ev.Collisions.Kills+ev.Collisions.PlayerHits; i++ {
		game.audio.Play(synth.SoundExplosion)
	}

	if ev.Collisions.PlayerHits > 0 {
		game.notifier.Notify(EventPlayerHit, Fields{
			"hits":  game.Session.Hits,
			"score": game.Session.Score,
		})
	}

	if ev.WaveAdvanced() {
		game.notifier.Notify(EventWaveAdvanced, Fields{
			"from":  ev.WaveFrom,
			"to":    ev.WaveTo,
			"score": game.Session.Score,
		})
		game.audio.Play(synth.SoundAmbience)
	}

	if ev.HighScoreMoved && game.Session.HighScore > game.storedHigh {
		if err := game.store.Save(game.Session.HighScore); err != nil {
			log.Printf("[persistence] error saving high score: %v", err)
		}
		if !game.recordNotified {
			game.recordNotified = true
			game.notifier.Notify(EventHighScore, Fields{
				"previous": game.storedHigh,
				"score":    game.Session.HighScore,
			})
		}
	}
}

// Resize follows the window size.
func (game *Game) Resize(width, height float64) {
	game.Session.Resize(width, height)
}

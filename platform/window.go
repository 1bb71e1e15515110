// Package platform binds the game to a pixelgl window and the beep speaker.
// Everything in here needs a display and an audio device, the game rules live
// in package starfall.
package platform

import (
	"log"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"

	"github.com/nathanKramer/starfall/starfall"
	"github.com/nathanKramer/starfall/synth"
)

// Run opens the window and drives the game until it is closed. It must be
// called through pixelgl.Run.
func Run(cfg *starfall.Config) {
	wcfg := pixelgl.WindowConfig{
		Title:     starfall.Title,
		Bounds:    pixel.R(0, 0, cfg.Window.Width, cfg.Window.Height),
		VSync:     cfg.Window.VSync,
		Resizable: cfg.Window.Resizable,
	}
	if cfg.Window.Fullscreen {
		monitor := pixelgl.PrimaryMonitor()
		wcfg.Monitor = monitor
		w, h := monitor.Size()
		wcfg.Bounds = pixel.R(0, 0, w, h)
	}

	win, err := pixelgl.NewWindow(wcfg)
	if err != nil {
		panic(err)
	}

	var audio starfall.Audio
	var engine *synth.Engine
	if cfg.Audio.Enabled {
		engine = synth.NewEngine(speakerOutput{}, synth.DefaultSampleRate, cfg.Audio.Volume)
		audio = engine
	}

	var track *music
	if engine != nil && cfg.Audio.MusicFile != "" {
		track, err = prepareMusic(cfg.Audio.MusicFile)
		if err != nil {
			log.Printf("[Boot] no music: %v", err)
		} else {
			defer track.Close()
		}
	}

	var store starfall.HighScoreStore
	if cfg.Data.HighScoreFile != "" {
		store = starfall.NewFileStore(cfg.Data.HighScoreFile, cfg.Data.PlayerName)
	}

	bounds := win.Bounds()
	game := starfall.NewGame(cfg, bounds.W(), bounds.H(), starfall.Deps{
		Audio:    audio,
		Notifier: starfall.LogNotifier{},
		Store:    store,
	})
	draw := NewDrawContext(cfg)

	log.Printf("[Boot] %vx%v window, %s motion, best %d", bounds.W(), bounds.H(), cfg.Motion, game.Session.HighScore)

	lastFrame := time.Now()
	musicStarted := false

	for !win.Closed() {
		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		bounds = win.Bounds()
		game.Resize(bounds.W(), bounds.H())

		pollInput(win, &game.Input)
		if engine != nil && win.JustPressed(uiActionMute) {
			if engine.ToggleMute() {
				log.Printf("[audio] unmuted")
			} else {
				log.Printf("[audio] muted")
			}
		}

		game.Update(dt)

		if track != nil && !musicStarted && engine.Ready() {
			musicStarted = engine.PlayStreamer(track.Loop(engine.SampleRate()))
		}

		DrawGame(win, game, draw)
		win.Update()
	}

	log.Printf("[Boot] closed after %d frames, score %d, wave %d, best %d",
		game.Session.Frame, game.Session.Score, game.Session.Wave, game.Session.HighScore)
}

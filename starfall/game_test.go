package starfall

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/nathanKramer/starfall/synth"
)

type fakeAudio struct {
	started int
	ready   bool
	played  []synth.Sound
}

func (a *fakeAudio) Start() { a.started++ }

func (a *fakeAudio) Play(s synth.Sound) bool {
	if !a.ready {
		return false
	}
	a.played = append(a.played, s)
	return true
}

func (a *fakeAudio) count(s synth.Sound) int {
	n := 0
	for _, p := range a.played {
		if p == s {
			n++
		}
	}
	return n
}

type event struct {
	name string
	data Fields
}

type fakeNotifier struct {
	events []event
}

func (n *fakeNotifier) Notify(name string, data Fields) {
	n.events = append(n.events, event{name, data})
}

func (n *fakeNotifier) count(name string) int {
	c := 0
	for _, e := range n.events {
		if e.name == name {
			c++
		}
	}
	return c
}

type fakeStore struct {
	high    int
	loadErr error
	saved   []int
}

func (s *fakeStore) Load() (int, error) { return s.high, s.loadErr }

func (s *fakeStore) Save(score int) error {
	s.saved = append(s.saved, score)
	return nil
}

type gameFixture struct {
	game     *Game
	audio    *fakeAudio
	notifier *fakeNotifier
	store    *fakeStore
}

func newGameFixture(t *testing.T, cfg *Config) *gameFixture {
	t.Helper()
	f := &gameFixture{
		audio:    &fakeAudio{ready: true},
		notifier: &fakeNotifier{},
		store:    &fakeStore{},
	}
	f.game = NewGame(cfg, testWidth, testHeight, Deps{
		Audio:    f.audio,
		Notifier: f.notifier,
		Store:    f.store,
		Rand:     rand.New(rand.NewSource(1)),
	})
	return f
}

const frame60 = 1.0 / 60

func TestGameStartsOnGesture(t *testing.T) {
	f := newGameFixture(t, testConfig())
	g := f.game

	for i := 0; i < 10; i++ {
		g.Update(frame60)
	}
	if g.State != StateBoot {
		t.Fatalf("Expected to wait on the boot overlay, got %v", g.State)
	}
	if f.audio.started != 0 {
		t.Fatal("Expected audio untouched before a gesture")
	}
	if g.Session.Frame != 0 {
		t.Errorf("Expected no game frames during boot, got %d", g.Session.Frame)
	}

	g.Input.Press(100, 100)
	g.Update(frame60)

	if g.State != StateActive {
		t.Fatalf("Expected active after a click, got %v", g.State)
	}
	if f.audio.started != 1 {
		t.Errorf("Expected audio to start once, got %d", f.audio.started)
	}
	if len(g.Session.Bullets) != 0 {
		t.Errorf("Expected the start click not to fire")
	}
	if f.notifier.count(EventSessionStarted) != 1 {
		t.Errorf("Expected a session_started event")
	}

	g.Update(frame60)
	if f.audio.count(synth.SoundAmbience) != 1 {
		t.Errorf("Expected ambience once audio is up, played %v", f.audio.played)
	}

	g.Input.Release()
	g.Input.Press(100, 100)
	g.Update(frame60)
	if f.audio.count(synth.SoundShoot) != 1 || len(g.Session.Bullets) != 1 {
		t.Errorf("Expected one shot with sound, bullets=%d played=%v", len(g.Session.Bullets), f.audio.played)
	}
}

func TestGameStartsFromKeyboard(t *testing.T) {
	f := newGameFixture(t, testConfig())

	f.game.Input.RequestStart()
	f.game.Update(frame60)

	if f.game.State != StateActive {
		t.Errorf("Expected keyboard start, got %v", f.game.State)
	}
}

func TestAmbienceWaitsForAudio(t *testing.T) {
	f := newGameFixture(t, testConfig())
	f.audio.ready = false

	f.game.Start()
	for i := 0; i < 5; i++ {
		f.game.Update(frame60)
	}
	if len(f.audio.played) != 0 {
		t.Fatalf("Expected nothing audible yet, got %v", f.audio.played)
	}

	f.audio.ready = true
	f.game.Update(frame60)
	f.game.Update(frame60)
	if f.audio.count(synth.SoundAmbience) != 1 {
		t.Errorf("Expected ambience exactly once after audio came up, got %v", f.audio.played)
	}
}

func TestPauseFreezesEntities(t *testing.T) {
	f := newGameFixture(t, testConfig())
	g := f.game
	g.Start()

	e := g.Session.SpawnEnemy(100, 0, 2, EnemyBasic)
	g.Update(frame60)
	if e.Pos.Y != 2 {
		t.Fatalf("Expected enemy to move while active, y=%v", e.Pos.Y)
	}

	g.Input.TogglePause()
	g.Update(frame60)
	if g.State != StatePaused {
		t.Fatalf("Expected paused, got %v", g.State)
	}
	g.Input.Press(200, 200)
	for i := 0; i < 10; i++ {
		g.Update(frame60)
	}
	if e.Pos.Y != 2 {
		t.Errorf("Expected enemy frozen while paused, y=%v", e.Pos.Y)
	}

	g.Input.TogglePause()
	g.Update(frame60)
	if g.State != StateActive {
		t.Fatalf("Expected resumed, got %v", g.State)
	}
	if len(g.Session.Bullets) != 0 {
		t.Errorf("Expected a press made while paused not to fire on resume")
	}
}

func TestKillPlaysExplosionAndSavesHighScore(t *testing.T) {
	f := newGameFixture(t, testConfig())
	g := f.game
	g.Start()

	// two kills in one frame
	g.Session.SpawnEnemy(90, 90, 0, EnemyBasic)
	g.Session.SpawnEnemy(290, 90, 0, EnemyBasic)
	g.Session.Bullets = append(g.Session.Bullets,
		NewBullet(100, 110, g.cfg.Bullet),
		NewBullet(300, 110, g.cfg.Bullet),
	)
	g.Update(frame60)

	if g.Session.Score != 200 {
		t.Fatalf("Expected score 200, got %d", g.Session.Score)
	}
	if f.audio.count(synth.SoundExplosion) != 2 {
		t.Errorf("Expected two explosion sounds, played %v", f.audio.played)
	}
	if len(f.store.saved) != 1 || f.store.saved[0] != 200 {
		t.Errorf("Expected high score 200 saved once, got %v", f.store.saved)
	}
	if f.notifier.count(EventHighScore) != 1 {
		t.Errorf("Expected one high_score event")
	}

	g.Session.SpawnEnemy(90, 90, 0, EnemyBasic)
	g.Session.Bullets = append(g.Session.Bullets, NewBullet(100, 110, g.cfg.Bullet))
	g.Update(frame60)

	if len(f.store.saved) != 2 || f.store.saved[1] != 300 {
		t.Errorf("Expected improved score saved again, got %v", f.store.saved)
	}
	if f.notifier.count(EventHighScore) != 1 {
		t.Errorf("Expected the record event only once per session")
	}
}

func TestStoredHighScoreIsLoaded(t *testing.T) {
	cfg := testConfig()
	store := &fakeStore{high: 5000}
	g := NewGame(cfg, testWidth, testHeight, Deps{Store: store, Rand: rand.New(rand.NewSource(1))})

	if g.Session.HighScore != 5000 {
		t.Errorf("Expected high score 5000, got %d", g.Session.HighScore)
	}

	g.Start()
	g.Session.SpawnEnemy(90, 90, 0, EnemyBasic)
	g.Session.Bullets = append(g.Session.Bullets, NewBullet(100, 110, cfg.Bullet))
	g.Update(frame60)

	if len(store.saved) != 0 {
		t.Errorf("Expected no save below the stored record, got %v", store.saved)
	}
	if g.Session.HighScore != 5000 {
		t.Errorf("Expected record to stay 5000, got %d", g.Session.HighScore)
	}
}

func TestBrokenStoreStartsFromZero(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk on fire")}
	g := NewGame(testConfig(), testWidth, testHeight, Deps{Store: store})

	if g.Session.HighScore != 0 {
		t.Errorf("Expected 0 when the store fails, got %d", g.Session.HighScore)
	}
}

func TestWaveAdvanceNotifies(t *testing.T) {
	f := newGameFixture(t, testConfig())
	g := f.game
	g.Start()
	g.Session.Score = 1000

	g.Session.SpawnEnemy(90, 90, 0, EnemyBasic)
	g.Session.Bullets = append(g.Session.Bullets, NewBullet(100, 110, g.cfg.Bullet))
	g.Update(frame60)

	if g.Session.Wave != 2 {
		t.Fatalf("Expected wave 2, got %d", g.Session.Wave)
	}
	if f.notifier.count(EventWaveAdvanced) != 1 {
		t.Errorf("Expected one wave_advanced event, got %v", f.notifier.events)
	}
}

func TestLowFPSReportedOnce(t *testing.T) {
	cfg := testConfig()
	cfg.Telemetry.LowFPSFrames = 3
	f := newGameFixture(t, cfg)
	g := f.game

	for i := 0; i < 10; i++ {
		g.Update(0.1) // 10 fps
	}
	if f.notifier.count(EventLowFPS) != 1 {
		t.Fatalf("Expected one low_fps event, got %d", f.notifier.count(EventLowFPS))
	}

	g.Update(frame60)
	for i := 0; i < 3; i++ {
		g.Update(0.1)
	}
	if f.notifier.count(EventLowFPS) != 2 {
		t.Errorf("Expected a second event after recovering, got %d", f.notifier.count(EventLowFPS))
	}
}

func TestTelemetryDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Telemetry.Enabled = false
	f := newGameFixture(t, cfg)

	f.game.Start()
	if len(f.notifier.events) != 0 {
		t.Errorf("Expected no events with telemetry off, got %v", f.notifier.events)
	}
}

func TestScaledMotionUsesFrameTime(t *testing.T) {
	cfg := testConfig()
	cfg.Motion = MotionScaled
	f := newGameFixture(t, cfg)
	g := f.game
	g.Start()

	e := g.Session.SpawnEnemy(100, 0, 2, EnemyBasic)
	g.Update(1.0 / 30)
	if d := e.Pos.Y - 4; d > 1e-9 || d < -1e-9 {
		t.Errorf("Expected a 30fps frame to move twice as far, y=%v", e.Pos.Y)
	}

	// long stalls are clamped
	e.Pos.Y = 0
	g.Update(5)
	if d := e.Pos.Y - 12; d > 1e-9 || d < -1e-9 {
		t.Errorf("Expected dt clamped to 0.1s, y=%v", e.Pos.Y)
	}
}

func TestSilentGameRuns(t *testing.T) {
	g := NewGame(testConfig(), testWidth, testHeight, Deps{})
	g.Input.Press(10, 10)
	for i := 0; i < 120; i++ {
		g.Update(frame60)
	}
	if g.State != StateActive {
		t.Errorf("Expected a game without collaborators to run, got %v", g.State)
	}
}

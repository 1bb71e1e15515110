package starfall

import (
	"math/rand"

	"github.com/faiface/pixel"
)

// Session is everything one play-through mutates. A fresh Session is a fresh
// game; nothing lives in package state.
type Session struct {
	Width  float64
	Height float64

	Player     *Player
	Bullets    []*Bullet
	Enemies    []*Enemy
	Explosions []*Explosion
	Particles  *ParticleSystem

	Score     int
	Wave      int
	HighScore int
	Kills     int
	Hits      int // enemies that rammed the player
	Frame     int

	cfg *Config
	rng *rand.Rand
}

func NewSession(cfg *Config, width, height float64, rng *rand.Rand) *Session {
	s := &Session{
		Width:  width,
		Height: height,
		Wave:   1,
		cfg:    cfg,
		rng:    rng,
	}
	s.Player = NewPlayer(width/2, s.playerRow(), cfg.Player)
	s.Particles = NewParticleSystem(width, height, rng, cfg.Particles)
	return s
}

func (s *Session) playerRow() float64 {
	return s.Height - s.cfg.Player.Offset
}

// Resize adapts the session to a new canvas size.
func (s *Session) Resize(width, height float64) {
	if width == s.Width && height == s.Height {
		return
	}
	s.Width, s.Height = width, height
	s.Player.Pos.Y = s.playerRow()
	if s.Player.Pos.X > width {
		s.Player.Pos.X = width
		s.Player.TargetX = width
	}
	s.Particles.Resize(width, height)
}

// SpawnEnemy adds an enemy with an explicit position and speed.
func (s *Session) SpawnEnemy(x, y, speed float64, kind EnemyKind) *Enemy {
	e := NewEnemy(x, y, speed, kind, s.cfg.Enemy)
	s.Enemies = append(s.Enemies, e)
	return e
}

// spawnRandomEnemy places a new enemy above the top edge at a random column,
// with the speed and kind of the current wave.
func (s *Session) spawnRandomEnemy() *Enemy {
	kind := pickEnemyKind(s.Wave, s.rng)
	speed := EnemySpeed(s.Wave, s.rng.Float64(), s.cfg.Difficulty) * enemyKinds[kind].speedMul

	e := NewEnemy(0, s.cfg.Enemy.SpawnY, speed, kind, s.cfg.Enemy)
	if span := s.Width - e.Width; span > 0 {
		e.Pos.X = s.rng.Float64() * span
	}
	s.Enemies = append(s.Enemies, e)
	return e
}

// FireBullet launches a bullet from the nose of the player.
func (s *Session) FireBullet() *Bullet {
	b := NewBullet(s.Player.Pos.X, s.Player.Pos.Y-s.Player.Height/2, s.cfg.Bullet)
	s.Bullets = append(s.Bullets, b)
	return b
}

func (s *Session) explode(at pixel.Vec) {
	s.Explosions = append(s.Explosions, NewExplosion(at, s.rng, s.cfg.Explosion))
}

func (s *Session) addScore(points int) {
	s.Score += points
	for WaveReached(s.Score, s.Wave, s.cfg.Difficulty) {
		s.Wave++
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// Prune drops inactive bullets and enemies and burnt out explosions, reusing
// the backing arrays.
func (s *Session) Prune() {
	bullets := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	clearTail(s.Bullets, len(bullets))
	s.Bullets = bullets

	enemies := s.Enemies[:0]
	for _, e := range s.Enemies {
		if e.Active {
			enemies = append(enemies, e)
		}
	}
	clearTail(s.Enemies, len(enemies))
	s.Enemies = enemies

	explosions := s.Explosions[:0]
	for _, e := range s.Explosions {
		if !e.Done() {
			explosions = append(explosions, e)
		}
	}
	clearTail(s.Explosions, len(explosions))
	s.Explosions = explosions
}

// clearTail nils the dropped pointers so the collector can reclaim them.
func clearTail[T any](items []*T, keep int) {
	for i := keep; i < len(items); i++ {
		items[i] = nil
	}
}

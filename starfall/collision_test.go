package starfall

import (
	"testing"

	"github.com/faiface/pixel"
)

func TestBulletEnemyCollisionScenario(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)

	// enemy box x:[90,120] y:[90,120]
	e := s.SpawnEnemy(90, 90, 0, EnemyBasic)
	b := NewBullet(100, 100, cfg.Bullet)
	s.Bullets = append(s.Bullets, b)

	score := s.Score
	explosions := len(s.Explosions)

	res := s.CheckCollisions()

	if b.Active || e.Active {
		t.Errorf("Expected bullet and enemy inactive, bullet=%v enemy=%v", b.Active, e.Active)
	}
	if s.Score-score != 100 {
		t.Errorf("Expected score to rise by 100, rose by %d", s.Score-score)
	}
	if len(s.Explosions)-explosions != 1 {
		t.Errorf("Expected exactly one new explosion, got %d", len(s.Explosions)-explosions)
	}
	if res.Kills != 1 || res.Points != 100 {
		t.Errorf("Expected 1 kill worth 100, got %+v", res)
	}
	if got := s.Explosions[0].Pos; got != pixel.V(105, 105) {
		t.Errorf("Expected explosion at enemy centre (105,105), got %v", got)
	}

	// inactive entities stay until pruned
	if len(s.Bullets) != 1 || len(s.Enemies) != 1 {
		t.Errorf("Expected collision pass not to prune, bullets=%d enemies=%d", len(s.Bullets), len(s.Enemies))
	}
	s.Prune()
	if len(s.Bullets) != 0 || len(s.Enemies) != 0 {
		t.Errorf("Expected prune to drop inactive entities, bullets=%d enemies=%d", len(s.Bullets), len(s.Enemies))
	}
}

func TestCollisionRequiresStrictInside(t *testing.T) {
	tests := []struct {
		name   string
		bullet pixel.Vec
		hit    bool
	}{
		{"centre", pixel.V(105, 105), true},
		{"near left edge", pixel.V(90.01, 105), true},
		{"on left edge", pixel.V(90, 105), false},
		{"on right edge", pixel.V(120, 105), false},
		{"on top edge", pixel.V(105, 90), false},
		{"on bottom edge", pixel.V(105, 120), false},
		{"outside", pixel.V(130, 130), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			s := newTestSession(t, cfg)
			e := s.SpawnEnemy(90, 90, 0, EnemyBasic)
			b := NewBullet(tt.bullet.X, tt.bullet.Y, cfg.Bullet)
			s.Bullets = append(s.Bullets, b)

			s.CheckCollisions()

			if hit := !e.Active; hit != tt.hit {
				t.Errorf("Expected hit=%v for bullet at %v", tt.hit, tt.bullet)
			}
			if b.Active == tt.hit {
				t.Errorf("Expected bullet active=%v", !tt.hit)
			}
		})
	}
}

func TestOneBulletKillsOneEnemy(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)

	first := s.SpawnEnemy(90, 90, 0, EnemyBasic)
	second := s.SpawnEnemy(95, 95, 0, EnemyBasic)
	s.Bullets = append(s.Bullets, NewBullet(100, 100, cfg.Bullet))

	res := s.CheckCollisions()

	if res.Kills != 1 {
		t.Fatalf("Expected a single kill, got %d", res.Kills)
	}
	if first.Active == second.Active {
		t.Errorf("Expected exactly one of the overlapping enemies to die")
	}
}

func TestTankNeedsThreeHits(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)

	tank := s.SpawnEnemy(90, 90, 0, EnemyTank)
	centre := tank.Center()

	for i := 1; i <= 3; i++ {
		s.Bullets = append(s.Bullets, NewBullet(centre.X, centre.Y, cfg.Bullet))
		res := s.CheckCollisions()
		s.Prune()

		if i < 3 {
			if res.Kills != 0 || !tank.Active || s.Score != 0 || len(s.Explosions) != 0 {
				t.Fatalf("hit %d: expected tank to survive without score, got %+v score=%d", i, res, s.Score)
			}
			continue
		}
		if res.Kills != 1 || tank.Active || s.Score != cfg.Enemy.KillScore {
			t.Fatalf("Expected third hit to kill the tank, got %+v score=%d", res, s.Score)
		}
	}
}

func TestEnemyRammingPlayer(t *testing.T) {
	cfg := testConfig()
	s := newTestSession(t, cfg)

	p := s.Player.Pos
	e := s.SpawnEnemy(p.X-5, p.Y-5, 0, EnemyBasic)

	res := s.CheckCollisions()

	if e.Active {
		t.Error("Expected enemy touching the player to be destroyed")
	}
	if res.PlayerHits != 1 || s.Hits != 1 {
		t.Errorf("Expected one player hit, got %d (session %d)", res.PlayerHits, s.Hits)
	}
	if s.Score != 0 {
		t.Errorf("Expected ramming not to score, got %d", s.Score)
	}
	if len(s.Explosions) != 1 {
		t.Errorf("Expected an explosion, got %d", len(s.Explosions))
	}

	cfg.Player.Collides = false
	e = s.SpawnEnemy(p.X-5, p.Y-5, 0, EnemyBasic)
	s.CheckCollisions()
	if !e.Active {
		t.Error("Expected player collisions to be ignored when disabled")
	}
}

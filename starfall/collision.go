package starfall

import "github.com/faiface/pixel"

// pointInside is the strict containment test used for bullets: a bullet
// sitting exactly on an edge does not hit.
func pointInside(p pixel.Vec, r pixel.Rect) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

func rectsOverlap(a, b pixel.Rect) bool {
	return a.Min.X < b.Max.X && a.Max.X > b.Min.X && a.Min.Y < b.Max.Y && a.Max.Y > b.Min.Y
}

// CollisionResult summarises one collision pass.
type CollisionResult struct {
	Hits       int // bullets that struck an enemy
	Kills      int
	PlayerHits int
	Points     int
}

// CheckCollisions tests every active bullet against every active enemy, and
// every enemy against the player when player collisions are enabled. Both
// participants are only marked inactive here, pruning happens later in the
// frame. Explosions spawn at the enemy centre, not at its top-left Pos.
func (s *Session) CheckCollisions() CollisionResult {
	var res CollisionResult

	for _, b := range s.Bullets {
		if !b.Active {
			continue
		}
		for _, e := range s.Enemies {
			if !e.Active {
				continue
			}
			if !pointInside(b.Pos, e.Bounds()) {
				continue
			}

			b.Active = false
			res.Hits++
			if e.Hit() {
				res.Kills++
				s.Kills++
				res.Points += s.cfg.Enemy.KillScore
				s.explode(e.Center())
			}
			break
		}
	}

	if s.cfg.Player.Collides {
		pb := s.Player.Bounds()
		for _, e := range s.Enemies {
			if !e.Active || !rectsOverlap(pb, e.Bounds()) {
				continue
			}
			e.Active = false
			res.PlayerHits++
			s.Hits++
			s.explode(e.Center())
		}
	}

	if res.Points > 0 {
		s.addScore(res.Points)
	}
	return res
}

package starfall

// FrameEvents are the side effects a frame asks for. The session itself never
// touches audio, telemetry or storage.
type FrameEvents struct {
	Shots          int
	Spawned        int
	Collisions     CollisionResult
	WaveFrom       int
	WaveTo         int
	HighScoreMoved bool
}

func (ev FrameEvents) WaveAdvanced() bool {
	return ev.WaveTo > ev.WaveFrom
}

// Step runs one frame of the game in its fixed order: player, spawn, fire,
// advance, collide, prune. scale is 1 in fixed motion mode and dt*60 in scaled
// mode.
func (s *Session) Step(in *InputState, scale float64) FrameEvents {
	ev := FrameEvents{WaveFrom: s.Wave}
	high := s.HighScore
	s.Frame++

	// player follows the pointer
	if in != nil && (in.Active || in.Down) {
		s.Player.TargetX = clamp(in.Pointer.X, 0, s.Width)
	}
	s.Player.Update(scale)

	// spawn
	if s.rng.Float64() < SpawnChance(s.Wave, s.cfg.Difficulty)*scale {
		s.spawnRandomEnemy()
		ev.Spawned++
	}

	// fire on a fresh press only
	if in != nil && in.ConsumePress() {
		s.FireBullet()
		ev.Shots++
	}

	// advance
	for _, b := range s.Bullets {
		if b.Active {
			b.Update(scale)
		}
	}
	for _, e := range s.Enemies {
		if e.Active {
			e.Update(scale, s.Height)
		}
	}
	for _, x := range s.Explosions {
		x.Update(scale)
	}
	if in != nil {
		s.Particles.Update(scale, in.Pointer, in.Active)
	} else {
		s.Particles.Update(scale, s.Player.Pos, false)
	}

	ev.Collisions = s.CheckCollisions()
	s.Prune()

	ev.WaveTo = s.Wave
	ev.HighScoreMoved = s.HighScore > high
	return ev
}

// Idle animates only the ambient layer, used while the start overlay or the
// pause overlay is up.
func (s *Session) Idle(in *InputState, scale float64) {
	if in != nil {
		s.Particles.Update(scale, in.Pointer, in.Active)
		return
	}
	s.Particles.Update(scale, s.Player.Pos, false)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

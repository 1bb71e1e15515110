package starfall

import "math/rand"

// Difficulty is a pure function of the wave number.

// EnemySpeed is base + jitter + wave*increment. jitter is a unit random value
// in [0, 1) scaled by the configured jitter range.
func EnemySpeed(wave int, jitter float64, cfg DifficultyConfig) float64 {
	return cfg.BaseSpeed + jitter*cfg.SpeedJitter + float64(wave)*cfg.SpeedIncrement
}

// SpawnChance is the per-frame probability of a new enemy, base*wave capped at 1.
func SpawnChance(wave int, cfg DifficultyConfig) float64 {
	p := cfg.BaseSpawnRate * float64(wave)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// WaveReached reports whether score has crossed the threshold of wave.
func WaveReached(score, wave int, cfg DifficultyConfig) bool {
	return score > wave*cfg.WaveThreshold
}

// pickEnemyKind draws a kind among those unlocked by wave, by weight.
func pickEnemyKind(wave int, rng *rand.Rand) EnemyKind {
	total := 0.0
	for _, k := range enemyKindOrder {
		if kind := enemyKinds[k]; wave >= kind.fromWave {
			total += kind.weight
		}
	}
	if total <= 0 {
		return EnemyBasic
	}

	r := rng.Float64() * total
	for _, k := range enemyKindOrder {
		kind := enemyKinds[k]
		if wave < kind.fromWave {
			continue
		}
		if r < kind.weight {
			return k
		}
		r -= kind.weight
	}
	return EnemyBasic
}

package starfall

import (
	"math/rand"
	"testing"
)

const (
	testWidth  = 800.0
	testHeight = 600.0
)

// testConfig disables random spawning so tests control every enemy.
func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Difficulty.BaseSpawnRate = 0
	cfg.Seed = 1
	return cfg
}

func newTestSession(t *testing.T, cfg *Config) *Session {
	t.Helper()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return NewSession(cfg, testWidth, testHeight, rand.New(rand.NewSource(1)))
}

package starfall

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if cfg.Bullet.Speed != 10 || cfg.Motion != MotionFixed {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "starfall.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
motion: scaled
seed: 42
difficulty:
  waveThreshold: 500
player:
  color: orange
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Motion != MotionScaled || cfg.Seed != 42 {
		t.Errorf("Expected top level overrides, got motion=%q seed=%d", cfg.Motion, cfg.Seed)
	}
	if cfg.Difficulty.WaveThreshold != 500 {
		t.Errorf("Expected threshold 500, got %d", cfg.Difficulty.WaveThreshold)
	}
	if cfg.Difficulty.BaseSpeed != 1 {
		t.Errorf("Expected untouched keys to keep defaults, got base speed %v", cfg.Difficulty.BaseSpeed)
	}
	if cfg.Player.Color != "orange" || cfg.Player.Width != 40 {
		t.Errorf("Expected partial section override, got %+v", cfg.Player)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	cases := map[string]string{
		"motion":    "motion: warp\n",
		"bullet":    "bullet:\n  speed: 0\n",
		"threshold": "difficulty:\n  waveThreshold: -1\n",
		"friction":  "particles:\n  friction: 1.5\n",
		"window":    "window:\n  width: 0\n",
		"sparks":    "explosion:\n  particles: -1\n",
		"increment": "difficulty:\n  speedIncrement: -1\n",
		"jitter":    "difficulty:\n  speedJitter: -0.5\n",
		"spawn":     "difficulty:\n  baseSpawnRate: -0.01\n",
		"drift":     "particles:\n  maxDriftSpeed: 0\n",
		"stuck":     "particles:\n  friction: 1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "window: [1, 2\n"))
	if err == nil {
		t.Fatal("Expected a parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected a parse error rather than a validation error, got %v", err)
	}
}

package starfall

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Title is the window and overlay title.
const Title = "Starfall"

// ErrInvalidConfig is returned by Validate when a value makes the game unplayable.
var ErrInvalidConfig = errors.New("invalid config")

// Motion modes.
const (
	MotionFixed  = "fixed"  // fixed per-frame deltas, speed follows refresh rate
	MotionScaled = "scaled" // deltas scaled by measured frame time
)

type WindowConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	Resizable  bool    `yaml:"resizable"`
	VSync      bool    `yaml:"vsync"`
}

type PlayerConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Offset   float64 `yaml:"offset"` // distance of the player row from the bottom edge
	Lerp     float64 `yaml:"lerp"`
	Color    string  `yaml:"color"`
	Collides bool    `yaml:"collides"`
}

type BulletConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type EnemyConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	SpawnY    float64 `yaml:"spawnY"`
	KillScore int     `yaml:"killScore"`
}

type DifficultyConfig struct {
	BaseSpeed      float64 `yaml:"baseSpeed"`
	SpeedJitter    float64 `yaml:"speedJitter"`
	SpeedIncrement float64 `yaml:"speedIncrement"`
	BaseSpawnRate  float64 `yaml:"baseSpawnRate"`
	WaveThreshold  int     `yaml:"waveThreshold"`
}

type ParticleConfig struct {
	AreaPerParticle float64 `yaml:"areaPerParticle"`
	MaxParticles    int     `yaml:"maxParticles"`
	Drift           float64 `yaml:"drift"`
	MaxDriftSpeed   float64 `yaml:"maxDriftSpeed"`
	RepulsionRadius float64 `yaml:"repulsionRadius"`
	RepulsionForce  float64 `yaml:"repulsionForce"`
	Friction        float64 `yaml:"friction"`
}

type ExplosionConfig struct {
	Particles int     `yaml:"particles"`
	Speed     float64 `yaml:"speed"`
	Decay     float64 `yaml:"decay"`
}

type AudioConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Volume    float64 `yaml:"volume"`
	MusicFile string  `yaml:"musicFile"`
}

type TelemetryConfig struct {
	Enabled         bool    `yaml:"enabled"`
	LowFPSThreshold float64 `yaml:"lowFpsThreshold"`
	LowFPSFrames    int     `yaml:"lowFpsFrames"`
}

type DataConfig struct {
	HighScoreFile string `yaml:"highScoreFile"`
	PlayerName    string `yaml:"playerName"`
}

// Config holds every tunable of a session. Zero values are not meaningful, start
// from DefaultConfig.
type Config struct {
	Seed       int64            `yaml:"seed"`
	Motion     string           `yaml:"motion"`
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Particles  ParticleConfig   `yaml:"particles"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Audio      AudioConfig      `yaml:"audio"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Data       DataConfig       `yaml:"data"`
}

func DefaultConfig() *Config {
	return &Config{
		Motion: MotionFixed,
		Window: WindowConfig{
			Width:     1024,
			Height:    768,
			Resizable: true,
			VSync:     true,
		},
		Player: PlayerConfig{
			Width:    40,
			Height:   40,
			Offset:   80,
			Lerp:     0.1,
			Color:    "cyan",
			Collides: true,
		},
		Bullet: BulletConfig{
			Speed:  10,
			Width:  4,
			Height: 12,
		},
		Enemy: EnemyConfig{
			Width:     30,
			Height:    30,
			SpawnY:    -50,
			KillScore: 100,
		},
		Difficulty: DifficultyConfig{
			BaseSpeed:      1,
			SpeedJitter:    1,
			SpeedIncrement: 0.5,
			BaseSpawnRate:  0.01,
			WaveThreshold:  1000,
		},
		Particles: ParticleConfig{
			AreaPerParticle: 4000,
			MaxParticles:    200,
			Drift:           0.05,
			MaxDriftSpeed:   0.6,
			RepulsionRadius: 100,
			RepulsionForce:  3,
			Friction:        0.95,
		},
		Explosion: ExplosionConfig{
			Particles: 15,
			Speed:     4,
			Decay:     0.02,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -0.5,
		},
		Telemetry: TelemetryConfig{
			Enabled:         true,
			LowFPSThreshold: 30,
			LowFPSFrames:    60,
		},
		Data: DataConfig{
			HighScoreFile: "./gamedata.yml",
			PlayerName:    "Player",
		},
	}
}

// LoadConfig overlays the YAML file at path on top of DefaultConfig. A missing
// file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Motion != MotionFixed && c.Motion != MotionScaled:
		return fmt.Errorf("%w: motion must be %q or %q, got %q", ErrInvalidConfig, MotionFixed, MotionScaled, c.Motion)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %vx%v", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Bullet.Speed <= 0:
		return fmt.Errorf("%w: bullet speed must be positive", ErrInvalidConfig)
	case c.Difficulty.WaveThreshold <= 0:
		return fmt.Errorf("%w: wave threshold must be positive", ErrInvalidConfig)
	case c.Difficulty.BaseSpeed <= 0:
		return fmt.Errorf("%w: base enemy speed must be positive", ErrInvalidConfig)
	case c.Difficulty.SpeedIncrement < 0 || c.Difficulty.SpeedJitter < 0:
		return fmt.Errorf("%w: enemy speed increment and jitter must not be negative", ErrInvalidConfig)
	case c.Difficulty.BaseSpawnRate < 0:
		return fmt.Errorf("%w: spawn rate must not be negative", ErrInvalidConfig)
	case c.Particles.AreaPerParticle <= 0:
		return fmt.Errorf("%w: particle area must be positive", ErrInvalidConfig)
	case c.Particles.MaxDriftSpeed <= 0:
		return fmt.Errorf("%w: particle drift speed must be positive", ErrInvalidConfig)
	case c.Particles.Friction < 0 || c.Particles.Friction >= 1:
		return fmt.Errorf("%w: particle friction must be within [0, 1)", ErrInvalidConfig)
	case c.Explosion.Particles < 0:
		return fmt.Errorf("%w: explosion particles must not be negative", ErrInvalidConfig)
	case c.Explosion.Decay <= 0:
		return fmt.Errorf("%w: explosion decay must be positive", ErrInvalidConfig)
	}
	return nil
}

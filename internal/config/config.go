// Package config handles demo configuration loading and management.
package config

import (
	"fmt"
	"time"

	"go.uber.org/multierr"
)

// Config holds all demo settings.
type Config struct {
	Demo    DemoConfig    `yaml:"demo"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// DemoConfig holds frame loop settings.
type DemoConfig struct {
	Duration  time.Duration `yaml:"duration"`   // Total simulated run time
	FrameRate int           `yaml:"frame_rate"` // Fixed simulation steps per second
	TimeScale float32       `yaml:"time_scale"` // Multiplier applied to dt
}

// SceneConfig describes the desert scene contents.
type SceneConfig struct {
	GlobeRadius   float32 `yaml:"globe_radius"`
	GlobeSegments int     `yaml:"globe_segments"`
	GlobeRings    int     `yaml:"globe_rings"`

	GroundSize         float32 `yaml:"ground_size"`
	GroundSubdivisions int     `yaml:"ground_subdivisions"`

	Cacti   []CactusConfig `yaml:"cacti"`
	Effects []EffectConfig `yaml:"effects"`
}

// CactusConfig places one cactus in the scene.
type CactusConfig struct {
	Position    [3]float32 `yaml:"position"`
	Height      float32    `yaml:"height"`
	TrunkRadius float32    `yaml:"trunk_radius"`
	Arms        int        `yaml:"arms"`
	ArmHeight   float32    `yaml:"arm_height"` // Fraction of trunk height
	Segments    int        `yaml:"segments"`
}

// EffectConfig places one ambient particle effect in the scene.
type EffectConfig struct {
	Type     string     `yaml:"type"` // fire, smoke, sand, snow, sparks
	Position [3]float32 `yaml:"position"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a globe, a desert
// ground plane, two cacti, and drifting sand.
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Duration:  10 * time.Second,
			FrameRate: 60,
			TimeScale: 1,
		},
		Scene: SceneConfig{
			GlobeRadius:        100,
			GlobeSegments:      48,
			GlobeRings:         24,
			GroundSize:         200,
			GroundSubdivisions: 20,
			Cacti: []CactusConfig{
				{Position: [3]float32{-8, 0, -5}, Height: 5, TrunkRadius: 0.5, Arms: 2, ArmHeight: 0.6, Segments: 12},
				{Position: [3]float32{6, 0, 4}, Height: 3.5, TrunkRadius: 0.4, Arms: 3, ArmHeight: 0.55, Segments: 12},
			},
			Effects: []EffectConfig{
				{Type: "sand", Position: [3]float32{0, 1, 0}},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks every section and reports all problems at once, so a bad
// config file fails fast with a complete diagnosis.
func (c *Config) Validate() error {
	var err error

	if c.Demo.FrameRate < 1 {
		err = multierr.Append(err, fmt.Errorf("demo: frame_rate must be at least 1, got %d", c.Demo.FrameRate))
	}
	if c.Demo.TimeScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("demo: time_scale must be positive, got %g", c.Demo.TimeScale))
	}

	if c.Scene.GlobeSegments < 1 {
		err = multierr.Append(err, fmt.Errorf("scene: globe_segments must be at least 1, got %d", c.Scene.GlobeSegments))
	}
	if c.Scene.GlobeRings < 1 {
		err = multierr.Append(err, fmt.Errorf("scene: globe_rings must be at least 1, got %d", c.Scene.GlobeRings))
	}
	if c.Scene.GroundSubdivisions < 1 {
		err = multierr.Append(err, fmt.Errorf("scene: ground_subdivisions must be at least 1, got %d", c.Scene.GroundSubdivisions))
	}

	for i, cactus := range c.Scene.Cacti {
		if cactus.Arms < 0 || cactus.Arms > 4 {
			err = multierr.Append(err, fmt.Errorf("scene: cactus %d: arms must be 0-4, got %d", i, cactus.Arms))
		}
		if cactus.Segments < 3 {
			err = multierr.Append(err, fmt.Errorf("scene: cactus %d: segments must be at least 3, got %d", i, cactus.Segments))
		}
		if cactus.Height <= 0 {
			err = multierr.Append(err, fmt.Errorf("scene: cactus %d: height must be positive, got %g", i, cactus.Height))
		}
		if cactus.TrunkRadius <= 0 {
			err = multierr.Append(err, fmt.Errorf("scene: cactus %d: trunk_radius must be positive, got %g", i, cactus.TrunkRadius))
		}
	}

	for i, effect := range c.Scene.Effects {
		switch effect.Type {
		case "fire", "smoke", "sand", "snow", "sparks":
		default:
			err = multierr.Append(err, fmt.Errorf("scene: effect %d: unknown type %q", i, effect.Type))
		}
	}

	return err
}

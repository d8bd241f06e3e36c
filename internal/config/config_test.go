package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Demo.Duration != 10*time.Second {
		t.Errorf("expected duration 10s, got %v", cfg.Demo.Duration)
	}
	if cfg.Demo.FrameRate != 60 {
		t.Errorf("expected frame rate 60, got %d", cfg.Demo.FrameRate)
	}
	if cfg.Demo.TimeScale != 1 {
		t.Errorf("expected time scale 1, got %v", cfg.Demo.TimeScale)
	}

	if cfg.Scene.GlobeRadius != 100 {
		t.Errorf("expected globe radius 100, got %v", cfg.Scene.GlobeRadius)
	}
	if len(cfg.Scene.Cacti) == 0 {
		t.Error("expected default scene to contain cacti")
	}
	if len(cfg.Scene.Effects) == 0 {
		t.Error("expected default scene to contain effects")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
demo:
  duration: 5s
  frame_rate: 30
  time_scale: 2.0

scene:
  globe_radius: 50
  globe_segments: 16
  globe_rings: 8
  ground_size: 80
  ground_subdivisions: 4
  cacti:
    - position: [1, 0, 2]
      height: 4
      trunk_radius: 0.3
      arms: 3
      arm_height: 0.5
      segments: 8
  effects:
    - type: snow
      position: [0, 20, 0]

logging:
  level: "debug"
  log_file: "demo.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Demo.Duration != 5*time.Second {
		t.Errorf("expected duration 5s, got %v", cfg.Demo.Duration)
	}
	if cfg.Demo.FrameRate != 30 {
		t.Errorf("expected frame rate 30, got %d", cfg.Demo.FrameRate)
	}
	if cfg.Demo.TimeScale != 2 {
		t.Errorf("expected time scale 2, got %v", cfg.Demo.TimeScale)
	}

	if cfg.Scene.GlobeRadius != 50 {
		t.Errorf("expected globe radius 50, got %v", cfg.Scene.GlobeRadius)
	}
	if len(cfg.Scene.Cacti) != 1 {
		t.Fatalf("expected 1 cactus, got %d", len(cfg.Scene.Cacti))
	}
	if cfg.Scene.Cacti[0].Arms != 3 {
		t.Errorf("expected 3 arms, got %d", cfg.Scene.Cacti[0].Arms)
	}
	if cfg.Scene.Cacti[0].Position != [3]float32{1, 0, 2} {
		t.Errorf("expected cactus at (1,0,2), got %v", cfg.Scene.Cacti[0].Position)
	}
	if len(cfg.Scene.Effects) != 1 || cfg.Scene.Effects[0].Type != "snow" {
		t.Errorf("expected one snow effect, got %+v", cfg.Scene.Effects)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "demo.log" {
		t.Errorf("expected log file 'demo.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
demo:
  frame_rate: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "zero frame rate",
			mutate:  func(c *Config) { c.Demo.FrameRate = 0 },
			wantMsg: "frame_rate",
		},
		{
			name:    "negative time scale",
			mutate:  func(c *Config) { c.Demo.TimeScale = -1 },
			wantMsg: "time_scale",
		},
		{
			name:    "too many arms",
			mutate:  func(c *Config) { c.Scene.Cacti[0].Arms = 7 },
			wantMsg: "arms",
		},
		{
			name:    "bad effect type",
			mutate:  func(c *Config) { c.Scene.Effects[0].Type = "lava" },
			wantMsg: "unknown type",
		},
		{
			name:    "zero globe rings",
			mutate:  func(c *Config) { c.Scene.GlobeRings = 0 },
			wantMsg: "globe_rings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Demo.FrameRate = 0
	cfg.Scene.GlobeSegments = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "frame_rate") || !strings.Contains(err.Error(), "globe_segments") {
		t.Errorf("expected both problems reported, got %q", err.Error())
	}
}

func TestApplyFlags(t *testing.T) {
	*flagDebug = true
	*flagFrameRate = 120
	*flagDuration = 3 * time.Second
	defer func() {
		*flagDebug = false
		*flagFrameRate = 0
		*flagDuration = 0
	}()

	cfg := Default()
	applyFlags(cfg)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Demo.FrameRate != 120 {
		t.Errorf("expected frame rate 120, got %d", cfg.Demo.FrameRate)
	}
	if cfg.Demo.Duration != 3*time.Second {
		t.Errorf("expected duration 3s, got %v", cfg.Demo.Duration)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := Default()
	cfg.Demo.FrameRate = 24
	cfg.Scene.GlobeRadius = 75

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Demo.FrameRate != 24 {
		t.Errorf("expected frame rate 24 after round trip, got %d", loaded.Demo.FrameRate)
	}
	if loaded.Scene.GlobeRadius != 75 {
		t.Errorf("expected globe radius 75 after round trip, got %v", loaded.Scene.GlobeRadius)
	}
}

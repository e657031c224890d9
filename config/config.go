// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Camera    CameraConfig    `yaml:"camera"`
	Level     LevelConfig     `yaml:"level"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds fixed-step simulation parameters. World units are
// pixels with +Y pointing down, so gravity is positive.
type PhysicsConfig struct {
	DT           float64 `yaml:"dt"`             // seconds per tick
	Gravity      float64 `yaml:"gravity"`        // downward acceleration, units/s^2
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity, units/s
}

// PlayerConfig holds movement tuning for the player actor.
type PlayerConfig struct {
	WalkAccel    float64 `yaml:"walk_accel"`     // units/s^2 while a direction is held
	MaxWalkSpeed float64 `yaml:"max_walk_speed"` // horizontal speed cap, units/s
	JumpAccel    float64 `yaml:"jump_accel"`     // upward accel while jump is sustained
	MaxJumpTime  float64 `yaml:"max_jump_time"`  // seconds of sustained jump
	HalfW        float64 `yaml:"half_w"`         // collider half width
	HalfH        float64 `yaml:"half_h"`         // collider half height
}

// CameraConfig holds follow-camera parameters.
type CameraConfig struct {
	FollowGain   float64 `yaml:"follow_gain"`   // distance scaling inside the log follow curve
	FollowOffset float64 `yaml:"follow_offset"` // constant inside the log follow curve
	Zoom         float64 `yaml:"zoom"`
}

// LevelConfig points at the level file to load.
type LevelConfig struct {
	Path string `yaml:"path"` // empty = embedded default level
}

// TelemetryConfig holds stats collection settings.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
	PerfWindow  int     `yaml:"perf_window"`  // ticks in the perf rolling window
}

var global Config

// Init loads defaults, then overlays the optional user config file.
// Must be called before Cfg.
func Init(path string) error {
	if err := yaml.Unmarshal(defaultsYAML, &global); err != nil {
		return fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &global); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	return global.validate()
}

// validate rejects values the physics core assumes are well-formed.
func (c *Config) validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT)
	}
	if c.Physics.MaxFallSpeed < 0 {
		return fmt.Errorf("physics.max_fall_speed must be non-negative, got %g", c.Physics.MaxFallSpeed)
	}
	if c.Player.HalfW < 0 || c.Player.HalfH < 0 {
		return fmt.Errorf("player collider half-extents must be non-negative")
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("telemetry.stats_window must be positive, got %g", c.Telemetry.StatsWindow)
	}
	return nil
}

// Cfg returns the global configuration.
func Cfg() *Config {
	return &global
}

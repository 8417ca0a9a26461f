// Package config holds the runtime settings of the face.
//
// Settings come from, in increasing precedence: Default, an optional YAML file, the
// FACE_FILE_PATH environment variable, and command-line flags applied by main.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvFacePath names the environment variable holding the face source location.
const EnvFacePath = "FACE_FILE_PATH"

// ErrNoFaceSource means no input location was configured anywhere.
var ErrNoFaceSource = errors.New("config: face source not set (use -faces or " + EnvFacePath + ")")

// Retarget policies.
const (
	RetargetConverged = "converged"
	RetargetEvery     = "every"
	RetargetManual    = "manual"
)

// Config holds every runtime setting; yaml tags name the keys of the config file.
type Config struct {
	Faces          string `yaml:"faces"`
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	TPS            int    `yaml:"tps"`
	Step           int    `yaml:"step"`
	JitterMin      int    `yaml:"jitter_min"`
	JitterMax      int    `yaml:"jitter_max"`
	BackdropJitter int    `yaml:"backdrop_jitter"`
	Retarget       string `yaml:"retarget"`
	RetargetEvery  int    `yaml:"retarget_every"`
	Seed           uint64 `yaml:"seed"`
	HUD            bool   `yaml:"hud"`
	Scale          int    `yaml:"scale"`
	LogLevel       string `yaml:"log_level"`
}

// Default returns the settings of the reference device: a 240x240 panel at 60 Hz.
func Default() Config {
	return Config{
		Width:          240,
		Height:         240,
		TPS:            60,
		Step:           2,
		JitterMin:      1,
		JitterMax:      5,
		BackdropJitter: 10,
		Retarget:       RetargetConverged,
		RetargetEvery:  120,
		Scale:          2,
		LogLevel:       "info",
	}
}

// Load reads a YAML file on top of Default. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv lets FACE_FILE_PATH override the face source.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvFacePath)); v != "" {
		c.Faces = v
	}
}

// Validate checks that the settings can drive the engine.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Faces) == "" {
		return ErrNoFaceSource
	}
	return c.validateRender()
}

// ValidateEmbedded is Validate without the face source check, for builds that carry
// their faces in the binary.
func (c *Config) ValidateEmbedded() error {
	return c.validateRender()
}

func (c *Config) validateRender() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("config: tps must be positive, got %d", c.TPS)
	case c.Step <= 0:
		return fmt.Errorf("config: step must be positive, got %d", c.Step)
	case c.JitterMax < c.JitterMin:
		return fmt.Errorf("config: jitter_max %d < jitter_min %d", c.JitterMax, c.JitterMin)
	case c.BackdropJitter < 0:
		return fmt.Errorf("config: backdrop_jitter must not be negative, got %d", c.BackdropJitter)
	case c.Scale <= 0:
		return fmt.Errorf("config: scale must be positive, got %d", c.Scale)
	}
	switch c.Retarget {
	case RetargetConverged, RetargetManual:
	case RetargetEvery:
		if c.RetargetEvery <= 0 {
			return fmt.Errorf("config: retarget_every must be positive, got %d", c.RetargetEvery)
		}
	default:
		return fmt.Errorf("config: unknown retarget policy %q", c.Retarget)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level: %w", err)
	}
	return l, nil
}

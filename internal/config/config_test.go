package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "face.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultNeedsFaceSource(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); !errors.Is(err, ErrNoFaceSource) {
		t.Fatalf("Validate() = %v, want ErrNoFaceSource", err)
	}
	if err := cfg.ValidateEmbedded(); err != nil {
		t.Fatalf("ValidateEmbedded() = %v, want nil", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "faces: /tmp/faces.jsonl\nstep: 3\nretarget: every\nretarget_every: 30\nhud: true\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Faces != "/tmp/faces.jsonl" || cfg.Step != 3 || cfg.Retarget != RetargetEvery || !cfg.HUD {
		t.Fatalf("Load() = %+v", cfg)
	}
	if cfg.Width != 240 || cfg.TPS != 60 {
		t.Fatalf("Load() lost defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "faces: x\nwidht: 100\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() err = nil, want unknown field error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Load() err = %v, want ErrNotExist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFacePath, "/data/faces.jsonl")
	cfg := Default()
	cfg.Faces = "/etc/faces.jsonl"
	cfg.ApplyEnv()
	if cfg.Faces != "/data/faces.jsonl" {
		t.Fatalf("Faces = %q, want env value", cfg.Faces)
	}

	t.Setenv(EnvFacePath, "  ")
	cfg.Faces = "/etc/faces.jsonl"
	cfg.ApplyEnv()
	if cfg.Faces != "/etc/faces.jsonl" {
		t.Fatalf("blank env overrode Faces: %q", cfg.Faces)
	}
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"size", func(c *Config) { c.Width = 0 }},
		{"tps", func(c *Config) { c.TPS = -1 }},
		{"step", func(c *Config) { c.Step = 0 }},
		{"jitter", func(c *Config) { c.JitterMin, c.JitterMax = 5, 1 }},
		{"backdrop", func(c *Config) { c.BackdropJitter = -1 }},
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"policy", func(c *Config) { c.Retarget = "sometimes" }},
		{"every", func(c *Config) { c.Retarget, c.RetargetEvery = RetargetEvery, 0 }},
		{"level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Faces = "faces.jsonl"
			tt.mod(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	if err != nil || l != slog.LevelDebug {
		t.Fatalf("ParseLevel(debug) = %v, %v", l, err)
	}
}

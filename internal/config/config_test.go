package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultMatchesEmbedded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("unmarshal embedded defaults: %v", err)
	}

	want := Default()
	if cfg.Field != want.Field {
		t.Errorf("field = %+v, want %+v", cfg.Field, want.Field)
	}
	if cfg.Physics != want.Physics {
		t.Errorf("physics = %+v, want %+v", cfg.Physics, want.Physics)
	}
	if cfg.Spawn != want.Spawn {
		t.Errorf("spawn = %+v, want %+v", cfg.Spawn, want.Spawn)
	}
	if cfg.Signal != want.Signal {
		t.Errorf("signal = %+v, want %+v", cfg.Signal, want.Signal)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	body := "field:\n  width: 640\n  height: 360\nphysics:\n  gravity: 12\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.Width != 640 || cfg.Field.Height != 360 {
		t.Errorf("field = %+v, want 640x360", cfg.Field)
	}
	if cfg.Physics.Gravity != 12 {
		t.Errorf("gravity = %v, want 12", cfg.Physics.Gravity)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for an explicit missing path")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) rejected a valid preset", s)
		}
	}
	if _, ok := ParsePreset("brutal"); ok {
		t.Error("ParsePreset accepted an unknown preset")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg != Default() {
		t.Error("normal preset should leave the config unchanged")
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Spawn.ObstacleOdds != 80 {
		t.Errorf("easy obstacle odds = %d, want 80", cfg.Spawn.ObstacleOdds)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Spawn.MaxObstacles != 3 {
		t.Errorf("hard max obstacles = %d, want 3", cfg.Spawn.MaxObstacles)
	}

	cfg = Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Physics.SpeedIncrement != 0 {
		t.Errorf("fixed speed increment = %v, want 0", cfg.Physics.SpeedIncrement)
	}
}

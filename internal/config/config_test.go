package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg MazeChaseConfig
	if err := yaml.Unmarshal(GetDefaultYAML("mazechase"), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if want := DefaultMazeChaseConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded default differs from hardcoded:\n got %+v\nwant %+v", cfg, want)
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("expected no default for unknown game")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  lives: 7\npursuers:\n  speed: 3.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMazeChase(path)
	if err != nil {
		t.Fatalf("LoadMazeChase failed: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("expected lives 7, got %d", cfg.Player.Lives)
	}
	if cfg.Pursuers.Speed != 3.5 {
		t.Errorf("expected pursuer speed 3.5, got %v", cfg.Pursuers.Speed)
	}
	// Missing fields keep their defaults
	if cfg.Timing.TickRate != 30 {
		t.Errorf("expected default tick rate 30, got %d", cfg.Timing.TickRate)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadMazeChase(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("timing: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMazeChase(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yaml")
	second := filepath.Join(dir, "second.yaml")
	if err := os.WriteFile(second, []byte("player:\n  lives: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// First path missing: falls through to the second
	cfg, err := loadMazeChase("", first, second)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.Lives != 9 {
		t.Errorf("expected lives 9 from second path, got %d", cfg.Player.Lives)
	}

	if err := os.WriteFile(first, []byte("player:\n  lives: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = loadMazeChase("", first, second)
	if cfg.Player.Lives != 4 {
		t.Errorf("expected lives 4 from first path, got %d", cfg.Player.Lives)
	}

	// Nothing found: embedded default
	cfg, _ = loadMazeChase("", filepath.Join(dir, "nope.yaml"))
	if !reflect.DeepEqual(cfg, DefaultMazeChaseConfig()) {
		t.Errorf("expected embedded default, got %+v", cfg)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Normal", DifficultyNormal, false},
		{" hard ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownPreset) {
				t.Errorf("ParsePreset(%q): expected ErrUnknownPreset, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		initial float64
		lives   int
		scareMs int
	}{
		{DifficultyEasy, true, 0.0, 5, 9000},
		{DifficultyNormal, true, 0.3, 3, 7000},
		{DifficultyHard, true, 0.7, 2, 5000},
		{DifficultyFixed, false, 0.0, 3, 7000},
	}

	for _, tt := range tests {
		cfg := DefaultMazeChaseConfig()
		if err := ApplyMazeChasePreset(&cfg, tt.preset); err != nil {
			t.Fatalf("%s: %v", tt.preset, err)
		}
		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("%s: enabled = %v, want %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.initial {
			t.Errorf("%s: initial level = %v, want %v", tt.preset, cfg.Difficulty.InitialLevel, tt.initial)
		}
		if cfg.Player.Lives != tt.lives {
			t.Errorf("%s: lives = %d, want %d", tt.preset, cfg.Player.Lives, tt.lives)
		}
		if cfg.Timing.ScareDurationMs != tt.scareMs {
			t.Errorf("%s: scare = %d, want %d", tt.preset, cfg.Timing.ScareDurationMs, tt.scareMs)
		}
	}

	cfg := DefaultMazeChaseConfig()
	if err := ApplyMazeChasePreset(&cfg, "insane"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestValidateDefaultsUntouched(t *testing.T) {
	cfg := DefaultMazeChaseConfig()
	if notes := cfg.Validate(); len(notes) != 0 {
		t.Errorf("default config should validate cleanly, got %v", notes)
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := DefaultMazeChaseConfig()
	cfg.Timing.TickRate = 0
	cfg.Grid.CellSize = 5
	cfg.Player.Speed = 15
	cfg.Pursuers.Speed = -1
	cfg.Pursuers.ScaredFactor = 2
	cfg.Pursuers.RedirectChance = 1.5
	cfg.Difficulty.Progression.Type = "score"

	notes := cfg.Validate()
	if len(notes) != 7 {
		t.Errorf("expected 7 notes, got %d: %v", len(notes), notes)
	}

	def := DefaultMazeChaseConfig()
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("tick rate = %d", cfg.Timing.TickRate)
	}
	if cfg.Grid.CellSize != MinCellSize {
		t.Errorf("cell size = %d", cfg.Grid.CellSize)
	}
	if cfg.Player.Speed != def.Player.Speed {
		t.Errorf("player speed = %v", cfg.Player.Speed)
	}
	if cfg.Pursuers.Speed != def.Pursuers.Speed {
		t.Errorf("pursuer speed = %v", cfg.Pursuers.Speed)
	}
	if cfg.Pursuers.ScaredFactor != def.Pursuers.ScaredFactor {
		t.Errorf("scared factor = %v", cfg.Pursuers.ScaredFactor)
	}
	if cfg.Pursuers.RedirectChance != def.Pursuers.RedirectChance {
		t.Errorf("redirect chance = %v", cfg.Pursuers.RedirectChance)
	}
	if cfg.Difficulty.Progression.Type != "levels" {
		t.Errorf("progression type = %q", cfg.Difficulty.Progression.Type)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultMazeChaseConfig())
	if err != nil {
		t.Fatal(err)
	}
	var cfg MazeChaseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, DefaultMazeChaseConfig()) {
		t.Errorf("round trip mismatch: %+v", cfg)
	}
}

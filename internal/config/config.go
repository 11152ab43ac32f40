// Package config provides YAML-based game configuration loading and
// difficulty management for mazechase.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// MazeChaseConfig contains all tunables of the maze-chase game.
type MazeChaseConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Player     PlayerConfig     `yaml:"player"`
	Pursuers   PursuersConfig   `yaml:"pursuers"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Grid       GridConfig       `yaml:"grid"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimingConfig defines loop rate and game timers.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`         // ticks per second
	ScareDurationMs int `yaml:"scare_duration_ms"` // how long a power item scares pursuers
	RestartDelayMs  int `yaml:"restart_delay_ms"`  // game-over pause before a new game
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // offset units per tick
	Lives int     `yaml:"lives"`
}

// PursuersConfig defines pursuer movement and behaviour parameters.
type PursuersConfig struct {
	Speed               float64 `yaml:"speed"`
	ScaredFactor        float64 `yaml:"scared_factor"`
	RedirectChance      float64 `yaml:"redirect_chance"`
	RedirectPeriod      int     `yaml:"redirect_period"`
	RedirectEvery       int     `yaml:"redirect_every"`
	AmbushLead          int     `yaml:"ambush_lead"`
	ConfusedChaseChance float64 `yaml:"confused_chase_chance"`
	ShyRadius           int     `yaml:"shy_radius"`
}

// ScoringConfig defines points awarded per event.
type ScoringConfig struct {
	Item      int `yaml:"item"`
	PowerItem int `yaml:"power_item"`
	Pursuer   int `yaml:"pursuer"`
}

// GridConfig defines the maze geometry.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // offset units per cell
}

// MinCellSize is the smallest accepted cell size.
const MinCellSize = 20

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "levels", "time", or "none"
	MaxAt int    `yaml:"max_at"` // levels cleared or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to pursuer speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned for a difficulty name that is not a preset.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Presets lists the accepted difficulty presets.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a user-supplied name into a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: %q: %w", name, ErrUnknownPreset)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate resets out-of-range values to their defaults and returns a note
// for every field it changed.
func (c *MazeChaseConfig) Validate() []string {
	def := DefaultMazeChaseConfig()
	var notes []string
	fix := func(field string, bad bool, apply func()) {
		if bad {
			apply()
			notes = append(notes, field+" out of range, using default")
		}
	}

	fix("timing.tick_rate", c.Timing.TickRate <= 0 || c.Timing.TickRate > 240, func() { c.Timing.TickRate = def.Timing.TickRate })
	fix("timing.scare_duration_ms", c.Timing.ScareDurationMs <= 0, func() { c.Timing.ScareDurationMs = def.Timing.ScareDurationMs })
	fix("timing.restart_delay_ms", c.Timing.RestartDelayMs < 0, func() { c.Timing.RestartDelayMs = def.Timing.RestartDelayMs })

	fix("grid.cell_size", c.Grid.CellSize < MinCellSize, func() { c.Grid.CellSize = MinCellSize })

	// An agent must not cross more than half a cell per tick or it could
	// skip the cell it was cleared to enter.
	half := float64(c.Grid.CellSize) / 2
	fix("player.speed", c.Player.Speed <= 0 || c.Player.Speed >= half, func() { c.Player.Speed = def.Player.Speed })
	fix("player.lives", c.Player.Lives <= 0, func() { c.Player.Lives = def.Player.Lives })

	p := &c.Pursuers
	fix("difficulty.scaling.speed_multiplier", c.Difficulty.Scaling.SpeedMultiplier < 0, func() {
		c.Difficulty.Scaling.SpeedMultiplier = def.Difficulty.Scaling.SpeedMultiplier
	})
	maxSpeed := p.Speed * (1 + c.Difficulty.Scaling.SpeedMultiplier)
	fix("pursuers.speed", p.Speed <= 0 || maxSpeed >= half, func() {
		p.Speed = def.Pursuers.Speed
		c.Difficulty.Scaling.SpeedMultiplier = def.Difficulty.Scaling.SpeedMultiplier
	})
	fix("pursuers.scared_factor", p.ScaredFactor <= 0 || p.ScaredFactor > 1, func() { p.ScaredFactor = def.Pursuers.ScaredFactor })
	fix("pursuers.redirect_chance", p.RedirectChance < 0 || p.RedirectChance > 1, func() { p.RedirectChance = def.Pursuers.RedirectChance })
	fix("pursuers.redirect_period", p.RedirectPeriod <= 0, func() { p.RedirectPeriod = def.Pursuers.RedirectPeriod })
	fix("pursuers.redirect_every", p.RedirectEvery < 0, func() { p.RedirectEvery = def.Pursuers.RedirectEvery })
	fix("pursuers.ambush_lead", p.AmbushLead < 0, func() { p.AmbushLead = def.Pursuers.AmbushLead })
	fix("pursuers.confused_chase_chance", p.ConfusedChaseChance < 0 || p.ConfusedChaseChance > 1, func() {
		p.ConfusedChaseChance = def.Pursuers.ConfusedChaseChance
	})
	fix("pursuers.shy_radius", p.ShyRadius < 0, func() { p.ShyRadius = def.Pursuers.ShyRadius })

	fix("scoring", c.Scoring.Item < 0 || c.Scoring.PowerItem < 0 || c.Scoring.Pursuer < 0, func() { c.Scoring = def.Scoring })

	fix("difficulty.initial_level", c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1, func() {
		c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0, 1)
	})
	switch c.Difficulty.Progression.Type {
	case "levels", "time", "none":
	default:
		fix("difficulty.progression.type", true, func() { c.Difficulty.Progression.Type = def.Difficulty.Progression.Type })
	}

	return notes
}

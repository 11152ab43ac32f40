package config

import (
	_ "embed"
)

//go:embed defaults/mazechase.yaml
var defaultMazeChaseYAML []byte

// DefaultMazeChaseConfig returns the classic tuning: 30 ticks per second,
// seven-second scare, five-second restart, no difficulty progression.
func DefaultMazeChaseConfig() MazeChaseConfig {
	return MazeChaseConfig{
		Timing: TimingConfig{
			TickRate:        30,
			ScareDurationMs: 7000,
			RestartDelayMs:  5000,
		},
		Player: PlayerConfig{
			Speed: 4.0,
			Lives: 3,
		},
		Pursuers: PursuersConfig{
			Speed:               4.5,
			ScaredFactor:        0.7,
			RedirectChance:      0.2,
			RedirectPeriod:      100,
			RedirectEvery:       30,
			AmbushLead:          4,
			ConfusedChaseChance: 0.7,
			ShyRadius:           8,
		},
		Scoring: ScoringConfig{
			Item:      10,
			PowerItem: 50,
			Pursuer:   200,
		},
		Grid: GridConfig{
			CellSize: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mazechase":
		return defaultMazeChaseYAML
	default:
		return nil
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "mazechase.yaml"

// LoadMazeChase loads the game configuration.
// Search order: customPath -> ~/.mazechase/configs/mazechase.yaml -> ./configs/mazechase.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadMazeChase(customPath string) (MazeChaseConfig, error) {
	return loadMazeChase(customPath, userConfigPath(fileName), filepath.Join("configs", fileName))
}

func loadMazeChase(customPath string, searchPaths ...string) (MazeChaseConfig, error) {
	cfg := DefaultMazeChaseConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultMazeChaseConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user and local config directories
	for _, path := range searchPaths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultMazeChaseConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMazeChaseYAML, &cfg); err != nil {
		return DefaultMazeChaseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazechase", "configs", filename)
}

// ApplyMazeChasePreset modifies the config based on a difficulty preset.
func ApplyMazeChasePreset(cfg *MazeChaseConfig, preset DifficultyPreset) error {
	if _, err := ParsePreset(string(preset)); err != nil {
		return err
	}

	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Timing.ScareDurationMs = 9000
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Timing.ScareDurationMs = 5000
	}
	return nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg MazeChaseConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

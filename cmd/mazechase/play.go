package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/platform/tui"
	"github.com/vovakirdan/mazechase/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Maze Chase.

Without --difficulty a menu asks for a preset first.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Esc            - Pause / resume
  R                - Restart right away after game over
  Ctrl+S           - Copy the current frame to the clipboard
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, longer scare, pursuers speed up from the slowest level
  normal - Start at 30% difficulty, progresses to max
  hard   - 2 lives, shorter scare, start at 70% difficulty
  fixed  - No progression, pursuers keep their configured speed

Examples:
  mazechase play
  mazechase play --difficulty hard
  mazechase play --config ./my-maze.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := checkPreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog := openLogger(flagLogFile, flagDebug)
	defer closeLog()

	// Get terminal size early for the menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	preset := flagDifficulty
	if preset == "" {
		selected, err := tui.RunDifficultyMenu(width, height)
		if err != nil {
			return fmt.Errorf("difficulty menu: %w", err)
		}
		// User quit
		if selected == nil {
			return nil
		}
		preset = string(*selected)
	}

	cfg, err := loadConfig(preset, logger)
	if err != nil {
		return err
	}
	mazechase.SetConfig(cfg)
	mazechase.SetLogger(logger)

	game, err := registry.Create(mazechase.ID)
	if err != nil {
		return err
	}

	logger.Info("starting", "difficulty", preset, "tick_rate", cfg.Timing.TickRate, "seed", flagSeed)

	runCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Timing.TickRate,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, runCfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

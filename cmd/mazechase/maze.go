package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
)

var (
	flagTicks int
	flagDir   string
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print the maze after simulating some ticks",
	Long: `Runs the simulation without a terminal UI, using a fixed clock, and
prints the resulting frame as plain text. With the same seed the output is
always the same.

Examples:
  mazechase maze
  mazechase maze --seed 42 --ticks 300 --dir left`,
	Args: cobra.NoArgs,
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Number of ticks to simulate")
	mazeCmd.Flags().StringVar(&flagDir, "dir", "", "Direction held during the run: up, down, left, right")
}

var dirActions = map[string]core.Action{
	"up":    core.ActionUp,
	"down":  core.ActionDown,
	"left":  core.ActionLeft,
	"right": core.ActionRight,
}

func runMaze(cmd *cobra.Command, args []string) error {
	if err := checkPreset(flagDifficulty); err != nil {
		return err
	}
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative")
	}
	in := core.NewInputFrame()
	if flagDir != "" {
		a, ok := dirActions[flagDir]
		if !ok {
			return fmt.Errorf("unknown direction %q", flagDir)
		}
		in.Set(a)
	}

	logger, closeLog := openLogger(flagLogFile, flagDebug)
	defer closeLog()

	cfg, err := loadConfig(flagDifficulty, logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	game := mazechase.NewWithConfig(cfg, logger)
	game.Reset(core.RuntimeConfig{TickRate: cfg.Timing.TickRate, Seed: seed})

	step := time.Second / time.Duration(cfg.Timing.TickRate)
	now := time.Unix(0, 0)
	for range flagTicks {
		now = now.Add(step)
		game.Step(now, in)
	}

	w, h := mazechase.MinScreenSize(game.Snapshot())
	screen := core.NewScreen(w, h)
	game.Render(screen)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	fmt.Fprintf(out, "seed %d, %d ticks\n", game.Seed(), flagTicks)
	return nil
}

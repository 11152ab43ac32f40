// mazechase is a maze-chase arcade game for the terminal.
//
// Usage:
//
//	mazechase [play]          - Play the game
//	mazechase list            - List available games
//	mazechase maze            - Print the maze after a number of simulated ticks
//	mazechase config          - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Log destination (default: ~/.mazechase/mazechase.log)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/mazechase/internal/games/mazechase"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - eat the dots, dodge the pursuers",
	Long: `Maze Chase is a terminal maze game. Steer through the maze, eat every
item and avoid the four pursuers. Power items scare them for a while so
they can be eaten.

Available commands:
  play     - Play the game (default)
  list     - Show all available games
  maze     - Print the maze after simulating some ticks
  config   - Print the effective configuration

Examples:
  mazechase
  mazechase play --difficulty hard
  mazechase maze --seed 42 --ticks 90
  mazechase config --difficulty easy > my.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "~/.mazechase/mazechase.log", "Log file path")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(configCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Loads the configuration the same way play does (custom file, user file,
local file, embedded defaults), applies --difficulty and --fps, and prints
the result. Redirect the output to start a custom config file.

Examples:
  mazechase config
  mazechase config --defaults
  mazechase config --difficulty hard > ~/.mazechase/configs/mazechase.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.GetDefaultYAML("mazechase"))
		return err
	}

	if err := checkPreset(flagDifficulty); err != nil {
		return err
	}

	logger, closeLog := openLogger(flagLogFile, flagDebug)
	defer closeLog()

	cfg, err := loadConfig(flagDifficulty, logger)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

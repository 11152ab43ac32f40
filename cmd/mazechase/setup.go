package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/config"
)

// openLogger creates the file logger. Logging is best effort: when the file
// cannot be opened the logger discards everything.
func openLogger(path string, debug bool) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path = expandHome(path); path != "" {
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(path), 0o755)
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mazechase",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// loadConfig loads the game config, applies the preset and command line
// overrides, and validates the result.
func loadConfig(preset string, logger *log.Logger) (config.MazeChaseConfig, error) {
	cfg, err := config.LoadMazeChase(flagConfig)
	if err != nil {
		return cfg, err
	}

	if preset != "" {
		p, err := config.ParsePreset(preset)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyMazeChasePreset(&cfg, p); err != nil {
			return cfg, err
		}
	}

	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	for _, note := range cfg.Validate() {
		logger.Warn("config adjusted", "note", note)
	}
	return cfg, nil
}

// checkPreset fails early on a misspelled --difficulty.
func checkPreset(name string) error {
	if name == "" {
		return nil
	}
	if _, err := config.ParsePreset(name); err != nil {
		return fmt.Errorf("%w (valid: easy, normal, hard, fixed)", err)
	}
	return nil
}

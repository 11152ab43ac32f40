package mazechase

import (
	"time"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// ParamsFromConfig builds simulation parameters for the shipped maze.
func ParamsFromConfig(cfg config.MazeChaseConfig) sim.Params {
	p := sim.DefaultParams()

	p.CellSize = cfg.Grid.CellSize
	p.PlayerSpeed = cfg.Player.Speed
	p.Lives = cfg.Player.Lives

	p.Tuning = sim.PursuerTuning{
		Speed:          cfg.Pursuers.Speed,
		ScaredFactor:   cfg.Pursuers.ScaredFactor,
		RedirectChance: cfg.Pursuers.RedirectChance,
		RedirectPeriod: cfg.Pursuers.RedirectPeriod,
		RedirectEvery:  cfg.Pursuers.RedirectEvery,
	}

	// Shipped roster with the behaviour tunables from the config.
	lead := cfg.Pursuers.AmbushLead
	for i, spec := range p.Pursuers {
		switch b := spec.Behavior.(type) {
		case sim.Ambusher:
			b.Lead = sim.C(lead, lead)
			p.Pursuers[i].Behavior = b
		case sim.Confused:
			b.ChaseChance = cfg.Pursuers.ConfusedChaseChance
			p.Pursuers[i].Behavior = b
		case sim.Shy:
			b.Radius = cfg.Pursuers.ShyRadius
			p.Pursuers[i].Behavior = b
		}
	}

	p.ScareDuration = time.Duration(cfg.Timing.ScareDurationMs) * time.Millisecond
	p.RestartDelay = time.Duration(cfg.Timing.RestartDelayMs) * time.Millisecond

	p.ItemScore = cfg.Scoring.Item
	p.PowerItemScore = cfg.Scoring.PowerItem
	p.PursuerScore = cfg.Scoring.Pursuer

	dm := config.NewDifficultyManager(cfg.Difficulty)
	base := cfg.Pursuers.Speed
	p.PursuerSpeed = func(level int, played uint64) float64 {
		return dm.Speed(base, level-1, int(played))
	}
	p.SpeedEveryTick = dm.TimeBased()

	return p
}

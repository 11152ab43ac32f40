// Package mazechase adapts the maze-chase simulation to the platform's
// registry.Game interface and draws it onto a core.Screen.
package mazechase

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mazechase/internal/config"
	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
	"github.com/vovakirdan/mazechase/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "mazechase"

// Package-level settings applied to games created by the registry factory.
var (
	settingsMu sync.RWMutex
	gameConfig = config.DefaultMazeChaseConfig()
	logger     = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.MazeChaseConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gameConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for the maze chase.
type Game struct {
	cfg    config.MazeChaseConfig
	logger *log.Logger

	sim     *sim.Game
	seed    int64
	screenW int
	screenH int
	events  []sim.Event
}

// New creates a game with the current package settings.
// Reset must be called before the first Step.
func New() *Game {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return NewWithConfig(gameConfig, logger)
}

// NewWithConfig creates a game with an explicit configuration and logger.
func NewWithConfig(cfg config.MazeChaseConfig, l *log.Logger) *Game {
	if l == nil {
		l = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		logger: l.WithPrefix(ID),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze Chase"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.events = nil
	g.sim = sim.New(ParamsFromConfig(g.cfg), g.seed)

	g.logger.Debug("reset", "seed", g.seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
}

// Step advances the simulation by one tick at time now.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if g.sim == nil {
		g.Reset(core.DefaultConfig())
	}

	g.processInput(in)

	res := g.sim.Tick(now)
	g.events = res.Events
	for _, e := range res.Events {
		g.logEvent(e)
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers the steering direction and handles restart requests.
func (g *Game) processInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.sim.SetDirection(sim.North)
	case in.Has(core.ActionDown):
		g.sim.SetDirection(sim.South)
	case in.Has(core.ActionLeft):
		g.sim.SetDirection(sim.West)
	case in.Has(core.ActionRight):
		g.sim.SetDirection(sim.East)
	}

	// Skip the remaining countdown
	if in.Has(core.ActionRestart) && g.sim.GameOver() {
		g.sim.Restart()
		g.logger.Debug("restart requested")
	}
}

func (g *Game) logEvent(e sim.Event) {
	switch e.Kind {
	case sim.EventItem, sim.EventPowerItem:
		g.logger.Debug(e.Kind.String(), "cell", e.Cell, "score", g.sim.Score())
	case sim.EventPursuerEaten, sim.EventLifeLost:
		g.logger.Debug(e.Kind.String(), "pursuer", e.Pursuer, "cell", e.Cell, "lives", g.sim.Lives())
	case sim.EventGameOver:
		g.logger.Info("game over", "score", g.sim.Score(), "level", g.sim.Level())
	case sim.EventLevelCleared:
		g.logger.Info("level cleared", "level", g.sim.Level(), "lives", g.sim.Lives())
	default:
		g.logger.Debug(e.Kind.String())
	}
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		dst.Clear()
		return
	}
	RenderSnapshot(dst, g.sim.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Lives:    g.sim.Lives(),
		Level:    g.sim.Level(),
		GameOver: g.sim.GameOver(),
	}
}

// Snapshot returns an immutable copy of the simulation state.
func (g *Game) Snapshot() *sim.Snapshot {
	if g.sim == nil {
		return nil
	}
	return g.sim.Snapshot()
}

// Events returns the transitions reported by the last Step.
func (g *Game) Events() []sim.Event {
	return g.events
}

// Seed returns the seed the current game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

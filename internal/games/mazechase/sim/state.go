package sim

import (
	"math/rand"
	"time"
)

// PursuerSpec describes one pursuer of the roster.
type PursuerSpec struct {
	Name     string
	Behavior Behavior
	Spawn    Coord
}

// Params holds everything a Game needs besides its seed.
type Params struct {
	Layout   Layout
	CellSize int

	PlayerSpawn Coord
	PlayerSpeed float64
	Lives       int

	Pursuers []PursuerSpec
	Tuning   PursuerTuning

	ScareDuration time.Duration
	RestartDelay  time.Duration

	ItemScore      int
	PowerItemScore int
	PursuerScore   int

	// PursuerSpeed, when set, returns the base pursuer speed for a level
	// (1-based) after the given number of ticks played in the current game.
	// Nil keeps Tuning.Speed on every level.
	PursuerSpeed func(level int, played uint64) float64
	// SpeedEveryTick re-evaluates PursuerSpeed on every playing tick
	// instead of only when a level starts.
	SpeedEveryTick bool
}

// DefaultRoster returns the four shipped pursuers in update order.
func DefaultRoster() []PursuerSpec {
	return []PursuerSpec{
		{Name: "Blinky", Behavior: Chaser{}, Spawn: C(9, 10)},
		{Name: "Pinky", Behavior: Ambusher{Lead: C(4, 4)}, Spawn: C(8, 10)},
		{Name: "Inky", Behavior: Confused{ChaseChance: 0.7}, Spawn: C(10, 10)},
		{Name: "Clyde", Behavior: Shy{Radius: 8, Retreat: RetreatCorner}, Spawn: C(9, 11)},
	}
}

// DefaultParams returns the classic tuning on the shipped maze.
func DefaultParams() Params {
	return Params{
		Layout:      DefaultLayout(),
		CellSize:    20,
		PlayerSpawn: PlayerSpawn,
		PlayerSpeed: 4.0,
		Lives:       3,
		Pursuers:    DefaultRoster(),
		Tuning: PursuerTuning{
			Speed:          4.5,
			ScaredFactor:   0.7,
			RedirectChance: 0.2,
			RedirectPeriod: 100,
			RedirectEvery:  30,
		},
		ScareDuration:  7 * time.Second,
		RestartDelay:   5 * time.Second,
		ItemScore:      10,
		PowerItemScore: 50,
		PursuerScore:   200,
	}
}

// EventKind identifies a state transition reported by Tick.
type EventKind uint8

const (
	EventItem EventKind = iota
	EventPowerItem
	EventPursuerEaten
	EventLifeLost
	EventGameOver
	EventRestart
	EventLevelCleared
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventItem:
		return "item"
	case EventPowerItem:
		return "power-item"
	case EventPursuerEaten:
		return "pursuer-eaten"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	case EventRestart:
		return "restart"
	case EventLevelCleared:
		return "level-cleared"
	default:
		return "unknown"
	}
}

// Event is one transition that happened during a tick.
type Event struct {
	Kind    EventKind
	Cell    Coord
	Pursuer string // set for EventPursuerEaten and EventLifeLost
}

// TickResult reports what a Tick did.
type TickResult struct {
	Events   []Event
	GameOver bool
}

// Game owns the grid, the player and the pursuers. It is not safe for
// concurrent use; a single driver goroutine calls Tick.
type Game struct {
	params Params
	rng    *rand.Rand
	motion Motion

	grid     *Grid
	player   *Player
	pursuers []*Pursuer

	score      int
	level      int
	gameOverAt time.Time
	now        time.Time
	ticks      uint64
	played     uint64 // playing ticks since the last restart
}

// New creates a game ready for its first tick.
func New(p Params, seed int64) *Game {
	cols, rows := p.Layout.Size()
	g := &Game{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
		motion: Motion{Cols: cols, Rows: rows, CellSize: p.CellSize},
		level:  1,
	}

	g.player = NewPlayer(g.motion, p.PlayerSpawn, p.PlayerSpeed, p.Lives)
	g.pursuers = make([]*Pursuer, 0, len(p.Pursuers))
	for _, spec := range p.Pursuers {
		g.pursuers = append(g.pursuers, NewPursuer(spec.Name, spec.Behavior, g.motion, spec.Spawn, p.Tuning))
	}
	g.grid = NewGrid(p.Layout)
	g.applyLevelSpeed()

	return g
}

// SetDirection buffers the player's next direction.
func (g *Game) SetDirection(d Dir) {
	g.player.SetNextDirection(d)
}

// Tick advances the simulation by one step at time now.
func (g *Game) Tick(now time.Time) TickResult {
	g.now = now
	g.ticks++

	var res TickResult

	if g.GameOver() {
		if now.Sub(g.gameOverAt) > g.params.RestartDelay {
			g.Restart()
			res.Events = append(res.Events, Event{Kind: EventRestart})
		} else {
			res.GameOver = true
		}
		return res
	}

	g.played++
	if g.params.SpeedEveryTick {
		g.applyLevelSpeed()
	}

	g.player.Update(g.grid.IsWall)

	cell := g.player.Cell()
	if kind, ok := g.grid.Consume(cell); ok {
		switch kind {
		case Item:
			g.score += g.params.ItemScore
			res.Events = append(res.Events, Event{Kind: EventItem, Cell: cell})
		case PowerItem:
			g.score += g.params.PowerItemScore
			for _, p := range g.pursuers {
				p.Scare(now, g.params.ScareDuration)
			}
			res.Events = append(res.Events, Event{Kind: EventPowerItem, Cell: cell})
		}
	}

	for _, p := range g.pursuers {
		p.Update(now, g.targetContext())

		if !collides(g.player.Position(), p.Position()) {
			continue
		}

		if p.Scared() {
			g.score += g.params.PursuerScore
			res.Events = append(res.Events, Event{Kind: EventPursuerEaten, Cell: p.Cell(), Pursuer: p.Name()})
			p.Reset()
			continue
		}

		res.Events = append(res.Events, Event{Kind: EventLifeLost, Cell: p.Cell(), Pursuer: p.Name()})
		if g.player.LoseLife() <= 0 {
			g.player.Die()
			g.gameOverAt = now
			res.Events = append(res.Events, Event{Kind: EventGameOver})
			res.GameOver = true
			return res
		}
		g.ResetAgents()
	}

	if g.grid.ItemsLeft() <= 0 {
		g.NextLevel()
		res.Events = append(res.Events, Event{Kind: EventLevelCleared})
	}

	return res
}

// collides reports whether two agents are within one cell on both axes.
func collides(a, b Position) bool {
	dx := a.Cell.X - b.Cell.X
	dy := a.Cell.Y - b.Cell.Y
	return dx > -1 && dx < 1 && dy > -1 && dy < 1
}

func (g *Game) targetContext() TargetContext {
	return TargetContext{
		Player: g.player.Cell(),
		Grid:   g.grid,
		Rng:    g.rng,
	}
}

// ResetAgents returns the player and all pursuers to their spawn cells.
// Score, lives and the grid are kept.
func (g *Game) ResetAgents() {
	g.player.Reset()
	for _, p := range g.pursuers {
		p.Reset()
	}
}

// NextLevel grants a bonus life, rebuilds the grid and resets the agents.
func (g *Game) NextLevel() {
	g.level++
	g.player.AddLife()
	g.grid = NewGrid(g.params.Layout)
	g.applyLevelSpeed()
	g.ResetAgents()
}

// Restart begins a new game: score zero, full lives, fresh grid.
func (g *Game) Restart() {
	g.score = 0
	g.level = 1
	g.gameOverAt = time.Time{}
	g.played = 0
	g.player = NewPlayer(g.motion, g.params.PlayerSpawn, g.params.PlayerSpeed, g.params.Lives)
	g.grid = NewGrid(g.params.Layout)
	g.applyLevelSpeed()
	for _, p := range g.pursuers {
		p.Reset()
	}
}

func (g *Game) applyLevelSpeed() {
	if g.params.PursuerSpeed == nil {
		return
	}
	speed := g.params.PursuerSpeed(g.level, g.played)
	for _, p := range g.pursuers {
		p.SetSpeed(speed)
	}
}

// GameOver reports whether the game is waiting for its restart.
func (g *Game) GameOver() bool { return !g.gameOverAt.IsZero() }

// GameOverAt returns when the game ended, or the zero time while playing.
func (g *Game) GameOverAt() time.Time { return g.gameOverAt }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the player's remaining lives.
func (g *Game) Lives() int { return g.player.Lives() }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// Ticks returns how many times Tick has been called.
func (g *Game) Ticks() uint64 { return g.ticks }

// Played returns the playing ticks since the game was created or restarted.
func (g *Game) Played() uint64 { return g.played }

// Grid returns the live grid. Callers must not mutate it.
func (g *Game) Grid() *Grid { return g.grid }

// Player returns the player agent.
func (g *Game) Player() *Player { return g.player }

// Pursuers returns the pursuers in update order.
func (g *Game) Pursuers() []*Pursuer { return g.pursuers }

// Motion returns the shared movement model.
func (g *Game) Motion() Motion { return g.motion }

// Params returns the parameters the game was created with.
func (g *Game) Params() Params { return g.params }

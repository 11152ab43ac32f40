package sim

import "time"

// AgentView is the drawable state of one agent.
type AgentView struct {
	Name     string
	Player   bool
	Behavior BehaviorKind // empty for the player
	Cell     Coord
	X, Y     float64
	Facing   Dir
	Scared   bool
	Alive    bool
	Target   Coord

	MouthAngle int     // player only, degrees
	WavePhase  float64 // pursuers only, radians
}

// Snapshot is an immutable copy of everything a renderer needs. The driver
// publishes one per tick; readers never touch the live Game.
type Snapshot struct {
	Cols     int
	Rows     int
	CellSize int
	Cells    []CellKind

	Player   AgentView
	Pursuers []AgentView

	Score     int
	Lives     int
	Level     int
	ItemsLeft int
	ItemTotal int
	Tick      uint64

	GameOver     bool
	GameOverAt   time.Time
	Now          time.Time
	RestartDelay time.Duration
}

// Snapshot captures the current state.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		Cols:         g.grid.Width(),
		Rows:         g.grid.Height(),
		CellSize:     g.motion.CellSize,
		Cells:        g.grid.Cells(),
		Player:       playerView(g.player),
		Pursuers:     make([]AgentView, 0, len(g.pursuers)),
		Score:        g.score,
		Lives:        g.player.Lives(),
		Level:        g.level,
		ItemsLeft:    g.grid.ItemsLeft(),
		ItemTotal:    g.grid.ItemTotal(),
		Tick:         g.ticks,
		GameOver:     g.GameOver(),
		GameOverAt:   g.gameOverAt,
		Now:          g.now,
		RestartDelay: g.params.RestartDelay,
	}
	for _, p := range g.pursuers {
		s.Pursuers = append(s.Pursuers, pursuerView(p))
	}
	return s
}

func playerView(p *Player) AgentView {
	pos := p.Position()
	return AgentView{
		Name:       "player",
		Player:     true,
		Cell:       pos.Cell,
		X:          pos.X,
		Y:          pos.Y,
		Facing:     pos.Facing,
		Alive:      p.Alive(),
		Target:     pos.Cell,
		MouthAngle: p.MouthAngle(),
	}
}

func pursuerView(p *Pursuer) AgentView {
	pos := p.Position()
	return AgentView{
		Name:      p.Name(),
		Behavior:  p.Behavior().Kind(),
		Cell:      pos.Cell,
		X:         pos.X,
		Y:         pos.Y,
		Facing:    pos.Facing,
		Scared:    p.Scared(),
		Alive:     true,
		Target:    p.Target(),
		WavePhase: p.WavePhase(),
	}
}

// Kind returns the cell kind at c, or Empty when out of bounds.
func (s *Snapshot) Kind(c Coord) CellKind {
	if c.X < 0 || c.X >= s.Cols || c.Y < 0 || c.Y >= s.Rows {
		return Empty
	}
	return s.Cells[c.Y*s.Cols+c.X]
}

// RestartCountdown returns the whole seconds left before a game-over
// restarts, or 0 while playing.
func (s *Snapshot) RestartCountdown() int {
	if !s.GameOver {
		return 0
	}
	elapsed := s.Now.Sub(s.GameOverAt)
	left := int(s.RestartDelay/time.Second) - int(elapsed/time.Second)
	return max(left, 0)
}

// Canvas receives draw calls from Snapshot.Draw.
type Canvas interface {
	DrawCell(c Coord, kind CellKind)
	DrawAgent(a AgentView, size int)
}

// Draw replays the snapshot onto a canvas: every cell in row-major order,
// then the player, then the pursuers in update order.
func (s *Snapshot) Draw(cv Canvas) {
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Cols; x++ {
			cv.DrawCell(C(x, y), s.Cells[y*s.Cols+x])
		}
	}
	cv.DrawAgent(s.Player, s.CellSize)
	for _, p := range s.Pursuers {
		cv.DrawAgent(p, s.CellSize)
	}
}

package sim

import (
	"math"
	"time"
)

// PursuerTuning holds the knobs shared by all pursuers.
type PursuerTuning struct {
	Speed          float64
	ScaredFactor   float64 // speed multiplier while scared
	RedirectChance float64 // per-tick chance of re-evaluating direction
	RedirectPeriod int     // the redirect counter wraps after this many ticks
	RedirectEvery  int     // re-evaluate when counter%RedirectEvery == 0
}

// Pursuer is an AI agent chasing the player.
type Pursuer struct {
	name     string
	behavior Behavior
	motion   Motion
	spawn    Coord
	tuning   PursuerTuning

	pos         Position
	scared      bool
	scaredUntil time.Time
	target      Coord
	counter     int
	wavePhase   float64
}

// NewPursuer creates a pursuer resting on its spawn cell.
func NewPursuer(name string, b Behavior, m Motion, spawn Coord, t PursuerTuning) *Pursuer {
	p := &Pursuer{
		name:     name,
		behavior: b,
		motion:   m,
		spawn:    spawn,
		tuning:   t,
		pos:      m.At(spawn, East),
	}
	p.Reset()
	return p
}

// Reset returns the pursuer to its spawn cell and clears scare and the
// redirect counter. Facing is kept.
func (p *Pursuer) Reset() {
	p.pos = p.motion.At(p.spawn, p.pos.Facing)
	p.scared = false
	p.scaredUntil = time.Time{}
	p.counter = 0
	p.target = p.spawn
}

// Scare makes the pursuer vulnerable until now+d.
func (p *Pursuer) Scare(now time.Time, d time.Duration) {
	p.scared = true
	p.scaredUntil = now.Add(d)
}

// SetSpeed changes the base speed, used when difficulty scales between levels.
func (p *Pursuer) SetSpeed(speed float64) {
	p.tuning.Speed = speed
}

// Update advances the pursuer by one tick at time now.
func (p *Pursuer) Update(now time.Time, ctx TargetContext) {
	p.wavePhase += 0.1
	if p.wavePhase > 2*math.Pi {
		p.wavePhase -= 2 * math.Pi
	}

	if p.scared && now.After(p.scaredUntil) {
		p.scared = false
	}

	ctx.Self = p.pos.Cell
	p.target = p.selectTarget(ctx)

	p.counter++
	if p.counter > p.tuning.RedirectPeriod {
		p.counter = 0
	}

	walls := ctx.Grid.IsWall
	dir := p.pos.Facing
	blocked := !p.motion.CanMove(p.pos, dir, walls)
	if blocked || ctx.Rng.Float64() < p.tuning.RedirectChance || p.redirectDue() {
		dir = p.chooseDirection(ctx)
	}

	speed := p.tuning.Speed
	if p.scared {
		speed *= p.tuning.ScaredFactor
	}
	p.pos = p.motion.Step(p.pos, dir, speed, walls)
	// A blocked pursuer still faces the direction it chose.
	p.pos.Facing = dir
}

func (p *Pursuer) redirectDue() bool {
	return p.tuning.RedirectEvery > 0 && p.counter%p.tuning.RedirectEvery == 0
}

func (p *Pursuer) selectTarget(ctx TargetContext) Coord {
	var t Coord
	if p.scared {
		t = ctx.Grid.RandomCell(ctx.Rng)
	} else {
		t = p.behavior.Target(ctx)
	}
	return ctx.Grid.Clamp(t)
}

// chooseDirection picks among the open directions: random while scared,
// otherwise the one whose neighbor is closest to the target. Ties go to the
// earliest direction in East, South, West, North order. With no open
// direction the current facing is kept.
func (p *Pursuer) chooseDirection(ctx TargetContext) Dir {
	var candidates []Dir
	for _, d := range Dirs {
		if p.motion.CanMove(p.pos, d, ctx.Grid.IsWall) {
			candidates = append(candidates, d)
		}
	}

	if len(candidates) == 0 {
		return p.pos.Facing
	}
	if p.scared {
		return candidates[ctx.Rng.Intn(len(candidates))]
	}

	best := candidates[0]
	bestDist := math.MaxInt
	for _, d := range candidates {
		dist := p.pos.Cell.Step(d).Manhattan(p.target)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

// Name returns the pursuer's name.
func (p *Pursuer) Name() string { return p.name }

// Behavior returns the target-selection strategy.
func (p *Pursuer) Behavior() Behavior { return p.behavior }

// Position returns the current position.
func (p *Pursuer) Position() Position { return p.pos }

// Cell returns the current discrete cell.
func (p *Pursuer) Cell() Coord { return p.pos.Cell }

// Spawn returns the spawn cell.
func (p *Pursuer) Spawn() Coord { return p.spawn }

// Scared reports whether the pursuer is currently vulnerable.
func (p *Pursuer) Scared() bool { return p.scared }

// ScaredUntil returns when the current scare expires.
func (p *Pursuer) ScaredUntil() time.Time { return p.scaredUntil }

// Target returns the cell chosen on the last update.
func (p *Pursuer) Target() Coord { return p.target }

// WavePhase returns the body animation phase in radians.
func (p *Pursuer) WavePhase() float64 { return p.wavePhase }

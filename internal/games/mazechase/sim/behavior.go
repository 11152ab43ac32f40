package sim

import "math/rand"

// BehaviorKind names a pursuer's target-selection strategy.
type BehaviorKind string

const (
	KindChaser   BehaviorKind = "chaser"
	KindAmbusher BehaviorKind = "ambusher"
	KindConfused BehaviorKind = "confused"
	KindShy      BehaviorKind = "shy"
)

// TargetContext is what a behavior may look at when picking a target.
type TargetContext struct {
	Self   Coord
	Player Coord
	Grid   *Grid
	Rng    *rand.Rand
}

// Behavior computes the cell a pursuer heads for while not scared.
// The result is clamped into the grid by the caller.
type Behavior interface {
	Kind() BehaviorKind
	Target(ctx TargetContext) Coord
}

// Chaser heads straight for the player's cell.
type Chaser struct{}

func (Chaser) Kind() BehaviorKind { return KindChaser }

func (Chaser) Target(ctx TargetContext) Coord {
	return ctx.Player
}

// Ambusher aims a fixed lead ahead of the player, wrapped around the grid.
type Ambusher struct {
	Lead Coord
}

func (Ambusher) Kind() BehaviorKind { return KindAmbusher }

func (a Ambusher) Target(ctx TargetContext) Coord {
	w, h := ctx.Grid.Width(), ctx.Grid.Height()
	return Coord{
		X: (ctx.Player.X + a.Lead.X) % w,
		Y: (ctx.Player.Y + a.Lead.Y) % h,
	}
}

// Confused chases the player with probability ChaseChance and otherwise
// wanders toward a random cell, re-rolled every tick.
type Confused struct {
	ChaseChance float64
}

func (Confused) Kind() BehaviorKind { return KindConfused }

func (c Confused) Target(ctx TargetContext) Coord {
	if ctx.Rng.Float64() < c.ChaseChance {
		return ctx.Player
	}
	return ctx.Grid.RandomCell(ctx.Rng)
}

// Shy chases from afar but retreats to a corner once within Radius of the player.
type Shy struct {
	Radius  int
	Retreat Coord
}

func (Shy) Kind() BehaviorKind { return KindShy }

func (s Shy) Target(ctx TargetContext) Coord {
	if ctx.Self.Manhattan(ctx.Player) < s.Radius {
		return s.Retreat
	}
	return ctx.Player
}

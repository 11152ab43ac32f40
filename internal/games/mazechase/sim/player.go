package sim

import "math"

// Player is the agent steered by input.
type Player struct {
	motion Motion
	spawn  Coord
	speed  float64

	pos        Position
	next       Dir // buffered input, applied when not blocked
	alive      bool
	lives      int
	mouthPhase float64
}

// NewPlayer creates a player resting on its spawn cell facing East.
func NewPlayer(m Motion, spawn Coord, speed float64, lives int) *Player {
	p := &Player{
		motion: m,
		spawn:  spawn,
		speed:  speed,
		lives:  lives,
	}
	p.Reset()
	return p
}

// Reset returns the player to its spawn cell. Lives are kept.
func (p *Player) Reset() {
	p.pos = p.motion.At(p.spawn, East)
	p.next = East
	p.alive = true
}

// SetNextDirection buffers a direction. The last call before a tick wins.
func (p *Player) SetNextDirection(d Dir) {
	p.next = d
}

// Update advances the player by one tick. The buffered direction replaces the
// current one whenever its neighbor cell is open.
func (p *Player) Update(walls WallFunc) {
	if !p.alive {
		return
	}

	p.mouthPhase += 0.2

	dir := p.pos.Facing
	if p.motion.CanMove(p.pos, p.next, walls) {
		dir = p.next
	}
	p.pos = p.motion.Step(p.pos, dir, p.speed, walls)
}

// LoseLife removes one life and returns how many remain.
func (p *Player) LoseLife() int {
	p.lives--
	return p.lives
}

// AddLife grants one extra life.
func (p *Player) AddLife() {
	p.lives++
}

// Die marks the player as no longer on the board.
func (p *Player) Die() {
	p.alive = false
}

// Position returns the current position.
func (p *Player) Position() Position { return p.pos }

// Cell returns the current discrete cell.
func (p *Player) Cell() Coord { return p.pos.Cell }

// Facing returns the current facing direction.
func (p *Player) Facing() Dir { return p.pos.Facing }

// NextDirection returns the buffered direction.
func (p *Player) NextDirection() Dir { return p.next }

// Alive reports whether the player is on the board.
func (p *Player) Alive() bool { return p.alive }

// Lives returns the remaining lives.
func (p *Player) Lives() int { return p.lives }

// MouthAngle returns the opening of the mouth in degrees, between 30 and 45.
func (p *Player) MouthAngle() int {
	return 30 + int(15*math.Abs(math.Sin(p.mouthPhase)))
}

package sim

import "math"

// WallFunc reports whether a cell blocks movement.
type WallFunc func(Coord) bool

// Position is an agent's location: the discrete cell, the continuous offset in
// pixel units (cell size units per cell) and the facing direction.
// Cell is always derived from X and Y, never moved on its own.
type Position struct {
	Cell   Coord
	X, Y   float64
	Facing Dir
}

// Motion converts per-tick speeds into position updates on a cols×rows grid
// of cellSize-unit cells. It is shared by the player and the pursuers.
type Motion struct {
	Cols     int
	Rows     int
	CellSize int
}

// At returns the position resting on cell c facing f.
func (m Motion) At(c Coord, f Dir) Position {
	return Position{
		Cell:   c,
		X:      float64(c.X * m.CellSize),
		Y:      float64(c.Y * m.CellSize),
		Facing: f,
	}
}

// PixelWidth returns the grid width in offset units.
func (m Motion) PixelWidth() float64 {
	return float64(m.Cols * m.CellSize)
}

// CanMove reports whether the neighbor of pos.Cell in direction d is open.
func (m Motion) CanMove(pos Position, d Dir, walls WallFunc) bool {
	return !walls(pos.Cell.Step(d))
}

// Step advances pos by speed units in direction d. A blocked neighbor leaves
// the position unchanged. Turning onto the other axis first snaps the
// coordinate being left to the cell origin, keeping agents centered in corridors.
func (m Motion) Step(pos Position, d Dir, speed float64, walls WallFunc) Position {
	if !m.CanMove(pos, d, walls) {
		return pos
	}

	if d.Horizontal() != pos.Facing.Horizontal() {
		if d.Horizontal() {
			pos.Y = float64(pos.Cell.Y * m.CellSize)
		} else {
			pos.X = float64(pos.Cell.X * m.CellSize)
		}
	}

	dx, dy := d.Delta()
	pos.X += float64(dx) * speed
	pos.Y += float64(dy) * speed
	pos.Facing = d

	// Horizontal wraparound. The cell markers one past either edge are
	// transitional and are clamped by the recompute below.
	width := m.PixelWidth()
	if pos.X < 0 {
		pos.X = width
		pos.Cell.X = m.Cols
	} else if pos.X >= width {
		pos.X = 0
		pos.Cell.X = -1
	}

	pos.Cell = m.CellOf(pos.X, pos.Y)
	return pos
}

// CellOf maps an offset to the cell it has more than half crossed into,
// clamped to the grid.
func (m Motion) CellOf(x, y float64) Coord {
	half := float64(m.CellSize / 2)
	size := float64(m.CellSize)
	cx := int(math.Floor((x + half) / size))
	cy := int(math.Floor((y + half) / size))
	return Coord{
		X: min(max(cx, 0), m.Cols-1),
		Y: min(max(cy, 0), m.Rows-1),
	}
}

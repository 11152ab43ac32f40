// Package sim contains the maze-chase simulation: the maze grid, the shared
// movement model, the player and pursuer agents and the per-tick game state.
// It is UI-agnostic and deterministic for a given seed and sequence of tick times.
package sim

import "fmt"

// Dir is a facing direction. The enumeration order East, South, West, North
// is also the tie-break order for pursuer direction choice.
type Dir uint8

const (
	East Dir = iota
	South
	West
	North
)

// Dirs lists all directions in enumeration order.
var Dirs = [4]Dir{East, South, West, North}

// String returns the direction name.
func (d Dir) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) step for this direction. Y grows downward.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case North:
		return 0, -1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the direction moves along the X axis.
func (d Dir) Horizontal() bool {
	return d == East || d == West
}

// Coord addresses one grid cell by (column, row).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighboring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// CellKind classifies a maze cell. The numeric values are the level data codes.
type CellKind uint8

const (
	Empty     CellKind = 0
	Wall      CellKind = 1
	Item      CellKind = 2
	PowerItem CellKind = 3
	Gate      CellKind = 4
)

// String returns the cell kind name.
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Item:
		return "item"
	case PowerItem:
		return "power-item"
	case Gate:
		return "gate"
	default:
		return "unknown"
	}
}

// Collectible reports whether the player consumes this kind of cell.
func (k CellKind) Collectible() bool {
	return k == Item || k == PowerItem
}

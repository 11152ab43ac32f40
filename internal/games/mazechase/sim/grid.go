package sim

import "math/rand"

// Grid is the maze for one level. Cells are stored in row-major order:
// index = y*W + x. The only mutation is consuming an item, which turns the
// cell Empty exactly once.
type Grid struct {
	w, h      int
	cells     []CellKind
	itemsLeft int
	itemTotal int
}

// NewGrid builds a grid from level data. Unknown codes become Empty and short
// rows are padded with walls; use Layout.Validate to reject such data.
func NewGrid(layout Layout) *Grid {
	w, h := layout.Size()
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]CellKind, w*h),
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			kind := Wall
			if x < len(layout[y]) {
				kind = CellKind(layout[y][x])
				if kind > Gate {
					kind = Empty
				}
			}
			g.cells[y*w+x] = kind
			if kind.Collectible() {
				g.itemTotal++
			}
		}
	}
	g.itemsLeft = g.itemTotal

	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

// Kind returns the cell kind at c, or Empty when out of bounds.
func (g *Grid) Kind(c Coord) CellKind {
	if !g.InBounds(c) {
		return Empty
	}
	return g.cells[c.Y*g.w+c.X]
}

// IsWall reports whether c is a wall. Out-of-bounds coordinates are never
// walls so agents in the middle of a tunnel wraparound can keep moving.
func (g *Grid) IsWall(c Coord) bool {
	return g.Kind(c) == Wall
}

// Consume removes an item or power item at c. It returns the consumed kind
// and true, or (Empty, false) when there was nothing to collect.
func (g *Grid) Consume(c Coord) (CellKind, bool) {
	kind := g.Kind(c)
	if !kind.Collectible() {
		return Empty, false
	}
	g.cells[c.Y*g.w+c.X] = Empty
	g.itemsLeft--
	return kind, true
}

// ItemsLeft returns the number of items and power items still on the grid.
func (g *Grid) ItemsLeft() int { return g.itemsLeft }

// ItemTotal returns the number of collectibles the level started with.
func (g *Grid) ItemTotal() int { return g.itemTotal }

// Clamp moves c into the grid bounds.
func (g *Grid) Clamp(c Coord) Coord {
	return Coord{
		X: min(max(c.X, 0), g.w-1),
		Y: min(max(c.Y, 0), g.h-1),
	}
}

// RandomCell returns a uniformly random in-bounds coordinate.
func (g *Grid) RandomCell(rng *rand.Rand) Coord {
	return Coord{X: rng.Intn(g.w), Y: rng.Intn(g.h)}
}

// Cells returns a copy of the cell kinds in row-major order.
func (g *Grid) Cells() []CellKind {
	out := make([]CellKind, len(g.cells))
	copy(out, g.cells)
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = g.Cells()
	return &c
}

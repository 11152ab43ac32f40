package sim

import "fmt"

// Layout is level data: rows of integer cell-kind codes.
type Layout [][]int

// Shipped maze dimensions.
const (
	DefaultCols = 19
	DefaultRows = 22
)

// defaultLayout is the single compiled-in maze. Codes: 0 empty, 1 wall,
// 2 item, 3 power item, 4 gate. Rows 8, 10 and 12 open onto the side tunnels.
var defaultLayout = Layout{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 3, 1, 1, 2, 1, 1, 1, 2, 1, 2, 1, 1, 1, 2, 1, 1, 3, 1},
	{1, 2, 1, 1, 2, 1, 1, 1, 2, 1, 2, 1, 1, 1, 2, 1, 1, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, 2, 1, 1, 2, 1},
	{1, 2, 2, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 2, 1, 1, 1, 0, 1, 0, 1, 1, 1, 2, 1, 1, 1, 1},
	{0, 0, 0, 1, 2, 1, 0, 0, 0, 0, 0, 0, 0, 1, 2, 1, 0, 0, 0},
	{1, 1, 1, 1, 2, 1, 0, 1, 1, 4, 1, 1, 0, 1, 2, 1, 1, 1, 1},
	{0, 0, 0, 0, 2, 0, 0, 1, 0, 0, 0, 1, 0, 0, 2, 0, 0, 0, 0},
	{1, 1, 1, 1, 2, 1, 0, 1, 1, 1, 1, 1, 0, 1, 2, 1, 1, 1, 1},
	{0, 0, 0, 1, 2, 1, 0, 0, 0, 0, 0, 0, 0, 1, 2, 1, 0, 0, 0},
	{1, 1, 1, 1, 2, 1, 0, 1, 1, 1, 1, 1, 0, 1, 2, 1, 1, 1, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 2, 1, 1, 2, 1, 1, 1, 2, 1, 2, 1, 1, 1, 2, 1, 1, 2, 1},
	{1, 3, 2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 3, 1},
	{1, 1, 2, 1, 2, 1, 2, 1, 1, 1, 1, 1, 2, 1, 2, 1, 2, 1, 1},
	{1, 2, 2, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2, 1, 2, 2, 2, 2, 1},
	{1, 2, 1, 1, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// DefaultLayout returns a copy of the shipped maze.
func DefaultLayout() Layout {
	out := make(Layout, len(defaultLayout))
	for y, row := range defaultLayout {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Size returns the layout dimensions as (cols, rows). Cols is the widest row.
func (l Layout) Size() (cols, rows int) {
	for _, row := range l {
		cols = max(cols, len(row))
	}
	return cols, len(l)
}

// Validate checks that the layout is a non-empty rectangle of known codes.
func (l Layout) Validate() error {
	cols, rows := l.Size()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("layout: empty")
	}
	for y, row := range l {
		if len(row) != cols {
			return fmt.Errorf("layout: row %d has %d cells, expected %d", y, len(row), cols)
		}
		for x, code := range row {
			if code < int(Empty) || code > int(Gate) {
				return fmt.Errorf("layout: unknown cell code %d at %s", code, C(x, y))
			}
		}
	}
	return nil
}

// Spawn points for the shipped maze.
var (
	PlayerSpawn   = C(9, 16)
	RetreatCorner = C(0, DefaultRows-1)
)

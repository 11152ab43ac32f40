package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	require.NoError(t, l.Validate())

	cols, rows := l.Size()
	assert.Equal(t, DefaultCols, cols)
	assert.Equal(t, DefaultRows, rows)

	// DefaultLayout hands out copies
	l[1][1] = int(Wall)
	assert.Equal(t, int(Item), DefaultLayout()[1][1])
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"valid", Layout{{1, 1}, {1, 2}}, false},
		{"empty", Layout{}, true},
		{"ragged", Layout{{1, 1, 1}, {1, 1}}, true},
		{"unknown code", Layout{{1, 9}}, true},
		{"negative code", Layout{{1, -1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGridClassification(t *testing.T) {
	g := NewGrid(DefaultLayout())

	assert.Equal(t, Wall, g.Kind(C(0, 0)))
	assert.Equal(t, Item, g.Kind(C(1, 1)))
	assert.Equal(t, PowerItem, g.Kind(C(1, 2)))
	assert.Equal(t, Gate, g.Kind(C(9, 9)))
	assert.Equal(t, Empty, g.Kind(C(0, 10)))

	assert.True(t, g.IsWall(C(0, 0)))
	assert.False(t, g.IsWall(C(9, 9)), "gate is passable")
}

func TestGridOutOfBoundsIsPermissive(t *testing.T) {
	g := NewGrid(DefaultLayout())

	for _, c := range []Coord{C(-1, 10), C(DefaultCols, 10), C(5, -1), C(5, DefaultRows), C(-100, -100)} {
		assert.False(t, g.InBounds(c), "%s", c)
		assert.False(t, g.IsWall(c), "%s", c)
		assert.Equal(t, Empty, g.Kind(c), "%s", c)
	}
}

func TestGridConsume(t *testing.T) {
	g := NewGrid(DefaultLayout())
	total := g.ItemsLeft()
	require.Equal(t, total, g.ItemTotal())

	// Every collectible cell is consumed exactly once
	consumed := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := C(x, y)
			before := g.Kind(c)
			left := g.ItemsLeft()

			kind, ok := g.Consume(c)
			if before.Collectible() {
				require.True(t, ok, "%s", c)
				assert.Equal(t, before, kind)
				assert.Equal(t, Empty, g.Kind(c))
				assert.Equal(t, left-1, g.ItemsLeft())
				consumed++

				_, again := g.Consume(c)
				assert.False(t, again, "%s consumed twice", c)
			} else {
				assert.False(t, ok)
				assert.Equal(t, before, g.Kind(c))
				assert.Equal(t, left, g.ItemsLeft())
			}
		}
	}

	assert.Equal(t, total, consumed)
	assert.Zero(t, g.ItemsLeft())
}

func TestGridUnknownCodesAndShortRows(t *testing.T) {
	g := NewGrid(Layout{{1, 1, 1}, {1, 7}})

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, Empty, g.Kind(C(1, 1)), "unknown code becomes empty")
	assert.Equal(t, Wall, g.Kind(C(2, 1)), "short row padded with wall")
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(DefaultLayout())
	c := g.Clone()

	_, ok := c.Consume(C(1, 1))
	require.True(t, ok)

	assert.Equal(t, Item, g.Kind(C(1, 1)))
	assert.Equal(t, g.ItemsLeft()-1, c.ItemsLeft())
}

func TestGridClampAndRandomCell(t *testing.T) {
	g := NewGrid(DefaultLayout())

	assert.Equal(t, C(0, 0), g.Clamp(C(-3, -7)))
	assert.Equal(t, C(DefaultCols-1, DefaultRows-1), g.Clamp(C(40, 40)))
	assert.Equal(t, C(4, 5), g.Clamp(C(4, 5)))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		assert.True(t, g.InBounds(g.RandomCell(rng)))
	}
}

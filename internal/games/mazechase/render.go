package mazechase

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/sim"
)

// Each maze cell is two terminal columns wide so the maze keeps its aspect.
const colsPerCell = 2

// hudHeight is the number of rows above the maze.
const hudHeight = 2

// pursuerColors gives each shipped pursuer its colour.
var pursuerColors = map[string]core.Color{
	"Blinky": core.ColorRed,
	"Pinky":  core.ColorMagenta,
	"Inky":   core.ColorCyan,
	"Clyde":  core.ColorOrange,
}

// MinScreenSize returns the smallest screen a snapshot fits on.
func MinScreenSize(snap *sim.Snapshot) (w, h int) {
	return snap.Cols * colsPerCell, snap.Rows + hudHeight
}

// RenderSnapshot draws the HUD, the maze and the agents of snap onto dst.
func RenderSnapshot(dst *core.Screen, snap *sim.Snapshot) {
	dst.Clear()
	if snap == nil {
		return
	}

	renderHUD(dst, snap)

	minW, minH := MinScreenSize(snap)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH), core.ColorGray)
		return
	}

	cv := &screenCanvas{
		dst:   dst,
		ox:    (dst.Width() - minW) / 2,
		oy:    hudHeight,
		width: minW,
	}
	snap.Draw(cv)

	if snap.GameOver {
		renderGameOver(dst, snap)
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap *sim.Snapshot) {
	hud := fmt.Sprintf(" Maze Chase  Score: %d  Lives: %d  Level: %d  Items: %d/%d",
		snap.Score, snap.Lives, snap.Level, snap.ItemsLeft, snap.ItemTotal)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderGameOver draws the game-over box with the restart countdown.
func renderGameOver(dst *core.Screen, snap *sim.Snapshot) {
	line1 := "GAME OVER"
	line2 := fmt.Sprintf("New game in %d s", snap.RestartCountdown())

	boxW := len(line2) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorRed)
	dst.DrawTextCentered(boxY+1, line1, core.ColorRed)
	dst.DrawTextCentered(boxY+3, line2, core.ColorWhite)
}

// screenCanvas implements sim.Canvas on a core.Screen.
type screenCanvas struct {
	dst   *core.Screen
	ox    int
	oy    int
	width int // maze width in columns
}

func (c *screenCanvas) DrawCell(at sim.Coord, kind sim.CellKind) {
	x := c.ox + at.X*colsPerCell
	y := c.oy + at.Y

	switch kind {
	case sim.Wall:
		c.dst.SetColored(x, y, '█', core.ColorBlue)
		c.dst.SetColored(x+1, y, '█', core.ColorBlue)
	case sim.Item:
		c.dst.SetColored(x, y, '·', core.ColorWhite)
	case sim.PowerItem:
		c.dst.SetColored(x, y, '●', core.ColorYellow)
	case sim.Gate:
		c.dst.SetColored(x, y, '═', core.ColorGray)
		c.dst.SetColored(x+1, y, '═', core.ColorGray)
	}
}

// DrawAgent places the agent at half-cell horizontal resolution, so motion
// between cells is visible.
func (c *screenCanvas) DrawAgent(a sim.AgentView, size int) {
	if size <= 0 {
		return
	}
	// An agent wrapping off the west edge sits at the full maze width for a
	// tick; it belongs in the last column.
	col := int(math.Round(a.X / float64(size) * colsPerCell))
	col = min(max(col, 0), c.width-1)
	row := int(math.Round(a.Y / float64(size)))

	r, color := agentGlyph(a)
	c.dst.SetColored(c.ox+col, c.oy+row, r, color)
}

// agentGlyph picks the rune and colour for an agent.
func agentGlyph(a sim.AgentView) (rune, core.Color) {
	if a.Player {
		if !a.Alive {
			return '✖', core.ColorGray
		}
		// Mouth nearly closed in the lower part of its range
		if a.MouthAngle < 38 {
			return '●', core.ColorYellow
		}
		switch a.Facing {
		case sim.West:
			return 'ᗤ', core.ColorYellow
		case sim.North:
			return 'ᗢ', core.ColorYellow
		case sim.South:
			return 'ᗜ', core.ColorYellow
		default:
			return 'ᗧ', core.ColorYellow
		}
	}

	if a.Scared {
		return 'ᗣ', core.ColorBrightBlue
	}
	if color, ok := pursuerColors[a.Name]; ok {
		return 'ᗣ', color
	}
	return 'ᗣ', core.ColorWhite
}

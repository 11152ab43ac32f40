package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform renderer.
type Color uint8

// Colors used by the maze, the agents and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorYellow
	ColorBlue
	ColorBrightBlue
	ColorWhite
	ColorGray
)

// String returns the color name, used in debug output and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}

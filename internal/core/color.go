package core

// Color is the foreground color of a screen cell. The platform maps each value
// to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorBrown
	ColorGray
)

// ColorByName resolves the color names used in config files.
// Unknown names map to ColorDefault.
func ColorByName(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "bright_red":
		return ColorBrightRed
	case "bright_green":
		return ColorBrightGreen
	case "bright_yellow":
		return ColorBrightYellow
	case "bright_cyan":
		return ColorBrightCyan
	case "orange":
		return ColorOrange
	case "brown":
		return ColorBrown
	case "gray":
		return ColorGray
	default:
		return ColorDefault
	}
}

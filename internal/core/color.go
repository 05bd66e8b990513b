package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal platform.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// paletteHex holds the xterm reference RGB value of each color.
var paletteHex = map[Color]string{
	ColorRed:           "#800000",
	ColorGreen:         "#008000",
	ColorYellow:        "#808000",
	ColorBlue:          "#000080",
	ColorMagenta:       "#800080",
	ColorCyan:          "#008080",
	ColorWhite:         "#c0c0c0",
	ColorBrightRed:     "#ff0000",
	ColorBrightGreen:   "#00ff00",
	ColorBrightYellow:  "#ffff00",
	ColorBrightBlue:    "#0000ff",
	ColorBrightMagenta: "#ff00ff",
	ColorBrightCyan:    "#00ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8700",
	ColorGray:          "#8a8a8a",
}

// Hex returns the reference RGB value of the color, or "" for ColorDefault.
func (c Color) Hex() string {
	return paletteHex[c]
}

// Palette returns every non-default color in declaration order.
func Palette() []Color {
	out := make([]Color, 0, len(paletteHex))
	for c := ColorRed; c <= ColorGray; c++ {
		out = append(out, c)
	}
	return out
}

package core

// Color is the foreground colour of a screen cell.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ansi holds the 256-colour palette index of every non-default colour.
var ansi = [...]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// ANSI returns the terminal palette index for c, or "" for the terminal's
// own foreground.
func (c Color) ANSI() string {
	if int(c) >= len(ansi) {
		return ""
	}
	return ansi[c]
}

// Colors lists every colour that has a palette index.
func Colors() []Color {
	out := make([]Color, 0, len(ansi))
	for c := range ansi {
		if ansi[c] != "" {
			out = append(out, Color(c))
		}
	}
	return out
}

package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 8
)

// Swatch returns an ANSI-coloured block for a colour, width characters wide.
// Uses background colour with spaces for a solid block.
func Swatch(c Colour, width int) string {
	if width <= 0 {
		width = swatchWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// FormatWithSwatch formats a colour as a swatch followed by its hex code.
func FormatWithSwatch(c Colour, width int) string {
	return fmt.Sprintf("%s %s", Swatch(c, width), c.Hex())
}

// Package colour provides the RGBA colour value used throughout retint,
// including parsing from hex and rgb()/rgba() notations, serialization back
// to both, and nearest-match lookup against a palette.
package colour

import (
	"fmt"
	"math"
	"strconv"
)

// Colour is an immutable RGBA colour. R, G and B are 8-bit channels; Alpha
// is in [0.0, 1.0] with 1.0 fully opaque. Alpha is carried through parsing
// and serialization but never participates in distance calculations.
type Colour struct {
	R     uint8
	G     uint8
	B     uint8
	Alpha float64
}

// New creates a Colour, validating every channel. Red, green and blue must
// be in [0, 255] and alpha in [0.0, 1.0]; any violation returns a
// *ValidationError and no colour is produced.
func New(red, green, blue int, alpha float64) (Colour, error) {
	if err := validateChannel("red", red); err != nil {
		return Colour{}, err
	}
	if err := validateChannel("green", green); err != nil {
		return Colour{}, err
	}
	if err := validateChannel("blue", blue); err != nil {
		return Colour{}, err
	}
	if alpha < 0.0 || alpha > 1.0 {
		return Colour{}, &ValidationError{Channel: "alpha", Value: alpha}
	}
	return Colour{R: uint8(red), G: uint8(green), B: uint8(blue), Alpha: alpha}, nil
}

// validateChannel checks that an RGB channel value is within [0, 255].
func validateChannel(name string, value int) error {
	if value < 0 || value > 255 {
		return &ValidationError{Channel: name, Value: float64(value)}
	}
	return nil
}

// Hex returns the colour as a hex string: "#rrggbb" when fully opaque,
// "#aarrggbb" otherwise, with the alpha byte first. Channels are always
// zero-padded lowercase hex.
func (c Colour) Hex() string {
	if c.Alpha != 1.0 {
		return fmt.Sprintf("#%02x%02x%02x%02x", alphaByte(c.Alpha), c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString returns the colour in functional notation: "rgb(r, g, b)" when
// fully opaque, "rgba(r, g, b, a)" otherwise. The alpha fraction is printed
// with the shortest representation that round-trips through ParseRGB.
func (c Colour) RGBString() string {
	if c.Alpha != 1.0 {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)",
			c.R, c.G, c.B, strconv.FormatFloat(c.Alpha, 'g', -1, 64))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String implements fmt.Stringer and is equivalent to RGBString.
func (c Colour) String() string {
	return c.RGBString()
}

// Distance returns the Euclidean distance to another colour in RGB space.
// Alpha is ignored.
func (c Colour) Distance(other Colour) float64 {
	dr := float64(c.R) - float64(other.R)
	dg := float64(c.G) - float64(other.G)
	db := float64(c.B) - float64(other.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// MostSimilar returns the palette entry closest to c by Euclidean RGB
// distance. The scan is stable: among equidistant entries the first in
// palette order wins. An empty (or nil) palette returns c itself.
func (c Colour) MostSimilar(palette *Palette) Colour {
	best := c
	bestDist := math.Inf(1)
	if palette == nil {
		return best
	}
	for _, candidate := range palette.Colours {
		if d := c.Distance(candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// alphaByte converts a [0.0, 1.0] alpha fraction to its nearest byte value.
func alphaByte(alpha float64) uint8 {
	return uint8(math.Round(alpha * 255))
}

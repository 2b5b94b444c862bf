package colour

import (
	"fmt"
	"strings"
)

// Palette is an ordered collection of colours. Order matters only for
// nearest-match tie-breaking: the first entry achieving the minimal distance
// wins.
type Palette struct {
	Colours []Colour
}

// NewPalette creates a Palette from the given colours.
func NewPalette(colours []Colour) *Palette {
	return &Palette{Colours: colours}
}

// FromHexStrings decodes a palette from hex colour strings. Decoding happens
// once, up front; any entry that fails to parse aborts the whole palette.
func FromHexStrings(specs []string) (*Palette, error) {
	colours := make([]Colour, len(specs))
	for i, spec := range specs {
		c, err := ParseHex(spec)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		colours[i] = c
	}
	return NewPalette(colours), nil
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Hex returns the palette colours as hex strings.
func (p *Palette) Hex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// String returns a human-readable summary of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		fmt.Fprintf(&b, "  %2d: %s (%s)\n", i+1, c.Hex(), c.RGBString())
	}
	return b.String()
}

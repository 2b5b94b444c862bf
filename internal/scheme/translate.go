package scheme

import (
	"fmt"

	"github.com/hmarchant/retint/internal/colour"
)

// Translator remaps the colour-valued leaves of a scheme tree onto the
// nearest entries of a palette. Values under skip keys are copied through
// verbatim at any nesting depth.
type Translator struct {
	palette  *colour.Palette
	skipKeys map[string]struct{}
}

// NewTranslator creates a Translator for the given palette and skip keys.
func NewTranslator(palette *colour.Palette, skipKeys []string) *Translator {
	skip := make(map[string]struct{}, len(skipKeys))
	for _, key := range skipKeys {
		skip[key] = struct{}{}
	}
	return &Translator{palette: palette, skipKeys: skip}
}

// Translate returns a new tree mirroring node with every colour-valued
// string leaf replaced by its nearest palette match, rendered back in
// rgb()/rgba() notation. The input tree is never modified.
//
// Skip-keyed values are copied without traversal and never parsed. Nested
// objects recurse. Any other value type (number, boolean, null, array)
// passes through unchanged. A leaf that fails to parse aborts the whole
// translation; no partial output is produced.
func (t *Translator) Translate(node *Object) (*Object, error) {
	translated := NewObject()
	for _, key := range node.keys {
		value := node.values[key]

		if _, skip := t.skipKeys[key]; skip {
			translated.Set(key, value)
			continue
		}

		switch v := value.(type) {
		case *Object:
			child, err := t.Translate(v)
			if err != nil {
				return nil, fmt.Errorf("translating %q: %w", key, err)
			}
			translated.Set(key, child)
		case string:
			c, err := colour.ParseRGB(v)
			if err != nil {
				return nil, fmt.Errorf("translating %q: %w", key, err)
			}
			translated.Set(key, c.MostSimilar(t.palette).RGBString())
		default:
			// Numbers, booleans, nulls and arrays carry scheme settings
			// rather than colours; copy them through untouched.
			translated.Set(key, value)
		}
	}
	return translated, nil
}

// Translate is a convenience wrapper constructing a one-shot Translator.
func Translate(node *Object, palette *colour.Palette, skipKeys []string) (*Object, error) {
	return NewTranslator(palette, skipKeys).Translate(node)
}

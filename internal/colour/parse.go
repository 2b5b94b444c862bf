package colour

import (
	"regexp"
	"strconv"
	"strings"
)

// hexPair matches one two-digit hex group.
var hexPair = regexp.MustCompile(`[0-9a-fA-F]{2}`)

// ParseHex parses "#RRGGBB" or "#AARRGGBB" (the "#" is optional). When more
// than six hex digits are present the leading two are the alpha byte, which
// is normalized to [0.0, 1.0] by dividing by 255; otherwise alpha defaults
// to 1.0. The remaining text is scanned for consecutive two-digit hex
// groups and the first three become red, green and blue.
func ParseHex(s string) (Colour, error) {
	val := strings.ReplaceAll(s, "#", "")

	alpha := 1.0
	if len(val) > 6 {
		a, err := strconv.ParseUint(val[:2], 16, 8)
		if err != nil {
			return Colour{}, &FormatError{Input: s, Reason: "invalid alpha byte"}
		}
		alpha = float64(a) / 255.0
		val = val[2:]
	}

	pairs := hexPair.FindAllString(val, 3)
	if len(pairs) < 3 {
		return Colour{}, &FormatError{Input: s, Reason: "fewer than 3 hex channel pairs"}
	}

	// The regexp guarantees each pair parses.
	r, _ := strconv.ParseUint(pairs[0], 16, 8)
	g, _ := strconv.ParseUint(pairs[1], 16, 8)
	b, _ := strconv.ParseUint(pairs[2], 16, 8)
	return New(int(r), int(g), int(b), alpha)
}

// ParseRGB parses "rgb(r, g, b)" or "rgba(r, g, b, a)". Channels are base-10
// integers, alpha a decimal fraction; a non-rgba prefix implies alpha 1.0.
// Malformed syntax returns a *FormatError; out-of-range channels a
// *ValidationError.
func ParseRGB(s string) (Colour, error) {
	start := strings.Index(s, "(")
	end := strings.Index(s, ")")
	if start < 0 || end < start {
		return Colour{}, &FormatError{Input: s, Reason: "missing parentheses"}
	}

	tokens := strings.Split(s[start+1:end], ",")
	if !strings.HasPrefix(strings.TrimSpace(s), "rgba") {
		tokens = append(tokens, "1.0")
	}
	if len(tokens) != 4 {
		return Colour{}, &FormatError{Input: s, Reason: "wrong number of channel values"}
	}

	channels := make([]int, 3)
	for i, name := range [...]string{"red", "green", "blue"} {
		v, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil {
			return Colour{}, &FormatError{Input: s, Reason: "unparsable " + name + " value"}
		}
		channels[i] = v
	}

	alpha, err := strconv.ParseFloat(strings.TrimSpace(tokens[3]), 64)
	if err != nil {
		return Colour{}, &FormatError{Input: s, Reason: "unparsable alpha value"}
	}

	return New(channels[0], channels[1], channels[2], alpha)
}

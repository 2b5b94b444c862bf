package colour

import "fmt"

// ValidationError reports a channel value outside its legal range. It is
// returned at construction time only; an existing Colour is always valid.
type ValidationError struct {
	Channel string
	Value   float64
}

func (e *ValidationError) Error() string {
	if e.Channel == "alpha" {
		return fmt.Sprintf("alpha %v not between 0.0 and 1.0", e.Value)
	}
	return fmt.Sprintf("%s value %v not between 0 and 255", e.Channel, e.Value)
}

// FormatError reports an input string that does not match a supported colour
// notation: missing delimiters, wrong token count, or unparsable numerics.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed colour %q: %s", e.Input, e.Reason)
}

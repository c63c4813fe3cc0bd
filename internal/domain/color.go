package domain

import (
	"strconv"
	"strings"
)

// ObjectColor is the classification category of an incoming object.
// The zero value is ColorUnknown, which never routes.
type ObjectColor int

const (
	ColorUnknown ObjectColor = iota
	Black
	Transparent
	Colorful

	colorCount
)

var colorLabels = [colorCount]string{
	ColorUnknown: "unknown",
	Black:        "black",
	Transparent:  "transparent",
	Colorful:     "colorful",
}

// Valid reports whether c is one of the modeled colors.
func (c ObjectColor) Valid() bool {
	return c > ColorUnknown && c < colorCount
}

// String returns the canonical label of the color.
func (c ObjectColor) String() string {
	if c >= ColorUnknown && c < colorCount {
		return colorLabels[c]
	}
	return "ObjectColor(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText encodes the color as its canonical label.
func (c ObjectColor) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, unrecognized(c.String())
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a color label.
func (c *ObjectColor) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseObjectColor maps a label to its color.
// Matching ignores case and surrounding whitespace. Labels that are not one of
// the three modeled colors return ErrUnrecognizedCategory.
func ParseObjectColor(label string) (ObjectColor, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for c := Black; c < colorCount; c++ {
		if colorLabels[c] == normalized {
			return c, nil
		}
	}
	return ColorUnknown, unrecognized(label)
}

// Colors returns every modeled color in table order.
func Colors() []ObjectColor {
	out := make([]ObjectColor, 0, colorCount-1)
	for c := Black; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

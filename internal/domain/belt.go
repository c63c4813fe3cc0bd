package domain

import (
	"strconv"
	"strings"
)

// ConveyorBelt identifies the transport lane that receives an object.
// The zero value is BeltUnknown and is never the result of a successful route.
type ConveyorBelt int

const (
	BeltUnknown ConveyorBelt = iota
	BeltA
	BeltB
	BeltC

	beltCount
)

var beltLabels = [beltCount]string{
	BeltUnknown: "?",
	BeltA:       "A",
	BeltB:       "B",
	BeltC:       "C",
}

// Valid reports whether b is one of the physical belts.
func (b ConveyorBelt) Valid() bool {
	return b > BeltUnknown && b < beltCount
}

// String returns the belt letter.
func (b ConveyorBelt) String() string {
	if b >= BeltUnknown && b < beltCount {
		return beltLabels[b]
	}
	return "ConveyorBelt(" + strconv.Itoa(int(b)) + ")"
}

// MarshalText encodes the belt as its letter.
func (b ConveyorBelt) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, unrecognized(b.String())
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes a belt letter.
func (b *ConveyorBelt) UnmarshalText(text []byte) error {
	parsed, err := ParseConveyorBelt(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseConveyorBelt maps a belt letter to its belt, ignoring case and
// surrounding whitespace.
func ParseConveyorBelt(label string) (ConveyorBelt, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	for b := BeltA; b < beltCount; b++ {
		if beltLabels[b] == normalized {
			return b, nil
		}
	}
	return BeltUnknown, unrecognized(label)
}

// Belts returns every physical belt in order.
func Belts() []ConveyorBelt {
	out := make([]ConveyorBelt, 0, beltCount-1)
	for b := BeltA; b < beltCount; b++ {
		out = append(out, b)
	}
	return out
}

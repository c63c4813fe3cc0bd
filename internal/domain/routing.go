package domain

// routes is the fixed routing table. It is indexed by color and never written
// after initialization; a missing entry stays BeltUnknown and is rejected.
var routes = [colorCount]ConveyorBelt{
	Black:       BeltA,
	Transparent: BeltB,
	Colorful:    BeltC,
}

// TableEntry is one row of the routing table.
type TableEntry struct {
	Color ObjectColor  `json:"color" yaml:"color"`
	Belt  ConveyorBelt `json:"belt" yaml:"belt"`
}

// Route returns the belt that receives objects of the given color.
// It is pure and safe for concurrent use. Colors outside the table fail with
// ErrUnrecognizedCategory and BeltUnknown.
func Route(color ObjectColor) (ConveyorBelt, error) {
	if !color.Valid() {
		return BeltUnknown, unrecognized(color.String())
	}
	belt := routes[color]
	if !belt.Valid() {
		return BeltUnknown, unrecognized(color.String())
	}
	return belt, nil
}

// RouteLabel parses a color label and routes it.
func RouteLabel(label string) (ObjectColor, ConveyorBelt, error) {
	color, err := ParseObjectColor(label)
	if err != nil {
		return ColorUnknown, BeltUnknown, err
	}
	belt, err := Route(color)
	if err != nil {
		return color, BeltUnknown, err
	}
	return color, belt, nil
}

// SourceOf returns the single color routed to belt.
func SourceOf(belt ConveyorBelt) (ObjectColor, error) {
	if belt.Valid() {
		for c := Black; c < colorCount; c++ {
			if routes[c] == belt {
				return c, nil
			}
		}
	}
	return ColorUnknown, unrecognized(belt.String())
}

// Table returns a copy of the routing table in color order.
func Table() []TableEntry {
	out := make([]TableEntry, 0, colorCount-1)
	for _, c := range Colors() {
		out = append(out, TableEntry{Color: c, Belt: routes[c]})
	}
	return out
}

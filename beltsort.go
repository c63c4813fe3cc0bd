// Package beltsort routes plastic objects to conveyor belts by color.
//
// Example usage:
//
//	belt, err := beltsort.Route(beltsort.Transparent)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(belt) // B
//
// Labels from an external classifier can be parsed first:
//
//	color, err := beltsort.ParseObjectColor("black")
//
// For batches, feeds and logging see package pkg/sorter.
package beltsort

import "github.com/bft-labs/beltsort/internal/domain"

// ObjectColor is the classification category of an incoming object.
type ObjectColor = domain.ObjectColor

// ConveyorBelt identifies the belt that receives an object.
type ConveyorBelt = domain.ConveyorBelt

// TableEntry is one row of the routing table.
type TableEntry = domain.TableEntry

// UnrecognizedCategoryError carries the input that failed to classify.
type UnrecognizedCategoryError = domain.UnrecognizedCategoryError

// Object colors.
const (
	ColorUnknown = domain.ColorUnknown
	Black        = domain.Black
	Transparent  = domain.Transparent
	Colorful     = domain.Colorful
)

// Conveyor belts.
const (
	BeltUnknown = domain.BeltUnknown
	BeltA       = domain.BeltA
	BeltB       = domain.BeltB
	BeltC       = domain.BeltC
)

// ErrUnrecognizedCategory is returned for any input outside the routing table.
var ErrUnrecognizedCategory = domain.ErrUnrecognizedCategory

// Route returns the belt for color, or ErrUnrecognizedCategory.
func Route(color ObjectColor) (ConveyorBelt, error) {
	return domain.Route(color)
}

// RouteLabel parses a color label and routes it.
func RouteLabel(label string) (ObjectColor, ConveyorBelt, error) {
	return domain.RouteLabel(label)
}

// ParseObjectColor maps a label such as "black" to its color.
func ParseObjectColor(label string) (ObjectColor, error) {
	return domain.ParseObjectColor(label)
}

// Table returns the routing table.
func Table() []TableEntry {
	return domain.Table()
}

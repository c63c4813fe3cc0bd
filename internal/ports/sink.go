package ports

import (
	"github.com/google/uuid"

	"github.com/bft-labs/beltsort/internal/domain"
)

// Assignment records the outcome of routing one label.
// Err is non-nil when the label was rejected; Belt is then BeltUnknown.
type Assignment struct {
	ID    uuid.UUID
	Label string
	Color domain.ObjectColor
	Belt  domain.ConveyorBelt
	Err   error
}

// Accepted reports whether the label was routed to a belt.
func (a Assignment) Accepted() bool {
	return a.Err == nil && a.Belt.Valid()
}

// Sink writes assignments. Implementations need not be safe for concurrent use.
type Sink interface {
	Write(a Assignment) error
	Flush() error
}

package sorter

import "github.com/bft-labs/beltsort/internal/domain"

// Summary counts the outcome of a batch or a followed feed.
type Summary struct {
	Routed   int
	Rejected int
	PerBelt  map[domain.ConveyorBelt]int
}

// NewSummary returns an empty summary.
func NewSummary() Summary {
	return Summary{PerBelt: make(map[domain.ConveyorBelt]int)}
}

// Summarize counts a slice of assignments.
func Summarize(as []Assignment) Summary {
	s := NewSummary()
	for _, a := range as {
		s.Add(a)
	}
	return s
}

// Add counts one assignment.
func (s *Summary) Add(a Assignment) {
	if s.PerBelt == nil {
		s.PerBelt = make(map[domain.ConveyorBelt]int)
	}
	if !a.Accepted() {
		s.Rejected++
		return
	}
	s.Routed++
	s.PerBelt[a.Belt]++
}

// Total is the number of assignments counted.
func (s Summary) Total() int {
	return s.Routed + s.Rejected
}

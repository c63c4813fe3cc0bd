package sorter

import (
	"runtime"

	"github.com/google/uuid"

	"github.com/bft-labs/beltsort/pkg/log"
)

// Option configures optional behavior of a Sorter.
type Option func(*options)

type options struct {
	logger  log.Logger
	workers int
	newID   func() uuid.UUID
}

func defaultOptions() options {
	return options{
		logger:  log.NewNoopLogger(),
		workers: runtime.NumCPU(),
		newID:   uuid.New,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers bounds the number of labels routed concurrently by RouteBatch.
// Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

// WithIDGenerator replaces uuid.New as the source of assignment IDs.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

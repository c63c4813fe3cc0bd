package sorter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/beltsort/internal/domain"
	"github.com/bft-labs/beltsort/internal/ports"
	"github.com/bft-labs/beltsort/pkg/log"
)

// Re-exported types so callers do not import internal packages.
type (
	// Assignment records the outcome of routing one label.
	Assignment = ports.Assignment

	// Feed delivers raw labels, one per line.
	Feed = ports.Feed

	// Sink writes assignments.
	Sink = ports.Sink
)

// ErrUnrecognizedCategory is wrapped by Assignment.Err for rejected labels.
var ErrUnrecognizedCategory = domain.ErrUnrecognizedCategory

// Sorter routes labels to belts. It holds no mutable state after New and is
// safe for concurrent use.
type Sorter struct {
	logger  log.Logger
	workers int
	newID   func() uuid.UUID
}

// New creates a Sorter.
func New(opts ...Option) *Sorter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sorter{
		logger:  o.logger,
		workers: o.workers,
		newID:   o.newID,
	}
}

// Workers returns the batch concurrency limit.
func (s *Sorter) Workers() int {
	return s.workers
}

// Route classifies one label. A rejected label is reported through
// Assignment.Err and never receives a belt.
func (s *Sorter) Route(label string) Assignment {
	a := Assignment{ID: s.newID(), Label: label}

	color, belt, err := domain.RouteLabel(label)
	if err != nil {
		a.Err = err
		s.logger.Warn("object rejected", log.String("id", a.ID.String()), log.String("label", label), log.Err(err))
		return a
	}

	a.Color = color
	a.Belt = belt
	s.logger.Debug("object routed",
		log.String("id", a.ID.String()),
		log.String("color", color.String()),
		log.String("belt", belt.String()),
	)
	return a
}

// RouteBatch routes every label with at most Workers() in flight. The result
// has one assignment per label in input order. Rejections do not stop the
// batch; only context cancellation does.
func (s *Sorter) RouteBatch(ctx context.Context, labels []string) ([]Assignment, error) {
	out := make([]Assignment, len(labels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, label := range labels {
		if gctx.Err() != nil {
			break
		}
		i, label := i, label
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.Route(label)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := Summarize(out)
	s.logger.Info("batch routed",
		log.Int("total", summary.Total()),
		log.Int("routed", summary.Routed),
		log.Int("rejected", summary.Rejected),
	)
	return out, nil
}

// Follow routes each label delivered by feed and writes the assignment to
// sink, flushing after every record. It returns when the feed closes or ctx
// ends; neither is an error. Feed errors are logged and do not stop it.
func (s *Sorter) Follow(ctx context.Context, feed Feed, sink Sink) (Summary, error) {
	summary := NewSummary()
	lines := feed.Lines()
	errs := feed.Errors()

	for {
		select {
		case <-ctx.Done():
			return summary, sink.Flush()

		case line, ok := <-lines:
			if !ok {
				return summary, sink.Flush()
			}
			if skipLine(line) {
				continue
			}
			a := s.Route(strings.TrimSpace(line))
			summary.Add(a)
			if err := sink.Write(a); err != nil {
				return summary, fmt.Errorf("write assignment: %w", err)
			}
			if err := sink.Flush(); err != nil {
				return summary, fmt.Errorf("flush sink: %w", err)
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			s.logger.Warn("feed error", log.Err(err))
		}
	}
}

// ReadLabels reads one label per line from r, skipping blank lines and lines
// starting with '#'.
func ReadLabels(r io.Reader) ([]string, error) {
	var labels []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		labels = append(labels, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read labels: %w", err)
	}
	return labels, nil
}

func skipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}

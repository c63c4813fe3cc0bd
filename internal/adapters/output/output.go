// Package output renders routing assignments for humans and machines.
package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/beltsort/internal/ports"
)

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted format names.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// New returns a sink writing to w in the named format.
func New(format string, w io.Writer) (ports.Sink, error) {
	bw := bufio.NewWriter(w)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText:
		return &textSink{w: bw}, nil
	case FormatJSON:
		return &jsonSink{w: bw, enc: json.NewEncoder(bw)}, nil
	case FormatYAML:
		return &yamlSink{w: bw}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// Record is the serialized form of an assignment.
type Record struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Belt  string `json:"belt,omitempty" yaml:"belt,omitempty"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewRecord flattens an assignment. Rejected assignments carry only the error.
func NewRecord(a ports.Assignment) Record {
	r := Record{ID: a.ID.String(), Label: a.Label}
	if a.Err != nil {
		r.Error = a.Err.Error()
		return r
	}
	r.Color = a.Color.String()
	r.Belt = a.Belt.String()
	return r
}

type textSink struct {
	w *bufio.Writer
}

func (s *textSink) Write(a ports.Assignment) error {
	var err error
	if a.Accepted() {
		_, err = fmt.Fprintf(s.w, "%s -> belt %s\n", a.Label, a.Belt)
	} else {
		_, err = fmt.Fprintf(s.w, "%s -> rejected: %v\n", a.Label, a.Err)
	}
	return err
}

func (s *textSink) Flush() error { return s.w.Flush() }

type jsonSink struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func (s *jsonSink) Write(a ports.Assignment) error {
	return s.enc.Encode(NewRecord(a))
}

func (s *jsonSink) Flush() error { return s.w.Flush() }

// yamlSink writes one document per assignment. Documents are marshaled one at
// a time so the sink can be flushed between records while following a feed.
type yamlSink struct {
	w *bufio.Writer
}

func (s *yamlSink) Write(a ports.Assignment) error {
	b, err := yaml.Marshal(NewRecord(a))
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if _, err := s.w.WriteString("---\n"); err != nil {
		return err
	}
	_, err = s.w.Write(b)
	return err
}

func (s *yamlSink) Flush() error { return s.w.Flush() }

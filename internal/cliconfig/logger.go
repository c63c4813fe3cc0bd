package cliconfig

import (
	"io"

	"github.com/bft-labs/beltsort/pkg/log"
)

// NewLogger builds the CLI logger from the resolved configuration.
func NewLogger(cfg Config, w io.Writer) (*log.ZerologAdapter, error) {
	return log.NewZerologAdapterFromConfig(w, cfg.LogLevel, cfg.LogFormat)
}

// Package log provides a logging abstraction for beltsort components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. Default implementations are provided for zerolog
// and a no-op logger for embedding and tests.
//
// # Usage
//
// Build a zerolog adapter from CLI settings:
//
//	logger, err := log.NewZerologAdapterFromConfig(os.Stderr, "debug", "console")
//
// Or use the no-op logger:
//
//	logger := log.NewNoopLogger()
package log

package log

var (
	_ Logger = NoopLogger{}
	_ Logger = (*ZerologAdapter)(nil)
)

// NoopLogger discards everything. It is the default for library users who do
// not pass a logger.
type NoopLogger struct{}

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() NoopLogger {
	return NoopLogger{}
}

func (NoopLogger) Debug(string, ...Field) {}
func (NoopLogger) Info(string, ...Field)  {}
func (NoopLogger) Warn(string, ...Field)  {}
func (NoopLogger) Error(string, ...Field) {}

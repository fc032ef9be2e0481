package logging

// NullLogger discards all log output. Used in tests and as the default sink
// when callers inject nothing.
type NullLogger struct{}

// NewNull returns a logger that discards everything.
func NewNull() Logger {
	return &NullLogger{}
}

func (n *NullLogger) Debug(msg string, fields Fields)            {}
func (n *NullLogger) Info(msg string, fields Fields)             {}
func (n *NullLogger) Warn(msg string, fields Fields)             {}
func (n *NullLogger) Error(msg string, err error, fields Fields) {}
func (n *NullLogger) WithFields(fields Fields) Logger            { return n }
func (n *NullLogger) Close() error                               { return nil }

package tracker

// Logger is the logging surface the service writes to after mutations and
// when skipping bad rows. Args alternate key/value pairs, slog-style; the
// production implementation is the slog adapter in internal/app.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger discards everything. NewService substitutes it for a nil logger,
// so tests can pass nil and stay silent.
type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (*NopLogger) Debug(string, ...any) {}
func (*NopLogger) Info(string, ...any)  {}
func (*NopLogger) Warn(string, ...any)  {}
func (*NopLogger) Error(string, ...any) {}

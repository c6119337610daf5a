package slogger

// DevNullLogger discards every record. It backs [DefaultLogger] so library
// code can log unconditionally; hosts that want output inject a [Slogger].
type DevNullLogger struct{}

// NewDevNullLogger returns a logger that drops everything.
func NewDevNullLogger() *DevNullLogger {
	return &DevNullLogger{}
}

func (l *DevNullLogger) Debug(string, ...any) {}
func (l *DevNullLogger) Info(string, ...any)  {}
func (l *DevNullLogger) Warn(string, ...any)  {}
func (l *DevNullLogger) Error(string, ...any) {}

// With returns the same logger; there is no state to accumulate.
func (l *DevNullLogger) With(...any) Logger { return l }

package logger

// NopLogger discards everything. It is the default for library callers
// that do not care about logging.
type NopLogger struct{}

func NewNopLogger() Logger {
	return NopLogger{}
}

func (NopLogger) Trace(args ...any) {}
func (NopLogger) Debug(args ...any) {}
func (NopLogger) Info(args ...any)  {}
func (NopLogger) Warn(args ...any)  {}
func (NopLogger) Error(args ...any) {}
func (NopLogger) Fatal(args ...any) {}

func (l NopLogger) WithFields(fields Fields) Logger {
	return l
}

func (l NopLogger) WithField(key string, value any) Logger {
	return l
}

func (l NopLogger) WithError(err error) Logger {
	return l
}

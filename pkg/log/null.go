package log

// nullLogger discards everything. Used by tests and by any caller that
// never wants console noise from a headless run.
type nullLogger struct{}

func (nullLogger) Infof(format string, args ...interface{})  {}
func (nullLogger) Errorf(format string, args ...interface{}) {}
func (nullLogger) Debugf(format string, args ...interface{}) {}

// Null returns a Logger that discards everything.
func Null() Logger {
	return nullLogger{}
}

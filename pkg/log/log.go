// Package log defines the small logging interface every package in this
// module depends on, backed by logrus with the same plain text formatter
// the rest of the corpus configures.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging surface the bus and CLI depend on. Nothing outside this package constructs a *logrus.Logger directly.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus, formatted for plain terminal
// output with timestamps disabled (the caller decides how noisy to be via
// SetLevel on the returned *logrus.Logger if it needs to).
func New() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// Package logging holds the logger shared by the gfxbind packages.
//
// Library code is silent by default. Binaries call SetLogger with a logger
// built by New to see shader reloads, texture loads and loop lifecycle events.
package logging

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var loggerPtr atomic.Pointer[log.Logger]

func init() {
	loggerPtr.Store(discard())
}

func discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel + 1})
}

// New returns a stderr logger at the given level.
func New(level log.Level) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gfxbind",
		Level:           level,
	})
}

// SetLogger replaces the shared logger. Passing nil restores the silent
// default. Safe for concurrent use.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = discard()
	}
	loggerPtr.Store(l)
}

// Logger returns the shared logger.
func Logger() *log.Logger {
	return loggerPtr.Load()
}

// With returns the shared logger tagged with a component name.
func With(component string) *log.Logger {
	return Logger().With("component", component)
}

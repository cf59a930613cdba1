package log

import (
	"fmt"
	"io"
)

// Logger receives arbitrary values for ad hoc debugging.
type Logger interface {
	Log(value interface{})
}

// LoggerFunc adapts a plain function into a Logger.
type LoggerFunc func(value interface{})

func (f LoggerFunc) Log(value interface{}) {
	f(value)
}

type nopLogger struct{}

func (nopLogger) Log(interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}

type writerLogger struct {
	w io.Writer
}

// Writer returns a Logger printing one value per line to w. Write errors are dropped.
func Writer(w io.Writer) Logger {
	if w == nil {
		return Nop()
	}
	return writerLogger{w: w}
}

func (l writerLogger) Log(value interface{}) {
	_, _ = fmt.Fprintln(l.w, value)
}

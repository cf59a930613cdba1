// Package log writes leveled, caller-tagged messages to the host console and
// provides the injectable Logger used for ad hoc debugging.
package log

import (
	"fmt"

	"github.com/pkg/errors"
)

type Level int

const (
	LevelDebug Level = iota
	LevelLog
	LevelWarn
	LevelError
)

var logLevel = LevelLog

func (l Level) Valid() bool {
	switch l {
	case LevelDebug, LevelLog, LevelWarn, LevelError:
		return true
	default:
		return false
	}
}

// String returns the console method name for l.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "log"
	}
}

func ParseLevel(level string) (Level, error) {
	for _, l := range []Level{LevelDebug, LevelLog, LevelWarn, LevelError} {
		if l.String() == level {
			return l, nil
		}
	}
	return -1, errors.Errorf("unknown log level %q", level)
}

func Debugf(format string, args ...interface{}) int {
	return write(LevelDebug, 1, fmt.Sprintf(format, args...))
}

func Printf(format string, args ...interface{}) int {
	return write(LevelLog, 1, fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...interface{}) int {
	return write(LevelWarn, 1, fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...interface{}) int {
	return write(LevelError, 1, fmt.Sprintf(format, args...))
}

func Debug(args ...interface{}) int {
	return write(LevelDebug, 1, fmt.Sprint(args...))
}

func Print(args ...interface{}) int {
	return write(LevelLog, 1, fmt.Sprint(args...))
}

func Warn(args ...interface{}) int {
	return write(LevelWarn, 1, fmt.Sprint(args...))
}

func Error(args ...interface{}) int {
	return write(LevelError, 1, fmt.Sprint(args...))
}

// write returns the number of bytes logged, or 0 if level is filtered out.
func write(level Level, skip int, s string) int {
	if level < logLevel {
		return 0
	}
	if caller := getCaller(skip + 1); caller != "" {
		s = caller + " - " + s
	}
	writeLog(level, s)
	return len(s)
}

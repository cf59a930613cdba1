//go:build !js
// +build !js

package log

import (
	"fmt"
	"os"
)

func writeLog(level Level, s string) {
	if debugEnabled() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", level.String(), s)
	}
}

func SetLevel(level Level) {
	if level.Valid() {
		logLevel = level
	}
}

func debugEnabled() bool {
	return os.Getenv("DEBUG") == "true"
}

// Console returns a stderr Logger when DEBUG=true, otherwise Nop.
func Console() Logger {
	if !debugEnabled() {
		return Nop()
	}
	return Writer(os.Stderr)
}

//go:build js && wasm
// +build js,wasm

package log

import (
	"fmt"
	"syscall/js"

	"github.com/mattsenior/mjs/internal/global"
)

const logLevelKey = "logLevel"

func init() {
	global.SetDefault(logLevelKey, LevelLog.String())
	global.SetDefault("setLogLevel", js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		if len(args) < 1 {
			return nil
		}
		if level, err := ParseLevel(args[0].String()); err == nil {
			SetLevel(level)
		}
		return logLevel.String()
	}))
}

func SetLevel(level Level) {
	if level.Valid() {
		logLevel = level
		global.Set(logLevelKey, logLevel.String())
	}
}

func writeLog(level Level, s string) {
	if console, ok := consoleMethod(level.String()); ok {
		console.Call(level.String(), s)
	}
}

// consoleMethod returns the host console if it is an object with a callable name.
func consoleMethod(name string) (js.Value, bool) {
	console := js.Global().Get("console")
	if console.Type() != js.TypeObject || console.Get(name).Type() != js.TypeFunction {
		return js.Value{}, false
	}
	return console, true
}

type consoleLogger struct {
	log js.Value
}

// Console returns a Logger bound to console.log, or Nop if the host has no usable console.
func Console() Logger {
	console, ok := consoleMethod("log")
	if !ok {
		return Nop()
	}
	return consoleLogger{log: console.Get("log").Call("bind", console)}
}

func (c consoleLogger) Log(value interface{}) {
	c.log.Invoke(jsValueOf(value))
}

// jsValueOf passes through anything js.ValueOf accepts and stringifies the rest.
func jsValueOf(value interface{}) interface{} {
	switch value.(type) {
	case nil, js.Value, js.Func, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		map[string]interface{}, []interface{}:
		return value
	default:
		return fmt.Sprint(value)
	}
}

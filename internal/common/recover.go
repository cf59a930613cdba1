//go:build js
// +build js

// Package common holds helpers shared by functions exported to JS.
package common

import (
	"runtime/debug"
	"syscall/js"

	"github.com/mattsenior/mjs/internal/log"
	"github.com/pkg/errors"
)

// CatchExceptionHandler passes a recovered panic to fn. Must be deferred directly.
func CatchExceptionHandler(fn func(err error)) {
	if err := RecoveredError(recover()); err != nil {
		fn(err)
	}
}

// RecoveredError converts a value returned by recover into an error, or nil if nothing panicked.
func RecoveredError(r interface{}) error {
	switch val := r.(type) {
	case nil:
		return nil
	case error:
		return val
	case js.Value:
		return js.Error{Value: val}
	default:
		return errors.Errorf("%+v", val)
	}
}

// FuncOf wraps fn for export to JS. A panic inside fn is logged and the call
// returns null instead of surfacing as a JS exception.
func FuncOf(name string, fn func(args []js.Value) interface{}) js.Func {
	return js.FuncOf(func(_ js.Value, args []js.Value) (result interface{}) {
		defer CatchExceptionHandler(func(err error) {
			log.Error("recovered from panic in ", name, ": ", err, "\n", string(debug.Stack()))
			result = nil
		})
		return fn(args)
	})
}

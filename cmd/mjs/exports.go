//go:build js
// +build js

package main

import (
	"syscall/js"

	"github.com/mattsenior/mjs/internal/bootstrap"
	"github.com/mattsenior/mjs/internal/common"
	"github.com/mattsenior/mjs/internal/dom"
	"github.com/mattsenior/mjs/internal/global"
	"github.com/mattsenior/mjs/internal/log"
)

const (
	initKey = "init"
	logKey  = "log"
)

// register exports MJS.init and MJS.log for app. It reports false, changing
// nothing, when an earlier instance already owns MJS.init.
func register(app *bootstrap.App) bool {
	if global.Get(initKey).Type() == js.TypeFunction {
		return false
	}
	global.Set(initKey, common.FuncOf("MJS.init", func([]js.Value) interface{} {
		if err := initialize(app); err != nil {
			log.Error("Failed to initialize: ", err)
		}
		return nil
	}))
	global.Set(logKey, common.FuncOf("MJS.log", func(args []js.Value) interface{} {
		logArgs(app, args)
		return nil
	}))
	return true
}

// logArgs forwards the first argument, or undefined when there is none.
func logArgs(app *bootstrap.App, args []js.Value) {
	value := js.Undefined()
	if len(args) > 0 {
		value = args[0]
	}
	app.Log(value)
}

// initialize runs the bootstrapper and publishes its state on window.MJS.
// A document without a body leaves the app uninitialized so a later call can retry.
func initialize(app *bootstrap.App) error {
	if app.Initialized() {
		return nil
	}
	env, err := dom.Global()
	if err != nil {
		return err
	}
	state := app.Init(env)
	if state == nil {
		return nil
	}
	publish(state)
	return nil
}

type jsValuer interface {
	JSValue() js.Value
}

func publish(state *bootstrap.State) {
	for key, handle := range map[string]interface{}{
		"$win":    state.Window,
		"$docEl":  state.Root,
		"$bodyEl": state.Body,
	} {
		if valuer, ok := handle.(jsValuer); ok {
			global.Set(key, valuer.JSValue())
		}
	}
	global.Set("LTIE9", state.LegacyBrowser)
	global.Set("browserTier", state.BrowserTier.String())
}

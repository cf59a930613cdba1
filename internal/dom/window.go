//go:build js
// +build js

package dom

import "syscall/js"

// JSWindow is the host window object.
type JSWindow struct {
	win js.Value
}

func (w *JSWindow) JSValue() js.Value {
	return w.win
}

func (w *JSWindow) UserAgent() string {
	navigator := w.win.Get("navigator")
	if !navigator.Truthy() {
		return ""
	}
	userAgent := navigator.Get("userAgent")
	if userAgent.Type() != js.TypeString {
		return ""
	}
	return userAgent.String()
}

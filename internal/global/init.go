//go:build js
// +build js

// Package global owns the window.MJS namespace shared with page scripts.
package global

import "syscall/js"

// Name is the property of the JS global object holding the namespace.
const Name = "MJS"

var namespace = ensure(js.Global(), Name)

// ensure returns host[name], replacing it with an empty object unless it is
// already an object or function. Properties set by earlier scripts survive.
func ensure(host js.Value, name string) js.Value {
	ns := host.Get(name)
	switch ns.Type() {
	case js.TypeObject, js.TypeFunction:
		return ns
	}
	ns = js.Global().Get("Object").New()
	host.Set(name, ns)
	return ns
}

// Namespace returns window.MJS.
func Namespace() js.Value {
	return namespace
}

// SetDefault sets key only if it is currently undefined.
func SetDefault(key string, value interface{}) {
	if namespace.Get(key).IsUndefined() {
		namespace.Set(key, value)
	}
}

func Set(key string, value interface{}) {
	namespace.Set(key, value)
}

func Get(key string) js.Value {
	return namespace.Get(key)
}

//go:build js
// +build js

package domtest

import (
	"strings"
	"syscall/js"
	"testing"
)

var jsObject = js.Global().Get("Object")

// DocumentOptions shapes the document installed by InstallDocument.
type DocumentOptions struct {
	RootClasses []string
	NoBody      bool
	UserAgent   string
}

// JSDocument holds the JS objects standing in for document.documentElement and document.body.
type JSDocument struct {
	Document js.Value
	Root     js.Value
	Body     js.Value
}

// InstallDocument replaces the global document and navigator for the rest of the test.
func InstallDocument(tb testing.TB, options DocumentOptions) *JSDocument {
	tb.Helper()
	doc := &JSDocument{
		Document: jsObject.New(),
		Root:     NewJSElement(tb, options.RootClasses...),
		Body:     js.Null(),
	}
	if !options.NoBody {
		doc.Body = NewJSElement(tb)
	}
	doc.Document.Set("documentElement", doc.Root)
	doc.Document.Set("body", doc.Body)

	navigator := jsObject.New()
	navigator.Set("userAgent", options.UserAgent)

	StubGlobal(tb, "document", doc.Document)
	StubGlobal(tb, "navigator", navigator)
	return doc
}

// NewJSElement returns an object with a minimal classList: contains, add and value.
func NewJSElement(tb testing.TB, classes ...string) js.Value {
	tb.Helper()
	classes = append([]string(nil), classes...)
	classList := jsObject.New()
	classList.Set("value", strings.Join(classes, " "))

	contains := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		for _, c := range classes {
			if c == args[0].String() {
				return true
			}
		}
		return false
	})
	add := js.FuncOf(func(_ js.Value, args []js.Value) interface{} {
		for _, arg := range args {
			class := arg.String()
			found := false
			for _, c := range classes {
				found = found || c == class
			}
			if !found {
				classes = append(classes, class)
			}
		}
		classList.Set("value", strings.Join(classes, " "))
		return nil
	})
	tb.Cleanup(func() {
		contains.Release()
		add.Release()
	})
	classList.Set("contains", contains)
	classList.Set("add", add)

	elem := jsObject.New()
	elem.Set("classList", classList)
	return elem
}

// ClassValue returns the element's classList.value.
func ClassValue(elem js.Value) string {
	return elem.Get("classList").Get("value").String()
}

// StubGlobal defines globalThis[name] as value until the test ends.
// Accessor properties such as Node's navigator are replaced too. Browsers
// keep window.document non-configurable, so run these under go_js_wasm_exec (Node).
func StubGlobal(tb testing.TB, name string, value interface{}) {
	tb.Helper()
	global := js.Global()
	previous := jsObject.Call("getOwnPropertyDescriptor", global, name)
	jsObject.Call("defineProperty", global, name, map[string]interface{}{
		"value":        value,
		"writable":     true,
		"configurable": true,
	})
	tb.Cleanup(func() {
		if previous.IsUndefined() {
			js.Global().Delete(name)
			return
		}
		jsObject.Call("defineProperty", global, name, previous)
	})
}

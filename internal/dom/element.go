//go:build js
// +build js

package dom

import "syscall/js"

// JSElement is a live DOM element.
type JSElement struct {
	elem js.Value
}

var _ Element = (*JSElement)(nil)

// NewFromJS wraps elem, returning nil for null or undefined.
func NewFromJS(elem js.Value) *JSElement {
	if elem.IsNull() || elem.IsUndefined() {
		return nil
	}
	return &JSElement{elem}
}

func (e *JSElement) JSValue() js.Value {
	return e.elem
}

func (e *JSElement) HasClass(class string) bool {
	return e.elem.Get("classList").Call("contains", class).Bool()
}

func (e *JSElement) AddClass(class string) {
	e.elem.Get("classList").Call("add", class)
}

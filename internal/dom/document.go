//go:build js
// +build js

package dom

import (
	"syscall/js"

	"github.com/pkg/errors"
)

// Document is the live browser environment.
type Document struct {
	window     *JSWindow
	root, body *JSElement
}

var _ Environment = (*Document)(nil)

// Global looks up window, document.documentElement and document.body.
func Global() (*Document, error) {
	win := js.Global()
	document := win.Get("document")
	if !document.Truthy() {
		return nil, errors.New("dom: document is not available")
	}
	root := NewFromJS(document.Get("documentElement"))
	if root == nil {
		return nil, errors.New("dom: document has no root element")
	}
	body := NewFromJS(document.Get("body"))
	if body == nil {
		return nil, errors.New("dom: document has no body yet")
	}
	return &Document{
		window: &JSWindow{win: win},
		root:   root,
		body:   body,
	}, nil
}

func (d *Document) Window() Window {
	return d.window
}

func (d *Document) RootElement() Element {
	return d.root
}

func (d *Document) Body() Element {
	return d.body
}

// Package dom describes the slice of a browser environment the bootstrapper needs.
package dom

// Element is a node whose class list can be queried and extended.
type Element interface {
	HasClass(class string) bool
	AddClass(class string)
}

// Window is the host window.
type Window interface {
	UserAgent() string
}

// Environment exposes the host window plus the document's root and body elements.
type Environment interface {
	Window() Window
	RootElement() Element
	Body() Element
}

// Package domtest provides in-memory dom implementations for tests.
package domtest

import (
	"sync"

	"github.com/mattsenior/mjs/internal/dom"
)

type Element struct {
	mu       sync.Mutex
	classes  []string
	addCalls int
}

var _ dom.Element = (*Element)(nil)

func NewElement(classes ...string) *Element {
	return &Element{classes: append([]string(nil), classes...)}
}

func (e *Element) HasClass(class string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexOf(class) >= 0
}

func (e *Element) AddClass(class string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.addCalls++
	if e.indexOf(class) < 0 {
		e.classes = append(e.classes, class)
	}
}

func (e *Element) indexOf(class string) int {
	for i, c := range e.classes {
		if c == class {
			return i
		}
	}
	return -1
}

// Classes returns a copy of the current class list in insertion order.
func (e *Element) Classes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.classes...)
}

// AddClassCalls counts AddClass invocations, including ones that were no-ops.
func (e *Element) AddClassCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.addCalls
}

type Window struct {
	Agent string
}

func (w *Window) UserAgent() string {
	return w.Agent
}

type Environment struct {
	Win      *Window
	Root     *Element
	BodyElem *Element
}

var _ dom.Environment = (*Environment)(nil)

// NewEnvironment returns an environment whose root element starts with rootClasses.
func NewEnvironment(rootClasses ...string) *Environment {
	return &Environment{
		Win:      &Window{},
		Root:     NewElement(rootClasses...),
		BodyElem: NewElement(),
	}
}

func (e *Environment) Window() dom.Window {
	return e.Win
}

func (e *Environment) RootElement() dom.Element {
	return e.Root
}

func (e *Environment) Body() dom.Element {
	return e.BodyElem
}

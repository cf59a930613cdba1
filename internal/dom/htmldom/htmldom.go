// Package htmldom runs the bootstrapper against a static HTML document, outside a browser.
package htmldom

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattsenior/mjs/internal/dom"
	"github.com/pkg/errors"
)

type Element struct {
	sel *goquery.Selection
}

var _ dom.Element = (*Element)(nil)

func (e *Element) HasClass(class string) bool {
	return e.sel.HasClass(class)
}

func (e *Element) AddClass(class string) {
	e.sel.AddClass(class)
}

// Selection exposes the underlying goquery selection.
func (e *Element) Selection() *goquery.Selection {
	return e.sel
}

type Window struct {
	userAgent string
}

func (w *Window) UserAgent() string {
	return w.userAgent
}

type Environment struct {
	doc        *goquery.Document
	window     *Window
	root, body *Element
}

var _ dom.Environment = (*Environment)(nil)

// Parse reads an HTML document. userAgent is reported as the window's navigator.userAgent.
func Parse(r io.Reader, userAgent string) (*Environment, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "htmldom: failed to parse document")
	}
	root := doc.Find("html").First()
	if root.Length() == 0 {
		return nil, errors.New("htmldom: document has no html element")
	}
	body := root.Find("body").First()
	if body.Length() == 0 {
		return nil, errors.New("htmldom: document has no body element")
	}
	return &Environment{
		doc:    doc,
		window: &Window{userAgent: userAgent},
		root:   &Element{sel: root},
		body:   &Element{sel: body},
	}, nil
}

func (e *Environment) Window() dom.Window {
	return e.window
}

func (e *Environment) RootElement() dom.Element {
	return e.root
}

func (e *Environment) Body() dom.Element {
	return e.body
}

// Render writes the document, including any class changes, to w.
func (e *Environment) Render(w io.Writer) error {
	contents, err := e.doc.Html()
	if err != nil {
		return errors.Wrap(err, "htmldom: failed to render document")
	}
	_, err = io.WriteString(w, contents)
	return errors.Wrap(err, "htmldom: failed to write document")
}

// Package domtest provides in-memory DOM fakes for native tests.
package domtest

import (
	"fmt"

	"github.com/vcrobe/nojs-counter/dom"
)

var (
	_ dom.Element  = (*Element)(nil)
	_ dom.Document = (*Document)(nil)
)

// Element records the text written to it and the click handlers attached to it.
type Element struct {
	Text string

	// Writes counts SetText calls.
	Writes int

	handlers map[int]func()
	nextID   int
}

// NewElement returns an element with the given initial text.
func NewElement(text string) *Element {
	return &Element{Text: text, handlers: make(map[int]func())}
}

// SetText implements dom.TextSetter.
func (e *Element) SetText(text string) {
	e.Text = text
	e.Writes++
}

// OnClick implements dom.Clickable.
func (e *Element) OnClick(handler func()) func() {
	if e.handlers == nil {
		e.handlers = make(map[int]func())
	}
	id := e.nextID
	e.nextID++
	e.handlers[id] = handler

	return func() {
		delete(e.handlers, id)
	}
}

// Click runs every attached handler to completion, like a browser click event.
func (e *Element) Click() {
	for id := 0; id < e.nextID; id++ {
		if h, ok := e.handlers[id]; ok {
			h()
		}
	}
}

// Listeners returns the number of attached click handlers.
func (e *Element) Listeners() int {
	return len(e.handlers)
}

// Document maps selectors to fake elements.
type Document struct {
	Elements map[string]*Element
}

// NewDocument returns a document holding the given selector/element pairs.
func NewDocument(elements map[string]*Element) *Document {
	return &Document{Elements: elements}
}

// Query implements dom.Document.
func (d *Document) Query(selector string) (dom.Element, error) {
	el, ok := d.Elements[selector]
	if !ok {
		return nil, fmt.Errorf("query %q: %w", selector, dom.ErrNotFound)
	}
	return el, nil
}

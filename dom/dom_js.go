//go:build js || wasm
// +build js wasm

package dom

import (
	"fmt"
	"syscall/js"
)

// Compile-time assertions that the js-backed types satisfy the interfaces.
var (
	_ Document = (*JSDocument)(nil)
	_ Element  = (*JSElement)(nil)
)

// JSDocument wraps the global `document` object.
type JSDocument struct {
	doc js.Value
}

// Global returns the page's document.
func Global() *JSDocument {
	return &JSDocument{doc: js.Global().Get("document")}
}

// Query returns the first element matching selector.
func (d *JSDocument) Query(selector string) (Element, error) {
	if !d.doc.Truthy() {
		return nil, fmt.Errorf("query %q: document is not available", selector)
	}

	el := d.doc.Call("querySelector", selector)
	if !el.Truthy() {
		return nil, fmt.Errorf("query %q: %w", selector, ErrNotFound)
	}

	return &JSElement{Value: el}, nil
}

// Body returns the <body> element, or an undefined value if there is none.
func (d *JSDocument) Body() js.Value {
	if !d.doc.Truthy() {
		return js.Undefined()
	}
	return d.doc.Get("body")
}

// JSElement is a DOM node reference.
type JSElement struct {
	js.Value
}

// SetText replaces the element's text content.
func (e *JSElement) SetText(text string) {
	e.Set("textContent", text)
}

// OnClick attaches handler as a "click" listener.
func (e *JSElement) OnClick(handler func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	e.Call("addEventListener", "click", cb)

	return func() {
		e.Call("removeEventListener", "click", cb)
		cb.Release()
	}
}

// Package dom defines the small slice of the browser DOM the counter needs.
//
// The interfaces in this file have NO build tags, so code written against them
// compiles and runs both in WASM and in native tests. The syscall/js backed
// implementation lives in dom_js.go; in-memory fakes live in dom/domtest.
package dom

import "errors"

// ErrNotFound is returned when a selector matches no element.
var ErrNotFound = errors.New("element not found")

// TextSetter is an element whose text content can be replaced.
type TextSetter interface {
	SetText(text string)
}

// Clickable is an element that can notify Go code about clicks.
// The returned func detaches the handler and frees any resources held for it.
type Clickable interface {
	OnClick(handler func()) (release func())
}

// Element is a node that supports both operations.
type Element interface {
	TextSetter
	Clickable
}

// Document looks up elements by CSS selector.
type Document interface {
	Query(selector string) (Element, error)
}

// Package widget binds a counter to one display element and two buttons.
package widget

import (
	"errors"
	"fmt"

	"github.com/vcrobe/nojs-counter/counter"
	"github.com/vcrobe/nojs-counter/dom"
)

// ErrMissingElement is returned by New when a required element is nil.
var ErrMissingElement = errors.New("missing element")

// Config carries the element references the widget is bound to.
type Config struct {
	Display   dom.TextSetter
	Increment dom.Clickable
	Decrement dom.Clickable
}

// Widget owns the counter state and the elements that show and change it.
// All methods are expected to run on the page's event loop.
type Widget struct {
	count     counter.Counter
	display   dom.TextSetter
	increment dom.Clickable
	decrement dom.Clickable
	releases  []func()
}

// New validates cfg and returns an unbound widget at 0.
func New(cfg Config) (*Widget, error) {
	switch {
	case cfg.Display == nil:
		return nil, fmt.Errorf("%w: display", ErrMissingElement)
	case cfg.Increment == nil:
		return nil, fmt.Errorf("%w: increment button", ErrMissingElement)
	case cfg.Decrement == nil:
		return nil, fmt.Errorf("%w: decrement button", ErrMissingElement)
	}

	return &Widget{
		display:   cfg.Display,
		increment: cfg.Increment,
		decrement: cfg.Decrement,
	}, nil
}

// Bind subscribes Render to counter changes, attaches the click handlers and
// renders the current value. Calling Bind on an already bound widget is a no-op.
func (w *Widget) Bind() {
	if w.releases != nil {
		return
	}
	w.releases = []func(){
		w.count.Subscribe(w.Render),
		w.increment.OnClick(w.Increment),
		w.decrement.OnClick(w.Decrement),
	}
	w.Render()
}

// Release detaches the click handlers and the render subscription.
// The display keeps its last value.
func (w *Widget) Release() {
	for _, release := range w.releases {
		release()
	}
	w.releases = nil
}

// Increment adds one. A bound widget re-renders through its subscription.
func (w *Widget) Increment() {
	w.count.Increment()
}

// Decrement subtracts one. A bound widget re-renders through its subscription.
func (w *Widget) Decrement() {
	w.count.Decrement()
}

// Render writes the current value into the display element.
func (w *Widget) Render() {
	w.display.SetText(w.count.String())
}

// Value returns the current counter value.
func (w *Widget) Value() int {
	return w.count.Value()
}

// FromDocument looks up the display and both buttons by selector, once, and
// returns an unbound widget. A failed lookup is returned as is.
func FromDocument(doc dom.Document, display, increment, decrement string) (*Widget, error) {
	displayEl, err := doc.Query(display)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	incrementEl, err := doc.Query(increment)
	if err != nil {
		return nil, fmt.Errorf("increment button: %w", err)
	}
	decrementEl, err := doc.Query(decrement)
	if err != nil {
		return nil, fmt.Errorf("decrement button: %w", err)
	}

	return New(Config{
		Display:   displayEl,
		Increment: incrementEl,
		Decrement: decrementEl,
	})
}

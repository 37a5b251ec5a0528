// Package components holds the counter expressed as a nojs component.
package components

import (
	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/counter"
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

// Element ids rendered by CounterPanel. They are prefixed so a panel mounted
// under #app never duplicates the host page's static #count, #add and #subtract.
const (
	DisplayID   = "app-count"
	IncrementID = "app-add"
	DecrementID = "app-subtract"
)

// CounterPanel renders its own display and buttons. Once initialised it
// re-renders via StateHasChanged() on every counter change.
type CounterPanel struct {
	runtime.ComponentBase

	count       counter.Counter
	unsubscribe func()
}

// OnInit subscribes the panel to counter changes.
func (c *CounterPanel) OnInit() {
	c.unsubscribe = c.count.Subscribe(c.StateHasChanged)
	console.Debug("CounterPanel mounted")
}

// OnDestroy drops the counter subscription.
func (c *CounterPanel) OnDestroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	console.Debug("CounterPanel unmounted at", c.Value())
}

// Increment adds one to the counter.
func (c *CounterPanel) Increment() {
	c.count.Increment()
}

// Decrement subtracts one from the counter.
func (c *CounterPanel) Decrement() {
	c.count.Decrement()
}

// Value returns the current counter value.
func (c *CounterPanel) Value() int {
	return c.count.Value()
}

// Render implements runtime.Component.
func (c *CounterPanel) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "counter"},
		vdom.Heading(1, c.count.String(), map[string]any{"id": DisplayID}),
		vdom.Button("-", map[string]any{
			"id":      DecrementID,
			"onClick": c.Decrement,
		}),
		vdom.Button("+", map[string]any{
			"id":      IncrementID,
			"onClick": c.Increment,
		}),
	)
}

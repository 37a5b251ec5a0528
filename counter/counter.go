// Package counter holds the integer state behind the counter widget.
package counter

import (
	"strconv"

	"github.com/vcrobe/nojs-counter/signals"
)

// Counter is a single unbounded integer backed by a signal, so views can
// subscribe to changes. The zero value is a counter at 0.
type Counter struct {
	value signals.Signal[int]
}

// Increment adds one, notifies subscribers and returns the new value.
func (c *Counter) Increment() int {
	return c.value.Update(func(v int) int { return v + 1 })
}

// Decrement subtracts one, notifies subscribers and returns the new value.
// There is no lower bound.
func (c *Counter) Decrement() int {
	return c.value.Update(func(v int) int { return v - 1 })
}

// Value returns the current value.
func (c *Counter) Value() int {
	return c.value.Get()
}

// String returns the decimal text of the current value, e.g. "-2".
func (c *Counter) String() string {
	return strconv.Itoa(c.Value())
}

// Subscribe registers fn to run after every change and returns its unsubscribe func.
func (c *Counter) Subscribe(fn func()) (unsubscribe func()) {
	return c.value.Subscribe(fn)
}

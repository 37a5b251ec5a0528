// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
	}
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, calling OnInit
// first when the component implements runtime.Initializer.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	if initializer, ok := r.component.(runtime.Initializer); ok {
		initializer.OnInit()
	}
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many times the component has been rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// Click runs the OnClick handler of the node with the given id in the current
// VDOM, as a browser click on the mounted element would. It reports whether
// such a handler was found.
func (r *TestRenderer) Click(id string) bool {
	n := r.currentVDOM.FindByID(id)
	if n == nil || n.OnClick == nil {
		return false
	}
	n.OnClick()
	return true
}

//go:build js || wasm
// +build js wasm

package runtime

import "github.com/vcrobe/nojs-counter/vdom"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl renders a single root component under a mount element and
// patches the DOM on every subsequent render.
type RendererImpl struct {
	currentComponent Component
	initialized      bool
	mountID          string
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
}

// NewRenderer creates a renderer that mounts under the element matching mountID.
func NewRenderer(mountID string) *RendererImpl {
	return &RendererImpl{mountID: mountID}
}

// SetCurrentComponent replaces the root component. The previous root, if any,
// receives OnDestroy and the next render starts from a cleared mount point.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	if r.currentComponent != nil {
		if cleaner, ok := r.currentComponent.(Cleaner); ok {
			r.callOnDestroy(cleaner)
		}
	}

	r.currentComponent = comp
	r.initialized = false
	vdom.Clear(r.mountID, r.prevVDOM)
	r.prevVDOM = nil
}

// RenderRoot builds the VDOM tree from the current component and applies it.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}

	r.currentComponent.SetRenderer(r)

	if !r.initialized {
		// Call OnInit only once, before first render
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer)
		}
		r.initialized = true
	}

	newVDOM := r.currentComponent.Render(r)

	if r.prevVDOM == nil {
		vdom.Clear(r.mountID, nil)
		vdom.RenderToSelector(r.mountID, newVDOM)
	} else {
		vdom.Patch(r.mountID, r.prevVDOM, newVDOM)
	}

	r.prevVDOM = newVDOM
}

// ReRender patches the DOM with minimal changes.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

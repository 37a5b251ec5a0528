package runtime

import "github.com/vcrobe/nojs-counter/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that need setup before their first render.
type Initializer interface {
	OnInit()
}

// Cleaner is implemented by components that hold resources to free when they
// are replaced or the renderer shuts down.
type Cleaner interface {
	OnDestroy()
}

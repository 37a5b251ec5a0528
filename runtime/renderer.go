package runtime

// Renderer defines the runtime operations a mounted component may call.
// This interface has NO build tags, so components and the test renderer
// share one Render() signature with the WASM implementation.
type Renderer interface {
	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}

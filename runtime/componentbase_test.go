//go:build !wasm
// +build !wasm

package runtime

import "testing"

type countingRenderer struct {
	renders int
}

func (r *countingRenderer) ReRender() { r.renders++ }

func TestComponentBase_StateHasChangedWithoutRenderer(t *testing.T) {
	var b ComponentBase

	// Must not panic when the component was never mounted.
	b.StateHasChanged()
}

func TestComponentBase_StateHasChangedTriggersReRender(t *testing.T) {
	var b ComponentBase
	r := &countingRenderer{}
	b.SetRenderer(r)

	b.StateHasChanged()
	b.StateHasChanged()

	if r.renders != 2 {
		t.Errorf("Expected 2 re-renders, got %d", r.renders)
	}
}

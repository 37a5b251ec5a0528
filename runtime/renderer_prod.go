//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

import "github.com/vcrobe/nojs-counter/console"

// callOnInit invokes the OnInit lifecycle method in production mode.
// Panics are recovered and logged so one faulty hook does not take the page down.
func (r *RendererImpl) callOnInit(initializer Initializer) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnInit panic in component mounted at", r.mountID, ":", rec)
		}
	}()
	initializer.OnInit()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner) {
	defer func() {
		if rec := recover(); rec != nil {
			console.Error("OnDestroy panic in component mounted at", r.mountID, ":", rec)
		}
	}()
	cleaner.OnDestroy()
}

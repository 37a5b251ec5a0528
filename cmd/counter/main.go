//go:build js || wasm
// +build js wasm

package main

import (
	"syscall/js"

	"github.com/vcrobe/nojs-counter/components"
	"github.com/vcrobe/nojs-counter/config"
	"github.com/vcrobe/nojs-counter/console"
	"github.com/vcrobe/nojs-counter/dom"
	"github.com/vcrobe/nojs-counter/runtime"
	"github.com/vcrobe/nojs-counter/widget"
)

func main() {
	doc := dom.Global()

	// 1. Read overrides from data-counter-* attributes on <body>
	cfg, err := config.FromLookup(datasetLookup(doc.Body()))
	if err != nil {
		fail("Invalid counter configuration:", err)
	}

	if level, ok := console.ParseLevel(cfg.LogLevel); ok {
		console.SetLevel(level)
	} else {
		console.Warn("Unknown log level", cfg.LogLevel, "- using log")
	}

	// 2. Attach to the page
	switch cfg.Mode {
	case config.MountMode:
		renderer := runtime.NewRenderer(cfg.MountSelector)
		renderer.SetCurrentComponent(&components.CounterPanel{})
		renderer.RenderRoot()
	default:
		w, err := widget.FromDocument(doc, cfg.DisplaySelector, cfg.IncrementSelector, cfg.DecrementSelector)
		if err != nil {
			fail("Counter startup failed:", err)
		}
		w.Bind()
	}

	console.Log("counter started in", string(cfg.Mode), "mode")

	// Keep the Go program running
	select {}
}

func datasetLookup(body js.Value) func(string) (string, bool) {
	return func(key string) (string, bool) {
		if !body.Truthy() {
			return "", false
		}
		v := body.Get("dataset").Get(key)
		if v.Type() != js.TypeString {
			return "", false
		}
		return v.String(), true
	}
}

// fail reports a startup fault and stops the program.
func fail(msg string, err error) {
	console.Error(msg, err)
	panic(msg + " " + err.Error())
}

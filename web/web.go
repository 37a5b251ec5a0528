// Package web embeds the host page served by counter-server.
package web

import _ "embed"

// IndexHTML is the host page. It carries the #count display, the #add and
// #subtract buttons, an #app mount point and the wasm_exec.js bootstrap.
//
//go:embed index.html
var IndexHTML []byte

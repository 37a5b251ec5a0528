//go:build js || wasm

package console

import (
	"fmt"
	"syscall/js"
)

const prefix = "[counter]"

func emit(l Level, method string, args []any) {
	if !Enabled(l) {
		return
	}
	console := js.Global().Get("console")
	if !console.Truthy() {
		return
	}
	console.Call(method, append([]any{prefix}, normalize(args)...)...)
}

// normalize converts values js.ValueOf cannot handle (errors, ints of odd
// widths, arbitrary structs) into strings.
func normalize(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case nil, bool, int, float64, string, js.Value:
			out[i] = v
		case error:
			out[i] = v.Error()
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}

func Debug(args ...any) {
	emit(DebugLevel, "debug", args)
}

func Log(args ...any) {
	emit(LogLevel, "log", args)
}

func Warn(args ...any) {
	emit(WarnLevel, "warn", args)
}

func Error(args ...any) {
	emit(ErrorLevel, "error", args)
}

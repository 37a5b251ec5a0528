package console

import "sync/atomic"

// Level is the minimum severity forwarded to the browser console.
type Level int32

const (
	DebugLevel Level = iota
	LogLevel
	WarnLevel
	ErrorLevel
)

var minLevel atomic.Int32

func init() {
	minLevel.Store(int32(LogLevel))
}

// SetLevel changes the minimum level. Messages below it are dropped.
func SetLevel(l Level) {
	minLevel.Store(int32(l))
}

// ParseLevel maps "debug", "log", "warn" and "error" to a Level.
// Unknown names fall back to LogLevel and report false.
func ParseLevel(name string) (Level, bool) {
	switch name {
	case "debug":
		return DebugLevel, true
	case "log", "info":
		return LogLevel, true
	case "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	}
	return LogLevel, false
}

// Enabled reports whether messages at l are forwarded.
func Enabled(l Level) bool {
	return int32(l) >= minLevel.Load()
}

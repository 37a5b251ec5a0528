package main

import (
	"fmt"
	"os"

	"github.com/vcrobe/nojs-counter/internal/log"
)

// envOr returns the value of key, or def when it is unset or empty.
func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// logOptions maps the --log-level and --log-format flags to logger options.
func logOptions(level, format string) ([]log.Option, error) {
	opts := []log.Option{log.WithLogLevel(level)}
	switch format {
	case "json":
	case "console":
		opts = append(opts, log.WithConsoleEncoding())
	default:
		return nil, fmt.Errorf("unknown log format %q (want json or console)", format)
	}
	return opts, nil
}

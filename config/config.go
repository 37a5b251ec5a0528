// Package config resolves how the counter attaches to the host page.
package config

import "fmt"

// Mode selects how the counter reaches the page.
type Mode string

const (
	// BindMode attaches to display and button elements already on the page.
	BindMode Mode = "bind"
	// MountMode renders the counter's own markup under a mount element.
	MountMode Mode = "mount"
)

// Config holds the CSS selectors used at startup.
type Config struct {
	Mode              Mode
	DisplaySelector   string
	IncrementSelector string
	DecrementSelector string
	MountSelector     string
	LogLevel          string
}

// Default returns the selectors of the stock host page.
func Default() Config {
	return Config{
		Mode:              BindMode,
		DisplaySelector:   "#count",
		IncrementSelector: "#add",
		DecrementSelector: "#subtract",
		MountSelector:     "#app",
		LogLevel:          "log",
	}
}

// Override keys, read from data-counter-* attributes on <body>.
const (
	KeyMode      = "counterMode"
	KeyDisplay   = "counterDisplay"
	KeyIncrement = "counterIncrement"
	KeyDecrement = "counterDecrement"
	KeyMount     = "counterMount"
	KeyLogLevel  = "counterLogLevel"
)

// FromLookup returns Default with any non-empty values found by lookup applied.
func FromLookup(lookup func(key string) (string, bool)) (Config, error) {
	cfg := Default()
	if lookup == nil {
		return cfg, nil
	}

	if v, ok := lookup(KeyMode); ok && v != "" {
		switch m := Mode(v); m {
		case BindMode, MountMode:
			cfg.Mode = m
		default:
			return cfg, fmt.Errorf("invalid counter mode %q (want %q or %q)", v, BindMode, MountMode)
		}
	}

	for key, dst := range map[string]*string{
		KeyDisplay:   &cfg.DisplaySelector,
		KeyIncrement: &cfg.IncrementSelector,
		KeyDecrement: &cfg.DecrementSelector,
		KeyMount:     &cfg.MountSelector,
		KeyLogLevel:  &cfg.LogLevel,
	} {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	return cfg, nil
}

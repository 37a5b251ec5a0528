package config

import "testing"

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != Default() {
		t.Errorf("Expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.DisplaySelector != "#count" || cfg.IncrementSelector != "#add" || cfg.DecrementSelector != "#subtract" {
		t.Errorf("Unexpected default selectors: %+v", cfg)
	}
}

func TestFromLookup_NilLookup(t *testing.T) {
	cfg, err := FromLookup(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != BindMode {
		t.Errorf("Expected bind mode, got %q", cfg.Mode)
	}
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		KeyMode:    "mount",
		KeyMount:   "#root",
		KeyDisplay: "",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mode != MountMode {
		t.Errorf("Expected mount mode, got %q", cfg.Mode)
	}
	if cfg.MountSelector != "#root" {
		t.Errorf("Expected mount selector '#root', got '%s'", cfg.MountSelector)
	}
	if cfg.DisplaySelector != "#count" {
		t.Errorf("Empty override should keep default, got '%s'", cfg.DisplaySelector)
	}
}

func TestFromLookup_InvalidMode(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{KeyMode: "portal"}))
	if err == nil {
		t.Fatal("Expected error for unknown mode")
	}
}

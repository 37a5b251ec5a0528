package console

import "testing"

func TestSetLevel_FiltersLowerLevels(t *testing.T) {
	t.Cleanup(func() { SetLevel(LogLevel) })

	SetLevel(WarnLevel)

	if Enabled(LogLevel) {
		t.Error("LogLevel should be filtered at WarnLevel")
	}
	if !Enabled(WarnLevel) || !Enabled(ErrorLevel) {
		t.Error("WarnLevel and ErrorLevel should pass at WarnLevel")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": DebugLevel,
		"info":  LogLevel,
		"log":   LogLevel,
		"warn":  WarnLevel,
		"error": ErrorLevel,
	}
	for name, want := range cases {
		got, ok := ParseLevel(name)
		if !ok || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, true", name, got, ok, want)
		}
	}

	if _, ok := ParseLevel("verbose"); ok {
		t.Error("Expected unknown level to report false")
	}
}

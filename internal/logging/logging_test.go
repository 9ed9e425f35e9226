package logging

import (
	"strings"
	"testing"
)

func TestNewWithWriterLevels(t *testing.T) {
	var quiet strings.Builder
	log := NewWithWriter(&quiet, false)
	log.Debug("hidden")
	log.Info("shown")
	if strings.Contains(quiet.String(), "hidden") {
		t.Fatalf("debug record leaked at info level:\n%s", quiet.String())
	}
	if !strings.Contains(quiet.String(), "shown") {
		t.Fatalf("info record missing:\n%s", quiet.String())
	}

	var loud strings.Builder
	log = NewWithWriter(&loud, true)
	log.Debug("visible", "selector", "nav")
	if !strings.Contains(loud.String(), "visible") || !strings.Contains(loud.String(), "selector=nav") {
		t.Fatalf("debug record missing in verbose mode:\n%s", loud.String())
	}
}

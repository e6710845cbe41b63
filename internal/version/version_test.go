package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, "version=") || !strings.Contains(s, "commit=") {
		t.Fatalf("unexpected version string: %q", s)
	}
	if Version() == "" {
		t.Fatal("version must not be empty")
	}
}

package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/statenav/internal/presentation/tui"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf)

	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 banner lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "/ __|") {
		t.Errorf("unexpected banner art: %q", lines[2])
	}
}

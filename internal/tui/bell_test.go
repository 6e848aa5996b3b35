package tui

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBellNotifier(t *testing.T) {
	var buf bytes.Buffer
	NewBellNotifier(&buf).LimitViolated()
	if buf.String() != "\a" {
		t.Fatalf("expected bell, got %q", buf.String())
	}

	// Neither of these may panic.
	NewBellNotifier(nil).LimitViolated()
	NewBellNotifier(failingWriter{}).LimitViolated()
}

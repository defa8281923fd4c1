package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := captureOutput(func() {
		Success("Created class: Foo")
	})

	if !strings.Contains(out, "🪶") {
		t.Error("Success output should contain the feather emoji")
	}
	if !strings.Contains(out, "Created class: Foo") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	out := captureOutput(func() {
		Error("write failed")
	})

	if !strings.Contains(out, "❌") {
		t.Error("Error output should contain X emoji")
	}
	if !strings.Contains(out, "write failed") {
		t.Error("Error output should contain the message")
	}
}

func TestVerbose_Disabled(t *testing.T) {
	SetVerbose(false)
	out := captureOutput(func() {
		Verbose("hidden")
	})

	if strings.Contains(out, "hidden") {
		t.Error("Verbose output should be suppressed when verbose mode is off")
	}
}

func TestVerbose_Enabled(t *testing.T) {
	SetVerbose(true)
	defer SetVerbose(false)

	out := captureOutput(func() {
		Verbose("shown")
	})

	if !strings.Contains(out, "shown") {
		t.Error("Verbose output should appear when verbose mode is on")
	}
}

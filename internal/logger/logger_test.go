package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestDebug_VerboseOff(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Debug("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected no output with verbose off, got %q", buf.String())
	}
}

func TestDebug_VerboseOn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Debug("chunked %d files", 3)

	out := buf.String()
	if !strings.Contains(out, "[DEBUG]") {
		t.Errorf("expected [DEBUG] prefix, got %q", out)
	}
	if !strings.Contains(out, "chunked 3 files") {
		t.Errorf("expected formatted message, got %q", out)
	}
}

func TestWarn_AlwaysPrints(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(false)

	Warn("skipping %s", "bad.pdf")

	out := buf.String()
	if !strings.Contains(out, "[WARN]") {
		t.Errorf("expected [WARN] prefix, got %q", out)
	}
	if !strings.Contains(out, "skipping bad.pdf") {
		t.Errorf("expected formatted message, got %q", out)
	}
}

func TestSection_VerboseOn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Section("Ingestion")

	if !strings.Contains(buf.String(), "=== Ingestion ===") {
		t.Errorf("expected section header, got %q", buf.String())
	}
}

func TestIsVerbose(t *testing.T) {
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected IsVerbose to be true")
	}
	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected IsVerbose to be false")
	}
}

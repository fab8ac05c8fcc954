package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut := log.Writer()
	prevFlags := log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		debugEnabled.Store(false)
	})
	return buf
}

func TestDebugfSilentUntilEnabled(t *testing.T) {
	buf := captureLog(t)

	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("expected no output before EnableDebug, got %q", buf.String())
	}

	EnableDebug()
	Debugf("visible %d", 2)

	out := buf.String()
	if !strings.Contains(out, "[DEBUG] visible 2") {
		t.Fatalf("expected debug line, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("message logged while debug was disabled: %q", out)
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0123456789abcdef"); got != "01234567" {
		t.Fatalf("unexpected short id %q", got)
	}
	if got := ShortID(" abc "); got != "abc" {
		t.Fatalf("unexpected short id %q", got)
	}
}

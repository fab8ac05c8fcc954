package main

import "testing"

func TestParseGlobalFlagsDebug(t *testing.T) {
	rest, debug, err := parseGlobalFlags([]string{"--debug"})
	if err != nil {
		t.Fatalf("parseGlobalFlags returned error: %v", err)
	}
	if !debug {
		t.Fatalf("expected debug flag to be enabled")
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected remaining args: %#v", rest)
	}
}

func TestParseGlobalFlagsIgnoresProcessSerialNumber(t *testing.T) {
	rest, debug, err := parseGlobalFlags([]string{"-psn_0_12345"})
	if err != nil {
		t.Fatalf("parseGlobalFlags returned error: %v", err)
	}
	if debug {
		t.Fatalf("debug flag should not be set")
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected remaining args: %#v", rest)
	}
}

func TestParseGlobalFlagsAcceptsConsole(t *testing.T) {
	if _, _, err := parseGlobalFlags([]string{"-console"}); err != nil {
		t.Fatalf("console flag should be accepted: %v", err)
	}
}

func TestParseGlobalFlagsRejectsUnknown(t *testing.T) {
	if _, _, err := parseGlobalFlags([]string{"--verbose"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestParseGlobalFlagsReturnsPositionalArgs(t *testing.T) {
	rest, _, err := parseGlobalFlags([]string{"--debug", "extra"})
	if err != nil {
		t.Fatalf("parseGlobalFlags returned error: %v", err)
	}
	if len(rest) != 1 || rest[0] != "extra" {
		t.Fatalf("unexpected remaining args: %#v", rest)
	}
}

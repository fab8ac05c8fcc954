//go:build windows

package main

import "testing"

func TestShouldShowConsole(t *testing.T) {
	t.Setenv("MINDFULACCESS_SHOW_CONSOLE", "")
	cases := map[string]bool{
		"--console":       true,
		"-console=true":   true,
		"--console=false": false,
		"--debug":         true,
		"-psn_0_1":        false,
	}
	for arg, want := range cases {
		if got := shouldShowConsole([]string{arg}); got != want {
			t.Fatalf("shouldShowConsole(%q): expected %v, got %v", arg, want, got)
		}
	}
}

//go:build windows

package main

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/windows"
)

func init() {
	if shouldShowConsole(os.Args[1:]) {
		return
	}
	hideConsoleWindow()
}

func shouldShowConsole(args []string) bool {
	if os.Getenv("MINDFULACCESS_SHOW_CONSOLE") != "" {
		return true
	}

	for _, raw := range args {
		normalized := strings.ToLower(strings.TrimLeft(strings.TrimSpace(raw), "-"))
		switch {
		case normalized == "console" || normalized == "debug":
			return true
		case strings.HasPrefix(normalized, "console="):
			if parsed, err := strconv.ParseBool(strings.TrimPrefix(normalized, "console=")); err == nil && parsed {
				return true
			}
		}
	}

	return false
}

func hideConsoleWindow() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	user32 := windows.NewLazySystemDLL("user32.dll")

	hwnd, _, _ := kernel32.NewProc("GetConsoleWindow").Call()
	if hwnd == 0 {
		return
	}

	const swHide = 0
	user32.NewProc("ShowWindow").Call(hwnd, swHide)
	kernel32.NewProc("FreeConsole").Call()
}

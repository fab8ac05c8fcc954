//go:build darwin
// +build darwin

package menu

import (
	"log"
	"os/exec"
)

// showAlert blocks until the user dismisses the alert.
func showAlert(title, message string) {
	if err := exec.Command("osascript", "-e", alertScript(title, message)).Run(); err != nil {
		log.Printf("failed to show alert %q: %v", title, err)
	}
}

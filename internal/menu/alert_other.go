//go:build !darwin
// +build !darwin

package menu

import "log"

func showAlert(title, message string) {
	log.Printf("%s: %s", title, message)
}

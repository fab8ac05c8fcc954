//go:build !cgo && !windows
// +build !cgo,!windows

package menu

import (
	"context"
	"errors"
	"os"
)

// Run returns an error indicating tray functionality is unavailable without cgo.
func (c *Controller) Run(_ context.Context) error {
	return errors.New("system tray is unavailable without cgo support")
}

func quitTray() {
	os.Exit(0)
}

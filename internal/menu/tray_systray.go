//go:build cgo || windows
// +build cgo windows

package menu

import (
	"context"
	"runtime"

	"github.com/getlantern/systray"

	"github.com/example/mindfulaccess/internal/logging"
)

type trayView struct {
	status *systray.MenuItem
}

func (v *trayView) SetStatusLabel(label string) {
	v.status.SetTitle(label)
}

func (v *trayView) SetIcon(icon []byte) {
	if runtime.GOOS == "darwin" {
		systray.SetTemplateIcon(icon, icon)
		return
	}
	systray.SetIcon(icon)
}

// Run builds the status icon and menu and blocks until the user quits or ctx
// is canceled. It must be called from the main goroutine.
func (c *Controller) Run(ctx context.Context) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	systray.Run(func() {
		c.onReady(ctx)
	}, func() {
		cancel()
		logging.Debugf("tray loop exited")
	})

	return parent.Err()
}

func (c *Controller) onReady(ctx context.Context) {
	systray.SetTooltip(appName)

	title := systray.AddMenuItem(appName, "")
	title.Disable()
	systray.AddSeparator()
	toggle := systray.AddMenuItem(c.state.Label(), "Toggle status")
	configure := systray.AddMenuItem("Configure...", "Open the configuration")
	systray.AddSeparator()
	quit := systray.AddMenuItem("Quit", "Quit "+appName)

	c.view = &trayView{status: toggle}
	c.render()

	go drainClicks(ctx, title.ClickedCh)
	go c.dispatch(ctx, toggle.ClickedCh, configure.ClickedCh, quit.ClickedCh)
	logging.Debugf("menu bar setup complete")
}

func quitTray() {
	systray.Quit()
}

package menu

import (
	"context"
	"log"

	"github.com/example/mindfulaccess/internal/logging"
	"github.com/example/mindfulaccess/internal/status"
)

const (
	appName = "MindfulAccess"

	alertTitle   = "Configuration Error"
	alertMessage = "Could not find the configuration script. Please ensure the application is properly installed."
)

// Configurator locates and runs the external configuration script.
type Configurator interface {
	Locate() (string, error)
	Run(ctx context.Context, scriptPath string) error
}

type statusView interface {
	SetStatusLabel(label string)
	SetIcon(icon []byte)
}

// Controller owns the activation flag and reacts to menu commands. All methods
// are expected to run on the single dispatch goroutine.
type Controller struct {
	state    status.ActivationState
	launcher Configurator

	view  statusView
	alert func(title, message string)
	quit  func()
}

// NewController constructs a Controller in the initial state.
func NewController(launcher Configurator) *Controller {
	return &Controller{
		state:    status.Initial,
		launcher: launcher,
		alert:    showAlert,
		quit:     quitTray,
	}
}

// State reports the current activation flag.
func (c *Controller) State() status.ActivationState {
	return c.state
}

// Toggle flips the activation flag and refreshes the label and icon.
func (c *Controller) Toggle() {
	c.state = c.state.Toggle()
	logging.Debugf("status toggled to %s", c.state)
	c.render()
}

// OpenConfiguration runs the configuration script and waits for it to exit.
// A missing script is reported to the user with a modal alert; a launch
// failure is only logged.
func (c *Controller) OpenConfiguration(ctx context.Context) {
	log.Println("Configure clicked")

	path, err := c.launcher.Locate()
	if err != nil {
		log.Printf("Could not find configuration script: %v", err)
		c.alert(alertTitle, alertMessage)
		return
	}

	log.Printf("Found script at: %s", path)
	if err := c.launcher.Run(ctx, path); err != nil {
		log.Printf("Failed to run script: %v", err)
	}
}

// Quit ends the tray loop.
func (c *Controller) Quit() {
	c.quit()
}

func (c *Controller) render() {
	if c.view == nil {
		return
	}
	c.view.SetStatusLabel(c.state.Label())
	c.view.SetIcon(iconFor(c.state))
}

// dispatch handles clicks one at a time until quit is chosen or ctx ends.
func (c *Controller) dispatch(ctx context.Context, toggle, configure, quit <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			c.Quit()
			return
		case _, ok := <-toggle:
			if !ok {
				return
			}
			c.Toggle()
		case _, ok := <-configure:
			if !ok {
				return
			}
			c.OpenConfiguration(ctx)
		case <-quit:
			c.Quit()
			return
		}
	}
}

func drainClicks(ctx context.Context, ch <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
		}
	}
}

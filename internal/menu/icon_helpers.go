package menu

import (
	_ "embed"

	"github.com/example/mindfulaccess/internal/status"
)

//go:embed assets/shield_active.png
var activeIconData []byte

//go:embed assets/shield_inactive.png
var inactiveIconData []byte

// iconFor returns the glyph for state: a filled shield while active, an
// outlined one while inactive.
func iconFor(state status.ActivationState) []byte {
	if state == status.Active {
		return cloneIcon(activeIconData)
	}
	return cloneIcon(inactiveIconData)
}

func cloneIcon(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp
}

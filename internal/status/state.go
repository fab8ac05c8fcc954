// Package status holds the display-only activation flag shown in the menu bar.
package status

// ActivationState is the user-toggled flag. It is cosmetic and never persisted.
type ActivationState bool

const (
	Active   ActivationState = true
	Inactive ActivationState = false
)

// Initial is the state every process starts in.
const Initial = Active

// Toggle returns the opposite state.
func (s ActivationState) Toggle() ActivationState {
	return !s
}

func (s ActivationState) String() string {
	if s {
		return "Active"
	}
	return "Inactive"
}

// Label is the text of the status menu entry.
func (s ActivationState) Label() string {
	return "Status: " + s.String()
}

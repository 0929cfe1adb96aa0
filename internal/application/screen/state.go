package screen

// TransitionState describes where a screen is in its on/off transition.
type TransitionState int

const (
	// StateTransitionOn means the screen is sliding/fading into view.
	StateTransitionOn TransitionState = iota
	// StateActive means the screen is fully visible and interactive.
	StateActive
	// StateTransitionOff means the screen is sliding/fading out of view.
	StateTransitionOff
	// StateHidden means the screen is fully off-screen and not drawn.
	StateHidden
)

// String returns the string representation of the transition state
func (s TransitionState) String() string {
	switch s {
	case StateTransitionOn:
		return "TransitionOn"
	case StateActive:
		return "Active"
	case StateTransitionOff:
		return "TransitionOff"
	case StateHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

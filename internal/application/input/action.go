package input

// Action is a declarative binding from one or more abstract controls to a
// single logical operation ("move selection up", "confirm", ...). An action
// either fires once per press or continuously while held.
type Action struct {
	controls     []Control
	newPressOnly bool
}

// NewAction creates an action over the given controls. When newPressOnly is
// true the action fires on the frame a control goes down; otherwise it fires
// every frame a control is held.
func NewAction(newPressOnly bool, controls ...Control) *Action {
	return &Action{
		controls:     controls,
		newPressOnly: newPressOnly,
	}
}

// Occurred evaluates the action against the snapshot for the given player
// (PlayerAny accepts input from anyone). The second result identifies the
// player that triggered it, letting a screen bound to "any player" learn
// retroactively who pressed the button.
func (a *Action) Occurred(s *State, player PlayerIndex) (bool, PlayerIndex) {
	for _, ctl := range a.controls {
		var fired bool
		var p PlayerIndex
		if a.newPressOnly {
			fired, p = s.IsJustPressed(ctl, player)
		} else {
			fired, p = s.IsPressed(ctl, player)
		}
		if fired {
			return true, p
		}
	}
	return false, PlayerAny
}

// Package input provides a per-frame snapshot of abstract controls and
// declarative actions evaluated against it.
//
// Devices are polled through the Reader interface so screens and tests never
// touch the keyboard/gamepad APIs directly. The snapshot keeps the current
// and previous frame for every player, which is what makes edge-triggered
// ("just pressed") queries possible without global state.
package input

// PlayerIndex identifies a local player slot. PlayerAny means "whichever
// player pressed it"; queries made with PlayerAny report the resolved slot
// back to the caller.
type PlayerIndex int

const (
	// PlayerAny matches input from any connected player.
	PlayerAny PlayerIndex = -1

	PlayerOne PlayerIndex = iota - 1
	PlayerTwo
	PlayerThree
	PlayerFour

	// MaxPlayers is the number of local player slots.
	MaxPlayers = 4
)

// Control is an abstract button identifier, decoupled from physical keys.
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlConfirm
	ControlCancel
	ControlPause

	controlCount
)

// String returns the string representation of the control
func (c Control) String() string {
	switch c {
	case ControlUp:
		return "Up"
	case ControlDown:
		return "Down"
	case ControlLeft:
		return "Left"
	case ControlRight:
		return "Right"
	case ControlConfirm:
		return "Confirm"
	case ControlCancel:
		return "Cancel"
	case ControlPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Controls is a bitset of pressed controls for one player on one frame.
type Controls uint16

// Has reports whether the control is set.
func (c Controls) Has(ctl Control) bool {
	return c&(1<<uint(ctl)) != 0
}

// With returns the set with the control added.
func (c Controls) With(ctl Control) Controls {
	return c | (1 << uint(ctl))
}

// Reader polls the pressed controls for one player slot.
type Reader interface {
	Poll(player PlayerIndex) Controls
}

// State is the per-frame input snapshot consumed by screens. It is refreshed
// once per frame by the screen manager; screens only ever read it.
type State struct {
	reader   Reader
	current  [MaxPlayers]Controls
	previous [MaxPlayers]Controls
}

// NewState creates a snapshot backed by the given reader.
func NewState(r Reader) *State {
	return &State{reader: r}
}

// Update rolls the current frame into the previous one and re-polls every
// player slot. Called once per frame, before any screen sees the snapshot.
func (s *State) Update() {
	if s.reader == nil {
		return
	}
	for i := 0; i < MaxPlayers; i++ {
		s.previous[i] = s.current[i]
		s.current[i] = s.reader.Poll(PlayerIndex(i))
	}
}

// IsPressed reports whether the control is held this frame by the given
// player, or by any player when PlayerAny is passed. The second result is
// the player that pressed it.
func (s *State) IsPressed(ctl Control, player PlayerIndex) (bool, PlayerIndex) {
	return s.query(ctl, player, false)
}

// IsJustPressed reports whether the control went from released to pressed
// this frame. Resolution mirrors IsPressed.
func (s *State) IsJustPressed(ctl Control, player PlayerIndex) (bool, PlayerIndex) {
	return s.query(ctl, player, true)
}

func (s *State) query(ctl Control, player PlayerIndex, edge bool) (bool, PlayerIndex) {
	if player == PlayerAny {
		for i := 0; i < MaxPlayers; i++ {
			if fired, p := s.query(ctl, PlayerIndex(i), edge); fired {
				return true, p
			}
		}
		return false, PlayerAny
	}
	if player < 0 || int(player) >= MaxPlayers {
		return false, PlayerAny
	}
	pressed := s.current[player].Has(ctl)
	if edge {
		pressed = pressed && !s.previous[player].Has(ctl)
	}
	if !pressed {
		return false, PlayerAny
	}
	return true, player
}

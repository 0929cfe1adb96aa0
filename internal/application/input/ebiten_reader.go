package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings maps abstract controls to physical keys.
type KeyBindings map[Control][]ebiten.Key

// DefaultKeyBindings is the keyboard layout used when none is supplied.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ControlUp:      {ebiten.KeyUp, ebiten.KeyW},
		ControlDown:    {ebiten.KeyDown, ebiten.KeyS},
		ControlLeft:    {ebiten.KeyLeft, ebiten.KeyA},
		ControlRight:   {ebiten.KeyRight, ebiten.KeyD},
		ControlConfirm: {ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyZ},
		ControlCancel:  {ebiten.KeyEscape, ebiten.KeyX},
		ControlPause:   {ebiten.KeyEscape, ebiten.KeyP},
	}
}

var defaultPadBindings = map[Control][]ebiten.StandardGamepadButton{
	ControlUp:      {ebiten.StandardGamepadButtonLeftTop},
	ControlDown:    {ebiten.StandardGamepadButtonLeftBottom},
	ControlLeft:    {ebiten.StandardGamepadButtonLeftLeft},
	ControlRight:   {ebiten.StandardGamepadButtonLeftRight},
	ControlConfirm: {ebiten.StandardGamepadButtonRightBottom},
	ControlCancel:  {ebiten.StandardGamepadButtonRightRight},
	ControlPause:   {ebiten.StandardGamepadButtonCenterRight},
}

// EbitenReader polls ebiten's keyboard and standard gamepads. The keyboard
// always feeds player one; gamepad N feeds player N+1 in connection order.
type EbitenReader struct {
	keyboard KeyBindings
	pads     map[Control][]ebiten.StandardGamepadButton
	padIDs   []ebiten.GamepadID
}

// NewEbitenReader creates a reader with the given keyboard layout; pass nil
// for the default layout.
func NewEbitenReader(keys KeyBindings) *EbitenReader {
	if keys == nil {
		keys = DefaultKeyBindings()
	}
	return &EbitenReader{
		keyboard: keys,
		pads:     defaultPadBindings,
	}
}

// Poll implements Reader.
func (r *EbitenReader) Poll(player PlayerIndex) Controls {
	var set Controls

	if player == PlayerOne {
		for ctl, keys := range r.keyboard {
			for _, k := range keys {
				if ebiten.IsKeyPressed(k) {
					set = set.With(ctl)
					break
				}
			}
		}
	}

	if player == PlayerOne {
		r.padIDs = ebiten.AppendGamepadIDs(r.padIDs[:0])
	}
	if int(player) < len(r.padIDs) {
		id := r.padIDs[player]
		for ctl, buttons := range r.pads {
			for _, b := range buttons {
				if ebiten.IsStandardGamepadButtonPressed(id, b) {
					set = set.With(ctl)
					break
				}
			}
		}
	}

	return set
}

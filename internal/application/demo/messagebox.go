package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/input"
	"github.com/younwookim/screenstack/internal/application/screen"
)

var (
	colorBoxFill   = color.RGBA{0, 0, 0, 200}
	colorBoxBorder = color.RGBA{255, 255, 255, 255}
)

// MessageBoxScreen is a popup confirmation dialog. It dims the screens
// beneath it, accepts on confirm and dismisses on cancel; either way it
// exits itself.
type MessageBoxScreen struct {
	screen.Base

	text    string
	confirm *input.Action
	cancel  *input.Action

	// Accepted runs when the confirm action fires, before the box exits.
	Accepted func(player input.PlayerIndex)
	// Cancelled runs when the cancel action fires, before the box exits.
	Cancelled func(player input.PlayerIndex)
}

// NewMessageBox creates a message box with the given prompt text.
func NewMessageBox(text string, onDuration, offDuration float64) *MessageBoxScreen {
	s := &MessageBoxScreen{
		text:    text,
		confirm: input.NewAction(true, input.ControlConfirm),
		cancel:  input.NewAction(true, input.ControlCancel),
	}
	s.SetPopup(true)
	s.SetTransitionDurations(onDuration, offDuration)
	return s
}

// HandleInput resolves confirm/cancel for the controlling player, reporting
// back who answered when the box accepts any player.
func (s *MessageBoxScreen) HandleInput(in *input.State) {
	if fired, p := s.confirm.Occurred(in, s.ControllingPlayer()); fired {
		if s.Accepted != nil {
			s.Accepted(p)
		}
		s.Exit()
		return
	}
	if fired, p := s.cancel.Occurred(in, s.ControllingPlayer()); fired {
		if s.Cancelled != nil {
			s.Cancelled(p)
		}
		s.Exit()
	}
}

// Draw dims everything beneath the box, then draws the box and prompt.
func (s *MessageBoxScreen) Draw(dst *ebiten.Image, dt float64) {
	m := s.Manager()
	m.FadeToBlack(dst, s.TransitionAlpha()*2/3)

	w, h := m.Size()
	boxW := len(s.text)*6 + 32
	boxH := 64
	x := (w - boxW) / 2
	y := (h - boxH) / 2

	ebitenutil.DrawRect(dst, float64(x-1), float64(y-1), float64(boxW+2), float64(boxH+2), colorBoxBorder)
	ebitenutil.DrawRect(dst, float64(x), float64(y), float64(boxW), float64(boxH), colorBoxFill)
	ebitenutil.DebugPrintAt(dst, s.text, x+16, y+14)
	ebitenutil.DebugPrintAt(dst, "Enter: yes   Esc: no", x+16, y+36)
}

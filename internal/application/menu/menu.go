// Package menu provides the menu screen consumer built on the screen and
// input contracts: an ordered entry list, wraparound selection, and slide-in
// drawing driven by the owning screen's transition position.
package menu

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/input"
	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/infrastructure/audio"
)

const (
	entryHeight  = 24
	titleY       = 40
	slideInSpan  = 256
	slideOutSpan = 512
)

// Screen is a screen displaying a vertical list of entries. Concrete menus
// embed it, add entries, and optionally replace the Cancelled callback.
type Screen struct {
	screen.Base

	title    string
	entries  []*Entry
	selected int

	up      *input.Action
	down    *input.Action
	confirm *input.Action
	cancel  *input.Action

	// Cancelled runs when the cancel action fires. The default exits the
	// screen.
	Cancelled func(player input.PlayerIndex)

	sounds *audio.Player
}

// NewScreen creates a menu screen with the given title. sounds may be nil.
func NewScreen(title string, sounds *audio.Player) *Screen {
	s := &Screen{
		title:   title,
		up:      input.NewAction(true, input.ControlUp),
		down:    input.NewAction(true, input.ControlDown),
		confirm: input.NewAction(true, input.ControlConfirm),
		cancel:  input.NewAction(true, input.ControlCancel),
		sounds:  sounds,
	}
	s.SetTransitionDurations(0.5, 0.5)
	s.Cancelled = func(input.PlayerIndex) { s.Exit() }
	return s
}

// AddEntry appends an entry to the menu.
func (s *Screen) AddEntry(e *Entry) {
	s.entries = append(s.entries, e)
}

// Entries returns the live entry list, for menus that rebuild labels.
func (s *Screen) Entries() []*Entry {
	return s.entries
}

// SelectedIndex returns the index of the highlighted entry.
func (s *Screen) SelectedIndex() int {
	return s.selected
}

// HandleInput moves the selection with wraparound, confirms the selected
// entry, and cancels the menu.
func (s *Screen) HandleInput(in *input.State) {
	if len(s.entries) == 0 {
		return
	}
	player := s.ControllingPlayer()

	if fired, _ := s.up.Occurred(in, player); fired {
		s.selected--
		if s.selected < 0 {
			s.selected = len(s.entries) - 1
		}
		s.sounds.MenuMove()
	}
	if fired, _ := s.down.Occurred(in, player); fired {
		s.selected++
		if s.selected >= len(s.entries) {
			s.selected = 0
		}
		s.sounds.MenuMove()
	}
	if fired, p := s.confirm.Occurred(in, player); fired {
		s.sounds.MenuSelect()
		s.entries[s.selected].fire(p)
		return
	}
	if fired, p := s.cancel.Occurred(in, player); fired {
		s.sounds.MenuCancel()
		if s.Cancelled != nil {
			s.Cancelled(p)
		}
	}
}

// Draw renders the title and entries. Entries slide horizontally with the
// transition, eased by a power curve so the motion settles toward the end.
func (s *Screen) Draw(dst *ebiten.Image, dt float64) {
	w, h := s.Manager().Size()

	if s.IsPopup() {
		s.Manager().FadeToBlack(dst, s.TransitionAlpha()*2/3)
	}

	offset := math.Pow(s.TransitionPosition(), 2)
	slide := offset * slideInSpan
	if s.State() == screen.StateTransitionOff {
		slide = offset * slideOutSpan
	}

	titleX := w/2 - len(s.title)*3
	ebitenutil.DebugPrintAt(dst, s.title, titleX-int(slide), titleY)

	baseY := h/2 - len(s.entries)*entryHeight/2
	for i, e := range s.entries {
		label := e.Text
		if i == s.selected {
			label = "> " + label
		}
		x := w/2 - len(label)*3 - int(slide)
		ebitenutil.DebugPrintAt(dst, label, x, baseY+i*entryHeight)
	}
}

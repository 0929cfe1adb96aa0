package demo

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/input"
	"github.com/younwookim/screenstack/internal/application/screen"
)

// LoadingScreen bridges between two stacks: it tells every current screen to
// exit, waits until it is the only screen left, then swaps itself for its
// payload. The wait is what lets the old screens finish their off
// transitions instead of vanishing.
type LoadingScreen struct {
	screen.Base

	payload []screen.Screen
	player  input.PlayerIndex
}

// ActivateLoading exits all current screens and pushes a loading screen that
// activates the payload once the stack has drained.
func ActivateLoading(m *screen.Manager, player input.PlayerIndex, payload ...screen.Screen) error {
	for _, s := range m.Screens() {
		s.Exit()
	}
	ls := &LoadingScreen{payload: payload, player: player}
	return m.AddScreen(ls, player)
}

// Update swaps in the payload once every other screen has finished exiting.
func (s *LoadingScreen) Update(dt float64, otherScreenHasFocus, covered bool) {
	s.Base.Update(dt, otherScreenHasFocus, covered)

	m := s.Manager()
	if len(m.Screens()) != 1 {
		return
	}
	m.RemoveScreen(s)
	for _, next := range s.payload {
		if err := m.AddScreen(next, s.player); err != nil {
			log.Printf("loading screen: activate payload: %v", err)
		}
	}
}

// Draw shows the loading notice.
func (s *LoadingScreen) Draw(dst *ebiten.Image, dt float64) {
	w, h := s.Manager().Size()
	ebitenutil.DebugPrintAt(dst, "Loading...", w/2-30, h/2)
}

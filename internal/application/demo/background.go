// Package demo wires concrete screens into a runnable flow: a background,
// a main menu, a gameplay screen with a pause popup, confirmation message
// boxes, and a loading screen bridging between stacks.
package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/screen"
)

var colorBackdrop = color.RGBA{26, 26, 46, 255}

// BackgroundScreen sits at the bottom of the stack and stays visible behind
// every menu layered on top of it.
type BackgroundScreen struct {
	screen.Base
}

// NewBackgroundScreen creates the backdrop.
func NewBackgroundScreen() *BackgroundScreen {
	s := &BackgroundScreen{}
	s.SetTransitionDurations(0.5, 0.5)
	return s
}

// Update forces covered to false so menus above never hide the backdrop.
func (s *BackgroundScreen) Update(dt float64, otherScreenHasFocus, covered bool) {
	s.Base.Update(dt, otherScreenHasFocus, false)
}

// Draw fills the frame, fading with the transition.
func (s *BackgroundScreen) Draw(dst *ebiten.Image, dt float64) {
	w, h := s.Manager().Size()
	a := s.TransitionAlpha()
	c := color.RGBA{
		uint8(float64(colorBackdrop.R) * a),
		uint8(float64(colorBackdrop.G) * a),
		uint8(float64(colorBackdrop.B) * a),
		uint8(255 * a),
	}
	ebitenutil.DrawRect(dst, 0, 0, float64(w), float64(h), c)
}

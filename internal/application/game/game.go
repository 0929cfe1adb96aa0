// Package game adapts the screen manager to the ebiten.Game interface.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenstack/internal/application/screen"
)

// Game implements ebiten.Game and drives the screen manager once per frame
// with a fixed delta time.
type Game struct {
	manager *screen.Manager
	screenW int
	screenH int
	dt      float64
	quit    bool
}

// New creates a Game driving the given manager at the given framerate.
func New(m *screen.Manager, screenW, screenH, framerate int) *Game {
	return &Game{
		manager: m,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(framerate),
	}
}

// Update runs the manager's update pass.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	return g.manager.Update(g.dt)
}

// Draw runs the manager's draw pass.
// Implements ebiten.Game interface.
func (g *Game) Draw(dst *ebiten.Image) {
	g.manager.Draw(dst, g.dt)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Quit makes the next Update terminate the host loop.
func (g *Game) Quit() {
	g.quit = true
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

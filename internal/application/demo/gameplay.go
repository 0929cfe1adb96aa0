package demo

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/input"
	"github.com/younwookim/screenstack/internal/application/screen"
)

var (
	colorArena  = color.RGBA{16, 32, 24, 255}
	colorPlayer = color.RGBA{100, 200, 100, 255}
)

// GameplayScreen is a stand-in game: a square bouncing around the arena.
// The simulation only advances while the screen is active, so a pause popup
// or a covering menu freezes it without any extra bookkeeping.
type GameplayScreen struct {
	screen.Base

	pause *input.Action

	// Paused runs when the pause action fires.
	Paused func(player input.PlayerIndex)

	x, y   float64
	vx, vy float64
	size   float64
}

// NewGameplayScreen creates the gameplay screen with the given transition
// durations.
func NewGameplayScreen(onDuration, offDuration float64) *GameplayScreen {
	s := &GameplayScreen{
		pause: input.NewAction(true, input.ControlPause),
		x:     40,
		y:     40,
		vx:    90,
		vy:    60,
		size:  12,
	}
	s.SetTransitionDurations(onDuration, offDuration)
	return s
}

// Update advances the transition machine, then the simulation while active.
func (s *GameplayScreen) Update(dt float64, otherScreenHasFocus, covered bool) {
	s.Base.Update(dt, otherScreenHasFocus, covered)
	if !s.IsActive() {
		return
	}

	w, h := s.Manager().Size()
	s.x += s.vx * dt
	s.y += s.vy * dt
	if s.x < 0 {
		s.x = 0
		s.vx = -s.vx
	}
	if s.x > float64(w)-s.size {
		s.x = float64(w) - s.size
		s.vx = -s.vx
	}
	if s.y < 0 {
		s.y = 0
		s.vy = -s.vy
	}
	if s.y > float64(h)-s.size {
		s.y = float64(h) - s.size
		s.vy = -s.vy
	}
}

// HandleInput opens the pause menu for whichever player hit pause.
func (s *GameplayScreen) HandleInput(in *input.State) {
	if fired, p := s.pause.Occurred(in, s.ControllingPlayer()); fired {
		if s.Paused != nil {
			s.Paused(p)
		}
	}
}

// Draw renders the arena and the square, faded by the transition.
func (s *GameplayScreen) Draw(dst *ebiten.Image, dt float64) {
	w, h := s.Manager().Size()
	a := s.TransitionAlpha()

	arena := color.RGBA{
		uint8(float64(colorArena.R) * a),
		uint8(float64(colorArena.G) * a),
		uint8(float64(colorArena.B) * a),
		uint8(255 * a),
	}
	ebitenutil.DrawRect(dst, 0, 0, float64(w), float64(h), arena)

	player := color.RGBA{
		uint8(float64(colorPlayer.R) * a),
		uint8(float64(colorPlayer.G) * a),
		uint8(float64(colorPlayer.B) * a),
		uint8(255 * a),
	}
	ebitenutil.DrawRect(dst, s.x, s.y, s.size, s.size, player)
	ebitenutil.DebugPrint(dst, "ESC: pause")
}

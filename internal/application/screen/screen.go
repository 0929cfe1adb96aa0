// Package screen implements the layered screen stack: the per-screen
// transition state machine, the Screen contract, and the Manager that owns
// the ordered stack and drives update/draw/input each frame.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenstack/internal/application/input"
)

// Screen is one layer of UI with its own lifecycle and transition timing.
// Concrete screens embed Base, which supplies the transition machinery and
// no-op defaults for every hook; embedding Base is the only way to satisfy
// this interface.
type Screen interface {
	// Load is called once when the screen is activated: either on AddScreen
	// when the manager is already initialized, or during Manager.Initialize.
	// A non-nil error is a configuration error and aborts the operation.
	Load() error

	// Unload is called exactly once before the screen is destroyed.
	Unload()

	// Update runs the screen's logic for one frame. otherScreenHasFocus is
	// true when a screen above this one has claimed input; covered is true
	// when a non-popup screen sits above this one. Overriders must call
	// Base.Update first to advance the transition machine.
	Update(dt float64, otherScreenHasFocus, covered bool)

	// HandleInput is called only for the screen that owns focus this frame.
	HandleInput(in *input.State)

	// Draw renders the screen. Structural stack changes requested during a
	// draw are deferred to the next update.
	Draw(dst *ebiten.Image, dt float64)

	// Exit begins the graceful removal path: the screen finishes its off
	// transition and is then dropped from the stack.
	Exit()

	common() *Base
}

// Base carries the state every screen shares: transition timers and
// position, popup/exiting flags, the controlling player and the back
// reference to the owning manager. Embed it (by value) in concrete screens.
type Base struct {
	onDuration  float64
	offDuration float64
	position    float64
	state       TransitionState

	popup   bool
	exiting bool

	otherScreenHasFocus bool

	controllingPlayer input.PlayerIndex
	manager           *Manager
	self              Screen
}

func (b *Base) common() *Base { return b }

// bind attaches the screen to its manager. Called from AddScreen; resets the
// exiting flag so a re-added screen starts a fresh life.
func (b *Base) bind(m *Manager, self Screen, player input.PlayerIndex) {
	b.manager = m
	b.self = self
	b.controllingPlayer = player
	b.exiting = false
	b.position = 1
	b.state = StateTransitionOn
}

// SetTransitionDurations configures how long the on and off transitions
// take, in seconds. Zero means instantaneous.
func (b *Base) SetTransitionDurations(on, off float64) {
	b.onDuration = on
	b.offDuration = off
}

// SetPopup marks the screen as a popup: it claims focus when on top but does
// not cover the screens beneath it.
func (b *Base) SetPopup(popup bool) { b.popup = popup }

// IsPopup reports whether the screen is a popup.
func (b *Base) IsPopup() bool { return b.popup }

// IsExiting reports whether a graceful removal is in progress.
func (b *Base) IsExiting() bool { return b.exiting }

// State returns the current transition state.
func (b *Base) State() TransitionState { return b.state }

// TransitionPosition is in [0,1]: 0 fully active, 1 fully off-screen.
func (b *Base) TransitionPosition() float64 { return b.position }

// TransitionAlpha is 1 at fully active, 0 at fully off. Consumers use it for
// fades; the core never interprets it.
func (b *Base) TransitionAlpha() float64 { return 1 - b.position }

// IsActive reports whether the screen can respond to input: it holds focus
// and is either fully active or transitioning on.
func (b *Base) IsActive() bool {
	return !b.otherScreenHasFocus &&
		(b.state == StateTransitionOn || b.state == StateActive)
}

// ControllingPlayer returns the player whose input this screen accepts, or
// input.PlayerAny when any player may drive it.
func (b *Base) ControllingPlayer() input.PlayerIndex { return b.controllingPlayer }

// SetControllingPlayer restricts the screen to one player's input.
func (b *Base) SetControllingPlayer(p input.PlayerIndex) { b.controllingPlayer = p }

// Manager returns the manager that owns this screen, nil before AddScreen.
func (b *Base) Manager() *Manager { return b.manager }

// Exit requests graceful removal. With a zero off-duration the screen is
// removed immediately; otherwise it keeps updating and drawing through its
// off transition and the manager drops it when the transition completes.
func (b *Base) Exit() {
	if b.offDuration <= 0 {
		if b.manager != nil {
			b.manager.RemoveScreen(b.self)
		}
		return
	}
	b.exiting = true
}

// Load implements Screen with a no-op.
func (b *Base) Load() error { return nil }

// Unload implements Screen with a no-op.
func (b *Base) Unload() {}

// HandleInput implements Screen with a no-op.
func (b *Base) HandleInput(in *input.State) {}

// Draw implements Screen with a no-op.
func (b *Base) Draw(dst *ebiten.Image, dt float64) {}

// Update advances the transition state machine for one frame. Exiting
// screens drive toward fully-off and settle at Hidden (the manager removes
// them in the same pass). Covered screens transition off but stay in the
// stack; once no longer covered they transition back on without any explicit
// re-activation call.
func (b *Base) Update(dt float64, otherScreenHasFocus, covered bool) {
	b.otherScreenHasFocus = otherScreenHasFocus

	switch {
	case b.exiting:
		b.state = StateTransitionOff
		if !b.advance(dt, b.offDuration, 1) {
			b.state = StateHidden
		}
	case covered:
		if b.advance(dt, b.offDuration, 1) {
			b.state = StateTransitionOff
		} else {
			b.state = StateHidden
		}
	default:
		if b.advance(dt, b.onDuration, -1) {
			b.state = StateTransitionOn
		} else {
			b.state = StateActive
		}
	}
}

// advance moves the transition position by dt in the given direction
// (+1 toward off, -1 toward on) and reports whether the transition is still
// in progress. A zero duration snaps to the limit within this call.
func (b *Base) advance(dt, duration float64, direction float64) bool {
	delta := 1.0
	if duration > 0 {
		delta = dt / duration
	}
	b.position += delta * direction

	if (direction < 0 && b.position <= 0) || (direction > 0 && b.position >= 1) {
		if b.position < 0 {
			b.position = 0
		}
		if b.position > 1 {
			b.position = 1
		}
		return false
	}
	return true
}

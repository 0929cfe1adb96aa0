package screen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenstack/internal/application/input"
)

// Manager owns the ordered screen stack. Index 0 is the bottom (oldest);
// the last element is the top and the default focus candidate.
//
// All work is single-threaded and happens inside the host's Update/Draw
// calls. The update pass iterates a private working copy of the stack, so
// screens may add or remove screens from inside their own callbacks without
// corrupting the pass.
type Manager struct {
	screens []Screen

	// updateList is the working copy consumed top-down by the in-flight
	// update pass. RemoveScreen edits it so a screen removed mid-pass is
	// not subsequently visited.
	updateList []Screen

	input *input.State

	width  int
	height int

	initialized bool
	drawing     bool

	pending         []pendingAdd
	pendingRemovals []Screen
}

type pendingAdd struct {
	screen Screen
	player input.PlayerIndex
}

// New creates a manager for a logical surface of the given size. The input
// snapshot is a required collaborator; Initialize fails without it.
func New(in *input.State, width, height int) *Manager {
	return &Manager{
		input:  in,
		width:  width,
		height: height,
	}
}

// Initialize performs the one-time setup: it verifies required collaborators
// and fires the load hook of every screen added so far. Screens added after
// a successful Initialize are activated immediately on AddScreen.
func (m *Manager) Initialize() error {
	if m.input == nil {
		return fmt.Errorf("screen manager: no input state configured")
	}
	for _, s := range m.screens {
		if err := s.Load(); err != nil {
			return fmt.Errorf("screen manager: load screen: %w", err)
		}
	}
	m.initialized = true
	return nil
}

// AddScreen pushes a screen onto the top of the stack for the given
// controlling player (input.PlayerAny to accept anyone). If the manager is
// initialized the screen's load hook fires before this call returns. Adds
// requested during a draw pass are buffered and applied, in order, at the
// start of the next update.
func (m *Manager) AddScreen(s Screen, player input.PlayerIndex) error {
	if m.drawing {
		m.pending = append(m.pending, pendingAdd{screen: s, player: player})
		return nil
	}
	return m.addNow(s, player)
}

func (m *Manager) addNow(s Screen, player input.PlayerIndex) error {
	s.common().bind(m, s, player)
	if m.initialized {
		if err := s.Load(); err != nil {
			return fmt.Errorf("screen manager: load screen: %w", err)
		}
	}
	m.screens = append(m.screens, s)
	return nil
}

// RemoveScreen drops a screen immediately, firing its unload hook. Prefer
// Screen.Exit, which preserves the off transition. Removing a screen that is
// not in the stack is a no-op. The screen is also pulled from the in-flight
// update pass so it is not visited after removal. Removals requested during
// a draw pass are buffered and applied at the start of the next update.
func (m *Manager) RemoveScreen(s Screen) {
	if m.drawing {
		m.pendingRemovals = append(m.pendingRemovals, s)
		return
	}
	m.removeNow(s)
}

func (m *Manager) removeNow(s Screen) {
	if !remove(&m.screens, s) {
		return
	}
	remove(&m.updateList, s)
	if m.initialized {
		s.Unload()
	}
}

func remove(list *[]Screen, s Screen) bool {
	for i, candidate := range *list {
		if candidate == s {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// Screens returns a snapshot copy of the stack, bottom to top. Structural
// changes only happen through AddScreen/RemoveScreen.
func (m *Manager) Screens() []Screen {
	out := make([]Screen, len(m.screens))
	copy(out, m.screens)
	return out
}

// Update runs one frame: refresh the input snapshot, then visit every screen
// present at the start of the call from top to bottom, advancing transitions
// and giving input to the topmost active screen only. Screens added during
// the pass are first visited next frame; screens removed during the pass are
// not visited again.
func (m *Manager) Update(dt float64) error {
	if err := m.flushDeferred(); err != nil {
		return err
	}

	m.input.Update()

	m.updateList = append(m.updateList[:0], m.screens...)

	otherScreenHasFocus := false
	coveredByOtherScreen := false

	// Pop from the end so visitation runs top to bottom.
	for len(m.updateList) > 0 {
		s := m.updateList[len(m.updateList)-1]
		m.updateList = m.updateList[:len(m.updateList)-1]

		s.Update(dt, otherScreenHasFocus, coveredByOtherScreen)

		b := s.common()
		if b.state == StateTransitionOn || b.state == StateActive {
			if !otherScreenHasFocus {
				s.HandleInput(m.input)
				otherScreenHasFocus = true
			}
			if !b.popup {
				coveredByOtherScreen = true
			}
		}

		// An exiting screen that finished its off transition is destroyed
		// rather than kept Hidden.
		if b.exiting && b.state == StateHidden {
			m.RemoveScreen(s)
		}
	}

	return nil
}

// flushDeferred applies the adds and removals buffered during the previous
// draw pass. Every deferred operation is applied even when an add fails to
// load; the first load error is reported.
func (m *Manager) flushDeferred() error {
	var firstErr error
	for _, p := range m.pending {
		if err := m.addNow(p.screen, p.player); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.pending = m.pending[:0]

	for _, s := range m.pendingRemovals {
		m.removeNow(s)
	}
	m.pendingRemovals = m.pendingRemovals[:0]

	return firstErr
}

// Shutdown fires every remaining screen's unload hook and empties the stack.
// Called once when the host tears down.
func (m *Manager) Shutdown() {
	if !m.initialized {
		m.screens = nil
		return
	}
	for _, s := range m.screens {
		s.Unload()
	}
	m.screens = nil
}

// Draw renders the stack bottom to top, skipping hidden screens. Draw never
// mutates the stack.
func (m *Manager) Draw(dst *ebiten.Image, dt float64) {
	m.drawing = true
	defer func() { m.drawing = false }()

	for _, s := range m.screens {
		if s.common().state == StateHidden {
			continue
		}
		s.Draw(dst, dt)
	}
}

// FadeToBlack darkens the whole surface by compositing black at the given
// alpha. Popups use it to dim the screens beneath them.
func (m *Manager) FadeToBlack(dst *ebiten.Image, alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	a := uint8(255 * alpha)
	ebitenutil.DrawRect(dst, 0, 0, float64(m.width), float64(m.height),
		color.RGBA{0, 0, 0, a})
}

// Size returns the logical surface size screens should lay out against.
func (m *Manager) Size() (int, int) {
	return m.width, m.height
}

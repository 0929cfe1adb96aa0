package screen

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/screenstack/internal/application/input"
)

// nullReader is an input source with nothing pressed.
type nullReader struct{}

func (nullReader) Poll(input.PlayerIndex) input.Controls { return 0 }

// stubScreen is a test double counting lifecycle calls.
type stubScreen struct {
	Base

	loadCalls   int
	unloadCalls int
	updateCalls int
	inputCalls  int
	drawCalls   int

	lastOtherFocus bool
	lastCovered    bool

	loadErr  error
	onUpdate func()
	onDraw   func()
}

func (s *stubScreen) Load() error {
	s.loadCalls++
	return s.loadErr
}

func (s *stubScreen) Unload() {
	s.unloadCalls++
}

func (s *stubScreen) Update(dt float64, otherScreenHasFocus, covered bool) {
	s.Base.Update(dt, otherScreenHasFocus, covered)
	s.updateCalls++
	s.lastOtherFocus = otherScreenHasFocus
	s.lastCovered = covered
	if s.onUpdate != nil {
		s.onUpdate()
	}
}

func (s *stubScreen) HandleInput(in *input.State) {
	s.inputCalls++
}

func (s *stubScreen) Draw(dst *ebiten.Image, dt float64) {
	s.drawCalls++
	if s.onDraw != nil {
		s.onDraw()
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := New(input.NewState(nullReader{}), 320, 240)
	require.NoError(t, m.Initialize())
	return m
}

func TestManager_InitializeRequiresInput(t *testing.T) {
	m := New(nil, 320, 240)
	assert.Error(t, m.Initialize(), "missing input collaborator is a configuration error")
}

func TestManager_InitializeLoadsEarlierScreens(t *testing.T) {
	m := New(input.NewState(nullReader{}), 320, 240)

	s := &stubScreen{}
	require.NoError(t, m.AddScreen(s, input.PlayerAny))
	assert.Equal(t, 0, s.loadCalls, "screens added before Initialize are not auto-activated")

	require.NoError(t, m.Initialize())
	assert.Equal(t, 1, s.loadCalls)
}

func TestManager_AddAfterInitializeLoadsImmediately(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{}
	require.NoError(t, m.AddScreen(s, input.PlayerOne))
	assert.Equal(t, 1, s.loadCalls)
	assert.Equal(t, input.PlayerOne, s.ControllingPlayer())
	assert.Same(t, m, s.Manager())
}

func TestManager_AddScreenLoadErrorAborts(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{loadErr: errors.New("missing surface")}
	err := m.AddScreen(s, input.PlayerAny)
	assert.Error(t, err)
	assert.Empty(t, m.Screens(), "a screen that failed to load must not join the stack")
}

func TestManager_ZeroDurationActivatesSameUpdate(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{}
	require.NoError(t, m.AddScreen(s, input.PlayerAny))

	require.NoError(t, m.Update(1.0/60.0))
	assert.Equal(t, StateActive, s.State())
}

func TestManager_FocusGoesToTopmostOnly(t *testing.T) {
	m := newTestManager(t)

	a := &stubScreen{}
	b := &stubScreen{}
	b.SetPopup(true)
	c := &stubScreen{}
	require.NoError(t, m.AddScreen(a, input.PlayerAny))
	require.NoError(t, m.AddScreen(b, input.PlayerAny))
	require.NoError(t, m.AddScreen(c, input.PlayerAny))

	require.NoError(t, m.Update(1.0/60.0))

	assert.Equal(t, 1, c.inputCalls, "topmost active screen owns focus")
	assert.Equal(t, 0, b.inputCalls, "focus already claimed above")
	assert.Equal(t, 0, a.inputCalls)
	assert.True(t, a.lastCovered, "non-hidden screens above cover the bottom screen")
	assert.False(t, c.lastCovered)
	assert.False(t, c.lastOtherFocus)
	assert.True(t, c.IsActive())
	assert.False(t, a.IsActive())
}

func TestManager_PopupDoesNotCoverScreenBeneath(t *testing.T) {
	m := newTestManager(t)

	a := &stubScreen{}
	b := &stubScreen{}
	b.SetPopup(true)
	require.NoError(t, m.AddScreen(a, input.PlayerAny))
	require.NoError(t, m.AddScreen(b, input.PlayerAny))

	require.NoError(t, m.Update(1.0/60.0))

	assert.Equal(t, 1, b.inputCalls)
	assert.Equal(t, 0, a.inputCalls, "popup still claims focus")
	assert.False(t, a.lastCovered, "popup does not cover the screen beneath it")
	assert.Equal(t, StateActive, a.State())
}

func TestManager_VisitationUnderMidPassMutation(t *testing.T) {
	m := newTestManager(t)

	a := &stubScreen{}
	b := &stubScreen{}
	c := &stubScreen{}
	d := &stubScreen{}
	require.NoError(t, m.AddScreen(a, input.PlayerAny))
	require.NoError(t, m.AddScreen(b, input.PlayerAny))
	require.NoError(t, m.AddScreen(c, input.PlayerAny))

	// The topmost screen mutates the stack from inside its own update.
	c.onUpdate = func() {
		c.onUpdate = nil
		require.NoError(t, m.AddScreen(d, input.PlayerAny))
		m.RemoveScreen(a)
	}

	require.NoError(t, m.Update(1.0/60.0))

	assert.Equal(t, 1, c.updateCalls)
	assert.Equal(t, 1, b.updateCalls)
	assert.Equal(t, 0, a.updateCalls, "screen removed mid-pass is not visited")
	assert.Equal(t, 0, d.updateCalls, "screen added mid-pass waits for the next pass")
	assert.Equal(t, 1, a.unloadCalls)

	require.NoError(t, m.Update(1.0/60.0))
	assert.Equal(t, 1, d.updateCalls)
	assert.Equal(t, 2, b.updateCalls)
	assert.Equal(t, 2, c.updateCalls)
}

func TestManager_ExitPreservesOffTransition(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{}
	s.SetTransitionDurations(0, 2.0)
	require.NoError(t, m.AddScreen(s, input.PlayerAny))
	require.NoError(t, m.Update(1.0/60.0)) // snap on

	s.Exit()
	assert.True(t, s.IsExiting())

	require.NoError(t, m.Update(1.0))
	assert.Len(t, m.Screens(), 1, "still fading out")
	assert.InDelta(t, 0.5, s.TransitionPosition(), 1e-9)

	require.NoError(t, m.Update(1.0))
	assert.Empty(t, m.Screens(), "removed once the off transition completes")
	assert.Equal(t, 1, s.unloadCalls)
}

func TestManager_ExitWithZeroOffDurationRemovesImmediately(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{}
	require.NoError(t, m.AddScreen(s, input.PlayerAny))

	s.Exit()
	assert.Empty(t, m.Screens())
	assert.Equal(t, 1, s.unloadCalls)
}

func TestManager_RemoveScreenNotPresentIsNoop(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{}
	m.RemoveScreen(s)
	assert.Equal(t, 0, s.unloadCalls, "unload fires only for screens actually in the stack")

	require.NoError(t, m.AddScreen(s, input.PlayerAny))
	m.RemoveScreen(s)
	m.RemoveScreen(s)
	assert.Equal(t, 1, s.unloadCalls, "unload fires exactly once")
}

func TestManager_ScreensReturnsSnapshotCopy(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{}
	require.NoError(t, m.AddScreen(s, input.PlayerAny))

	list := m.Screens()
	require.Len(t, list, 1)
	list[0] = nil
	assert.Same(t, s, m.Screens()[0], "mutating the returned slice must not affect the stack")
}

func TestManager_UpdateZeroDtIsIdempotent(t *testing.T) {
	m := newTestManager(t)

	s := &stubScreen{}
	s.SetTransitionDurations(1.0, 1.0)
	require.NoError(t, m.AddScreen(s, input.PlayerAny))
	require.NoError(t, m.Update(0.25))

	pos := s.TransitionPosition()
	st := s.State()
	for i := 0; i < 5; i++ {
		require.NoError(t, m.Update(0))
	}
	assert.Equal(t, pos, s.TransitionPosition())
	assert.Equal(t, st, s.State())
}

func TestManager_AddDuringDrawIsDeferred(t *testing.T) {
	m := newTestManager(t)

	late := &stubScreen{}
	s := &stubScreen{}
	s.onDraw = func() {
		s.onDraw = nil
		require.NoError(t, m.AddScreen(late, input.PlayerAny))
	}
	require.NoError(t, m.AddScreen(s, input.PlayerAny))
	require.NoError(t, m.Update(1.0/60.0))

	img := ebiten.NewImage(320, 240)
	m.Draw(img, 1.0/60.0)
	assert.Len(t, m.Screens(), 1, "add during draw is buffered")

	require.NoError(t, m.Update(1.0/60.0))
	assert.Len(t, m.Screens(), 2)
	assert.Equal(t, 1, late.loadCalls)
}

func TestManager_ShutdownUnloadsEverything(t *testing.T) {
	m := newTestManager(t)

	a := &stubScreen{}
	b := &stubScreen{}
	require.NoError(t, m.AddScreen(a, input.PlayerAny))
	require.NoError(t, m.AddScreen(b, input.PlayerAny))

	m.Shutdown()
	assert.Equal(t, 1, a.unloadCalls)
	assert.Equal(t, 1, b.unloadCalls)
	assert.Empty(t, m.Screens())
}

func TestManager_RemoveDuringDrawIsDeferred(t *testing.T) {
	m := newTestManager(t)

	a := &stubScreen{}
	b := &stubScreen{}
	c := &stubScreen{}
	for _, s := range []*stubScreen{a, b, c} {
		s.SetPopup(true) // keep every screen visible so all three are drawn
		require.NoError(t, m.AddScreen(s, input.PlayerAny))
	}
	require.NoError(t, m.Update(1.0/60.0))

	// The bottom screen removes its neighbor from inside its own draw.
	a.onDraw = func() {
		a.onDraw = nil
		m.RemoveScreen(b)
	}

	img := ebiten.NewImage(320, 240)
	m.Draw(img, 1.0/60.0)

	assert.Len(t, m.Screens(), 3, "remove during draw is buffered")
	assert.Equal(t, 1, b.drawCalls)
	assert.Equal(t, 1, c.drawCalls, "screens above the removal point are drawn exactly once")
	assert.Equal(t, 0, b.unloadCalls, "unload does not fire mid-draw")

	require.NoError(t, m.Update(1.0/60.0))
	assert.Len(t, m.Screens(), 2)
	assert.Equal(t, 1, b.unloadCalls)
	assert.Equal(t, 1, b.updateCalls, "removal applies before the pass visits anyone")
}

func TestManager_DrawTimeAddFailureKeepsLaterAdds(t *testing.T) {
	m := newTestManager(t)

	bad := &stubScreen{loadErr: errors.New("missing surface")}
	good := &stubScreen{}
	s := &stubScreen{}
	s.onDraw = func() {
		s.onDraw = nil
		require.NoError(t, m.AddScreen(bad, input.PlayerAny))
		require.NoError(t, m.AddScreen(good, input.PlayerAny))
	}
	require.NoError(t, m.AddScreen(s, input.PlayerAny))
	require.NoError(t, m.Update(1.0/60.0))

	img := ebiten.NewImage(320, 240)
	m.Draw(img, 1.0/60.0)

	err := m.Update(1.0/60.0)
	assert.Error(t, err, "the failed load still surfaces")

	screens := m.Screens()
	require.Len(t, screens, 2, "the add after the failing one is not dropped")
	assert.Same(t, good, screens[1])
	assert.Equal(t, 1, good.loadCalls)
}

func TestManager_DrawSkipsHiddenScreens(t *testing.T) {
	m := newTestManager(t)

	bottom := &stubScreen{}
	top := &stubScreen{}
	require.NoError(t, m.AddScreen(bottom, input.PlayerAny))
	require.NoError(t, m.AddScreen(top, input.PlayerAny))

	// Bottom snaps to Hidden under the non-popup top.
	require.NoError(t, m.Update(1.0/60.0))
	require.Equal(t, StateHidden, bottom.State())

	img := ebiten.NewImage(320, 240)
	m.Draw(img, 1.0/60.0)
	m.FadeToBlack(img, 0.5)

	assert.Equal(t, 0, bottom.drawCalls)
	assert.Equal(t, 1, top.drawCalls)
}

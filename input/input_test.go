package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/munchies/engine"
	"github.com/lixenwraith/munchies/session"
	"github.com/lixenwraith/munchies/vmath"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newTestKeyboard() (*Keyboard, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewKeyboard(nil, clock), clock
}

func TestKeyboardHeldDirections(t *testing.T) {
	kb, clock := newTestKeyboard()

	kb.HandleKey(runeKey('w'))
	kb.HandleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	dir, dash := kb.Poll()
	assert.False(t, dash)
	assert.Equal(t, vmath.Vec3F{X: 1, Z: -1}, dir)

	// Still held within the repeat window
	clock.Advance(100 * time.Millisecond)
	dir, _ = kb.Poll()
	assert.Equal(t, vmath.Vec3F{X: 1, Z: -1}, dir)

	clock.Advance(100 * time.Millisecond)
	dir, _ = kb.Poll()
	assert.Equal(t, vmath.Vec3F{}, dir)
}

func TestKeyboardUppercaseMoves(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.HandleKey(runeKey('A'))
	dir, _ := kb.Poll()
	assert.Equal(t, vmath.Vec3F{X: -1}, dir)
}

func TestKeyboardDashConsumedOnce(t *testing.T) {
	kb, _ := newTestKeyboard()
	kb.HandleKey(runeKey(' '))

	_, dash := kb.Poll()
	assert.True(t, dash)
	_, dash = kb.Poll()
	assert.False(t, dash)
}

func TestKeyboardCommands(t *testing.T) {
	kb, _ := newTestKeyboard()

	cases := []struct {
		ev   *tcell.EventKey
		kind session.CommandKind
	}{
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), session.CmdStart},
		{runeKey('p'), session.CmdTogglePause},
		{runeKey('r'), session.CmdRestart},
		{runeKey('m'), session.CmdMenu},
		{runeKey('e'), session.CmdOpenEditor},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), session.CmdCloseEditor},
		{runeKey('v'), session.CmdToggleMute},
		{runeKey('q'), session.CmdQuit},
	}
	for _, tc := range cases {
		cmd, ok := kb.HandleKey(tc.ev)
		require.True(t, ok, tc.kind.String())
		assert.Equal(t, tc.kind, cmd.Kind)
	}

	cmd, ok := kb.HandleKey(runeKey('1'))
	require.True(t, ok)
	assert.Equal(t, session.Command{Kind: session.CmdBuyHat, Arg: "tophat"}, cmd)

	_, ok = kb.HandleKey(runeKey('z'))
	assert.False(t, ok)
}

func TestJoystickScalesAndClamps(t *testing.T) {
	j := NewJoystick()

	j.Set(22.5, 0)
	dir, _ := j.Poll()
	assert.InDelta(t, 0.5, dir.X, 1e-9)

	// Far outside the stick radius: magnitude capped at 1, direction kept
	j.Set(300, 400)
	dir, _ = j.Poll()
	assert.InDelta(t, 1.0, vmath.V3FMag(dir), 1e-9)
	assert.InDelta(t, 0.6, dir.X, 1e-9)
	assert.InDelta(t, 0.8, dir.Z, 1e-9)

	j.Release()
	dir, _ = j.Poll()
	assert.Equal(t, vmath.Vec3F{}, dir)
}

func TestMuxJoystickOverridesKeyboard(t *testing.T) {
	kb, _ := newTestKeyboard()
	j := NewJoystick()
	mux := NewMux(kb, j)

	kb.HandleKey(runeKey('d'))
	j.Set(0, 45)
	j.Dash()

	dir, dash := mux.Poll()
	assert.True(t, dash)
	assert.InDelta(t, 0.0, dir.X, 1e-9)
	assert.InDelta(t, 1.0, dir.Z, 1e-9)
	assert.False(t, math.IsNaN(dir.X))

	// centred stick falls back to the keyboard
	j.Release()
	kb.HandleKey(runeKey('d'))
	dir, dash = mux.Poll()
	assert.False(t, dash)
	assert.Equal(t, vmath.Vec3F{X: 1}, dir)
}

func TestMuxResetDropsLatchedDash(t *testing.T) {
	kb, _ := newTestKeyboard()
	j := NewJoystick()
	mux := NewMux(kb, j)

	kb.HandleKey(runeKey(' '))
	kb.HandleKey(runeKey('w'))
	j.Set(45, 0)
	j.Dash()

	mux.Reset()

	dir, dash := mux.Poll()
	assert.False(t, dash)
	assert.InDelta(t, 1.0, dir.X, 1e-9, "stick deflection survives reset")

	j.Release()
	dir, _ = mux.Poll()
	assert.Equal(t, vmath.Vec3F{}, dir, "held keys cleared by reset")
}

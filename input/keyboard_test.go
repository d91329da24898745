package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyboardKeyMap(t *testing.T) {
	m := NewDefaultKeyboardManager()
	c := NewController()

	m.OnKeyDown(KeyEvent{Code: KeySpace}, c)
	require.Equal(t, Pressed, m.Key(KeySpace))

	m.Reset()
	require.Equal(t, Held, m.Key(KeySpace))

	m.OnKeyUp(KeyEvent{Code: KeySpace}, c)
	require.Equal(t, Released, m.Key(KeySpace))

	m.Reset()
	require.Equal(t, None, m.Key(KeySpace))

	// unbound keys leave the controller alone
	require.Equal(t, Snapshot{Buttons: map[string]string{}, Analogs: map[string]float64{}}, c.Snapshot())
}

func TestKeyboardIgnoresUnknownCodes(t *testing.T) {
	m := NewDefaultKeyboardManager()
	for _, code := range []KeyCode{0, -4, KeyCodeCount, 1000} {
		m.OnKeyDown(KeyEvent{Code: code}, nil)
		m.OnKeyUp(KeyEvent{Code: code}, nil)
		require.Equal(t, None, m.Key(code))
	}
}

func TestKeyboardBindings(t *testing.T) {
	m := NewDefaultKeyboardManager()
	m.SetBindings(&KeyBindings{
		Buttons: map[KeyCode]Button{KeyEnter: ButtonStart, KeyA + 25: ButtonA},
		Up:      KeyUp,
		Down:    KeyDown,
		Left:    KeyLeft,
		Right:   KeyRight,
	})
	c := NewController()

	m.OnKeyDown(KeyEvent{Code: KeyEnter}, c)
	require.Equal(t, Pressed, c.Button(ButtonStart))
	require.Equal(t, 1.0, c.Analog(ButtonStart))

	m.OnKeyDown(KeyEvent{Code: KeyLeft}, c)
	m.OnKeyDown(KeyEvent{Code: KeyUp}, c)
	require.Equal(t, -1.0, c.AxisLeft().X)
	require.Equal(t, -1.0, c.AxisLeft().Y)

	// opposite directions cancel
	m.OnKeyDown(KeyEvent{Code: KeyRight}, c)
	require.Equal(t, 0.0, c.AxisLeft().X)

	m.OnKeyUp(KeyEvent{Code: KeyLeft}, c)
	require.Equal(t, 1.0, c.AxisLeft().X)

	m.OnKeyUp(KeyEvent{Code: KeyEnter}, c)
	require.Equal(t, Released, c.Button(ButtonStart))

	m.SetBindings(nil)
	m.OnKeyDown(KeyEvent{Code: KeyA + 25}, c)
	require.Equal(t, None, c.Button(ButtonA))
}

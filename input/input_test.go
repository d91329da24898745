package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	pads []*Gamepad
}

func (f *fakeSource) Gamepads() []*Gamepad {
	return f.pads
}

func TestInputDefaults(t *testing.T) {
	in := New(nil)
	require.IsType(t, &DefaultKeyboardManager{}, in.Keyboard)
	require.IsType(t, &DefaultMouseManager{}, in.Mouse)
	require.IsType(t, &DefaultGamepadManager{}, in.Gamepad)

	players := []*Controller{in.Player1(), in.Player2(), in.Player3(), in.Player4()}
	for i, p := range players {
		require.Same(t, in.Controller(i), p)
	}
	require.Nil(t, in.Controller(-1))
	require.Nil(t, in.Controller(ControllerCount))

	// no source: Act is a no-op
	require.NotPanics(t, in.Act)
}

func TestInputActRoutesGamepads(t *testing.T) {
	in := New(nil)
	src := &fakeSource{}
	in.SetGamepadSource(src)

	src.pads = []*Gamepad{
		pad(1, "pad", 6, 0),
		nil,
		pad(1, "pad", 6, 1),
		pad(1, "pad", 6, 2),
		pad(1, "pad", 6, 3), // fifth pad has no controller
	}
	in.Act()

	require.Equal(t, Pressed, in.Player1().Button(ButtonA))
	require.Equal(t, None, in.Player2().Button(ButtonA))
	require.Equal(t, Pressed, in.Player3().Button(ButtonB))
	require.Equal(t, Pressed, in.Player4().Button(ButtonX))

	in.Reset()
	require.Equal(t, Held, in.Player1().Button(ButtonA))
}

func TestInputRouting(t *testing.T) {
	in := New(nil)
	in.KeyboardController = 1
	in.MouseController = 2
	in.Keyboard.(*DefaultKeyboardManager).SetBindings(&KeyBindings{
		Buttons: map[KeyCode]Button{KeySpace: ButtonA},
	})
	in.Mouse.(*DefaultMouseManager).SetBindings(map[int]Button{0: ButtonB})

	in.OnKeyDown(KeyEvent{Code: KeySpace})
	in.OnMouseDown(MouseButtonEvent{Button: 0})
	in.OnMouseMove(MouseMoveEvent{OffsetX: 3, OffsetY: 4})
	in.OnMouseWheel(WheelEvent{DeltaY: 1})

	require.Equal(t, Pressed, in.Player2().Button(ButtonA))
	require.Equal(t, None, in.Player1().Button(ButtonA))
	require.Equal(t, Pressed, in.Player3().Button(ButtonB))
	require.Equal(t, Pressed, in.Keyboard.Key(KeySpace))
	require.Equal(t, 3.0, in.Mouse.Position().X)
	require.Equal(t, 1.0, in.Mouse.Wheel()[1])

	in.Reset()
	require.Equal(t, Held, in.Keyboard.Key(KeySpace))
	require.Equal(t, Held, in.Mouse.Buttons()[0])
	require.Equal(t, Held, in.Player2().Button(ButtonA))

	in.OnKeyUp(KeyEvent{Code: KeySpace})
	in.OnMouseUp(MouseButtonEvent{Button: 0})
	require.Equal(t, Released, in.Player2().Button(ButtonA))
	require.Equal(t, Released, in.Player3().Button(ButtonB))

	in.Reset()
	require.Equal(t, None, in.Keyboard.Key(KeySpace))
	require.Equal(t, None, in.Player3().Button(ButtonB))
}

func TestInputOutOfRangeRouting(t *testing.T) {
	in := New(nil)
	in.KeyboardController = 9
	in.Keyboard.(*DefaultKeyboardManager).SetBindings(&KeyBindings{
		Buttons: map[KeyCode]Button{KeySpace: ButtonA},
	})
	require.NotPanics(t, func() { in.OnKeyDown(KeyEvent{Code: KeySpace}) })
	require.Equal(t, Pressed, in.Keyboard.Key(KeySpace))
	for i := 0; i < ControllerCount; i++ {
		require.Equal(t, None, in.Controller(i).Button(ButtonA))
	}
}

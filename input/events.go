package input

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyCode is a browser style key code (KeyboardEvent.keyCode).
type KeyCode int

const (
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyEnter     KeyCode = 13
	KeyShift     KeyCode = 16
	KeyControl   KeyCode = 17
	KeyAlt       KeyCode = 18
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
	Key0         KeyCode = 48
	KeyA         KeyCode = 65
	KeyF1        KeyCode = 112
)

// KeyCodeCount bounds the key codes tracked by the default keyboard manager.
const KeyCodeCount = 223

var keyNames = map[string]KeyCode{
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"enter":     KeyEnter,
	"shift":     KeyShift,
	"control":   KeyControl,
	"ctrl":      KeyControl,
	"alt":       KeyAlt,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"space":     KeySpace,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
}

func init() {
	for i := 0; i < 10; i++ {
		keyNames[strconv.Itoa(i)] = Key0 + KeyCode(i)
	}
	for i := 0; i < 26; i++ {
		keyNames[string(rune('a'+i))] = KeyA + KeyCode(i)
	}
	for i := 0; i < 12; i++ {
		keyNames["f"+strconv.Itoa(i+1)] = KeyF1 + KeyCode(i)
	}
}

// ParseKeyCode resolves a key name ("a", "space", "f5") or a numeric key
// code.
func ParseKeyCode(name string) (KeyCode, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNames[s]; ok {
		return k, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n >= KeyCodeCount {
		return 0, fmt.Errorf("input: unknown key %q", name)
	}
	return KeyCode(n), nil
}

type KeyEvent struct {
	Code KeyCode
}

// MouseMoveEvent carries the cursor offset relative to the canvas.
type MouseMoveEvent struct {
	OffsetX float64
	OffsetY float64
}

// MouseButtonEvent carries a browser mouse button number: 0 left, 1 middle,
// 2 right, 3 back, 4 forward.
type MouseButtonEvent struct {
	Button int
}

type WheelEvent struct {
	DeltaX float64
	DeltaY float64
	DeltaZ float64
}

type GamepadButton struct {
	Pressed bool
	Value   float64
}

// Gamepad is one poll of a connected gamepad.
type Gamepad struct {
	// ID is the device description, which includes the USB vendor id when the
	// platform reports one.
	ID string
	// Timestamp increases whenever the device reports new data.
	Timestamp int64
	Buttons   []GamepadButton
	Axes      []float64
}

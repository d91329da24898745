package input

// KeyBindings maps keys onto controller buttons and the left stick.
// A zero KeyCode leaves a stick direction unbound.
type KeyBindings struct {
	Buttons map[KeyCode]Button
	Up      KeyCode
	Down    KeyCode
	Left    KeyCode
	Right   KeyCode
}

func (b *KeyBindings) drivesAxis(code KeyCode) bool {
	return code != 0 && (code == b.Up || code == b.Down || code == b.Left || code == b.Right)
}

// DefaultKeyboardManager tracks every key code and, when bindings are set,
// mirrors bound keys onto the controller.
type DefaultKeyboardManager struct {
	keys     [KeyCodeCount]State
	bindings *KeyBindings
}

func NewDefaultKeyboardManager() *DefaultKeyboardManager {
	return &DefaultKeyboardManager{}
}

// SetBindings replaces the key bindings. nil disables them.
func (m *DefaultKeyboardManager) SetBindings(b *KeyBindings) {
	m.bindings = b
}

func (m *DefaultKeyboardManager) OnKeyDown(e KeyEvent, c *Controller) {
	if !validKey(e.Code) {
		return
	}
	m.keys[e.Code] = Pressed
	m.apply(e.Code, true, c)
}

func (m *DefaultKeyboardManager) OnKeyUp(e KeyEvent, c *Controller) {
	if !validKey(e.Code) {
		return
	}
	m.keys[e.Code] = Released
	m.apply(e.Code, false, c)
}

func (m *DefaultKeyboardManager) apply(code KeyCode, down bool, c *Controller) {
	if m.bindings == nil || c == nil {
		return
	}
	if b, ok := m.bindings.Buttons[code]; ok {
		if down {
			c.Press(b)
		} else {
			c.Release(b)
		}
	}
	if m.bindings.drivesAxis(code) {
		axis := c.AxisLeft()
		axis.X = m.axisValue(m.bindings.Left, m.bindings.Right)
		axis.Y = m.axisValue(m.bindings.Up, m.bindings.Down)
	}
}

func (m *DefaultKeyboardManager) axisValue(neg, pos KeyCode) float64 {
	var v float64
	if m.Key(neg).Down() {
		v--
	}
	if m.Key(pos).Down() {
		v++
	}
	return v
}

// Key returns the state of a key code. Unknown codes read as None.
func (m *DefaultKeyboardManager) Key(code KeyCode) State {
	if !validKey(code) {
		return None
	}
	return m.keys[code]
}

func (m *DefaultKeyboardManager) Reset() {
	for i := range m.keys {
		m.keys[i] = m.keys[i].Reset()
	}
}

func validKey(code KeyCode) bool {
	return code > 0 && code < KeyCodeCount
}

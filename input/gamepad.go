package input

import (
	"strings"

	"go.uber.org/zap"
)

// ButtonMapping routes one raw gamepad button onto a controller button.
type ButtonMapping struct {
	Index  int
	Button Button
}

// Layout describes how a family of gamepads reports its buttons.
type Layout struct {
	Name string
	// Match lists substrings of the gamepad ID that select this layout. An
	// empty list matches every gamepad.
	Match   []string
	Buttons []ButtonMapping
}

func (l *Layout) matches(id string) bool {
	if len(l.Match) == 0 {
		return true
	}
	lower := strings.ToLower(id)
	for _, m := range l.Match {
		if m != "" && strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func mappings(start int, buttons ...Button) []ButtonMapping {
	out := make([]ButtonMapping, len(buttons))
	for i, b := range buttons {
		out[i] = ButtonMapping{Index: start + i, Button: b}
	}
	return out
}

// GenericLayout covers the face buttons and bumpers that nearly every gamepad
// reports in the same place: A, B, X, Y from 0 and LB, RB from 4.
var GenericLayout = Layout{
	Name: "generic",
	Buttons: append(
		mappings(0, ButtonA, ButtonB, ButtonX, ButtonY),
		mappings(4, ButtonLB, ButtonRB)...),
}

// SwitchProLayout is the Nintendo Switch Pro controller, recognised by the
// Nintendo USB vendor id 057e.
var SwitchProLayout = Layout{
	Name:  "switch_pro",
	Match: []string{"057e"},
	Buttons: concat(
		GenericLayout.Buttons,
		mappings(6, ButtonLT, ButtonRT),
		mappings(8, ButtonSelect, ButtonStart),
		mappings(10, ButtonLS, ButtonRS),
		mappings(12, ButtonDPadUp, ButtonDPadDown, ButtonDPadLeft, ButtonDPadRight),
		mappings(16, ButtonHome, ButtonScreenShot),
	),
}

func concat(parts ...[]ButtonMapping) []ButtonMapping {
	var out []ButtonMapping
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// maxStickAxes is the number of raw axes read as two sticks.
const maxStickAxes = 4

type padSlot struct {
	lastUpdated int64
	layout      *Layout
}

// DefaultGamepadManager applies gamepad polls using the first matching
// layout. Extra layouts are consulted before the Switch Pro and generic ones.
type DefaultGamepadManager struct {
	layouts []Layout
	slots   map[int]*padSlot
	log     *zap.Logger
}

func NewDefaultGamepadManager(log *zap.Logger, extra ...Layout) *DefaultGamepadManager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &DefaultGamepadManager{
		slots: make(map[int]*padSlot),
		log:   log,
	}
	m.SetLayouts(extra...)
	return m
}

// SetLayouts replaces the extra layouts. Slots pick their layout again on the
// next poll.
func (m *DefaultGamepadManager) SetLayouts(extra ...Layout) {
	layouts := make([]Layout, 0, len(extra)+2)
	layouts = append(layouts, extra...)
	layouts = append(layouts, SwitchProLayout, GenericLayout)
	m.layouts = layouts
}

// LayoutFor returns the layout used for a gamepad ID.
func (m *DefaultGamepadManager) LayoutFor(id string) *Layout {
	for i := range m.layouts {
		if m.layouts[i].matches(id) {
			return &m.layouts[i]
		}
	}
	return &GenericLayout
}

func (m *DefaultGamepadManager) Update(slot int, pad *Gamepad, c *Controller) {
	if c == nil {
		return
	}
	if pad == nil {
		m.disconnected(slot, c)
		return
	}

	s, ok := m.slots[slot]
	if ok && pad.Timestamp <= s.lastUpdated {
		return
	}
	if !ok {
		s = &padSlot{}
		m.slots[slot] = s
		m.log.Info("gamepad connected", zap.Int("slot", slot), zap.String("id", pad.ID))
	}

	layout := m.LayoutFor(pad.ID)
	if s.layout != layout {
		if s.layout == nil || s.layout.Name != layout.Name {
			m.log.Debug("gamepad layout", zap.Int("slot", slot), zap.String("layout", layout.Name))
		}
		releaseUnmapped(s.layout, layout, c)
	}
	s.layout = layout

	joystick(pad, c)
	for _, bm := range layout.Buttons {
		if bm.Index < 0 || bm.Index >= len(pad.Buttons) {
			continue
		}
		btn := pad.Buttons[bm.Index]
		c.Update(bm.Button, btn.Pressed, btn.Value)
	}
	s.lastUpdated = pad.Timestamp
}

// releaseUnmapped lets go of buttons that old drove and next does not.
func releaseUnmapped(old, next *Layout, c *Controller) {
	if old == nil {
		return
	}
	for _, bm := range old.Buttons {
		if !next.maps(bm.Button) {
			c.Update(bm.Button, false, 0)
		}
	}
}

func (l *Layout) maps(b Button) bool {
	for _, bm := range l.Buttons {
		if bm.Button == b {
			return true
		}
	}
	return false
}

// joystick reads up to four axes as the left and right sticks.
func joystick(pad *Gamepad, c *Controller) {
	n := min(len(pad.Axes), maxStickAxes)
	for i := 0; i < n; i++ {
		axis := c.Axis(Axis(i / 2))
		if i&1 == 1 {
			axis.Y = pad.Axes[i]
		} else {
			axis.X = pad.Axes[i]
		}
	}
}

// disconnected lets go of everything the slot's last layout was driving.
func (m *DefaultGamepadManager) disconnected(slot int, c *Controller) {
	s, ok := m.slots[slot]
	if !ok {
		return
	}
	delete(m.slots, slot)
	m.log.Info("gamepad disconnected", zap.Int("slot", slot))

	if s.layout != nil {
		for _, bm := range s.layout.Buttons {
			c.Update(bm.Button, false, 0)
		}
	}
	c.AxisLeft().Zero()
	c.AxisRight().Zero()
}

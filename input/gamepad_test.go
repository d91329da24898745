package input

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const switchProID = "Pro Controller (STANDARD GAMEPAD Vendor: 057e Product: 2009)"

func pad(ts int64, id string, buttons int, pressed ...int) *Gamepad {
	p := &Gamepad{ID: id, Timestamp: ts, Buttons: make([]GamepadButton, buttons)}
	for _, i := range pressed {
		p.Buttons[i] = GamepadButton{Pressed: true, Value: 1}
	}
	return p
}

func TestLayoutSelection(t *testing.T) {
	custom := Layout{
		Name:    "arcade",
		Match:   []string{"ARCADE"},
		Buttons: []ButtonMapping{{Index: 0, Button: ButtonStart}},
	}
	m := NewDefaultGamepadManager(nil, custom)

	cases := []struct {
		id   string
		want string
	}{
		{switchProID, "switch_pro"},
		{"Xbox Wireless Controller (STANDARD GAMEPAD Vendor: 045e Product: 02fd)", "generic"},
		{"my arcade stick", "arcade"},
		{"", "generic"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			require.Equal(t, c.want, m.LayoutFor(c.id).Name)
		})
	}
}

func TestGenericLayout(t *testing.T) {
	m := NewDefaultGamepadManager(nil)
	c := NewController()

	p := pad(1, "Generic USB Joystick", 18, 0, 5, 8)
	p.Buttons[2] = GamepadButton{Value: 0.3}
	m.Update(0, p, c)

	require.Equal(t, Pressed, c.Button(ButtonA))
	require.Equal(t, Pressed, c.Button(ButtonRB))
	require.Equal(t, None, c.Button(ButtonB))
	require.Equal(t, 0.3, c.Analog(ButtonX))
	// index 8 is Select only on the Switch Pro layout
	require.Equal(t, None, c.Button(ButtonSelect))
}

func TestSwitchProLayout(t *testing.T) {
	m := NewDefaultGamepadManager(nil)
	c := NewController()

	all := make([]int, 18)
	for i := range all {
		all[i] = i
	}
	m.Update(0, pad(1, switchProID, 18, all...), c)

	for b := Button(0); b < ButtonCount; b++ {
		want := Pressed
		switch b {
		case ButtonC, ButtonD, ButtonW, ButtonZ:
			want = None
		}
		require.Equal(t, want, c.Button(b), b.String())
	}

	// next poll with everything still down
	m.Update(0, pad(2, switchProID, 18, all...), c)
	require.Equal(t, Held, c.Button(ButtonScreenShot))
	require.Equal(t, Held, c.Button(ButtonDPadDown))

	// and released
	m.Update(0, pad(3, switchProID, 18), c)
	require.Equal(t, Released, c.Button(ButtonHome))
	require.Equal(t, Released, c.Button(ButtonLT))
}

func TestShortButtonList(t *testing.T) {
	m := NewDefaultGamepadManager(nil)
	c := NewController()
	require.NotPanics(t, func() {
		m.Update(0, pad(1, switchProID, 3, 0, 2), c)
	})
	require.Equal(t, Pressed, c.Button(ButtonA))
	require.Equal(t, Pressed, c.Button(ButtonX))
	require.Equal(t, None, c.Button(ButtonY))
}

func TestJoystick(t *testing.T) {
	cases := []struct {
		name        string
		axes        []float64
		left, right [2]float64
	}{
		{"none", nil, [2]float64{}, [2]float64{}},
		{"left_only", []float64{0.5, -0.25}, [2]float64{0.5, -0.25}, [2]float64{}},
		{"three_axes", []float64{1, 2, 3}, [2]float64{1, 2}, [2]float64{3, 0}},
		{"extra_axes_ignored", []float64{1, 2, 3, 4, 5, 6}, [2]float64{1, 2}, [2]float64{3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewDefaultGamepadManager(nil)
			c := NewController()
			p := pad(1, "pad", 6)
			p.Axes = tc.axes
			m.Update(0, p, c)
			s := c.Snapshot()
			require.Equal(t, tc.left, s.Left)
			require.Equal(t, tc.right, s.Right)
		})
	}
}

func TestStaleTimestampSkipped(t *testing.T) {
	m := NewDefaultGamepadManager(nil)
	c := NewController()

	m.Update(0, pad(10, "pad", 6, 0), c)
	require.Equal(t, Pressed, c.Button(ButtonA))

	// same data again: nothing advances
	m.Update(0, pad(10, "pad", 6, 0), c)
	require.Equal(t, Pressed, c.Button(ButtonA))

	// older data is ignored too
	m.Update(0, pad(9, "pad", 6), c)
	require.Equal(t, Pressed, c.Button(ButtonA))

	// timestamps are tracked per slot
	other := NewController()
	m.Update(1, pad(5, "pad", 6, 1), other)
	require.Equal(t, Pressed, other.Button(ButtonB))
}

func TestDisconnect(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	m := NewDefaultGamepadManager(zap.New(core))
	c := NewController()

	// never connected: nothing happens
	m.Update(0, nil, c)
	require.Zero(t, logs.Len())

	p := pad(1, switchProID, 18, 0, 16)
	p.Axes = []float64{0.5, 0.5, 0.5, 0.5}
	m.Update(0, p, c)
	m.Update(0, nil, c)

	require.Equal(t, Released, c.Button(ButtonA))
	require.Equal(t, Released, c.Button(ButtonHome))
	require.Equal(t, None, c.Button(ButtonB))
	require.True(t, c.AxisLeft().IsZero())
	require.True(t, c.AxisRight().IsZero())

	msgs := []string{}
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	require.Equal(t, []string{"gamepad connected", "gamepad disconnected"}, msgs)

	// reconnecting starts a fresh timestamp record
	m.Update(0, pad(1, switchProID, 18, 0), c)
	require.Equal(t, Pressed, c.Button(ButtonA))
}

func TestLayoutSwapReleasesDroppedButtons(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := NewDefaultGamepadManager(zap.New(core))
	c := NewController()

	all := make([]int, 18)
	for i := range all {
		all[i] = i
	}
	m.Update(0, pad(1, switchProID, 18, all...), c)
	c.Reset()
	require.Equal(t, Held, c.Button(ButtonHome))

	m.SetLayouts(Layout{
		Name:    "faces",
		Match:   []string{"057e"},
		Buttons: mappings(0, ButtonA, ButtonB),
	})
	m.Update(0, pad(2, switchProID, 18), c)
	require.Equal(t, Released, c.Button(ButtonHome))
	require.Equal(t, Released, c.Button(ButtonLT))
	require.Equal(t, Released, c.Button(ButtonA))

	for ts := int64(3); ts < 6; ts++ {
		c.Reset()
		m.Update(0, pad(ts, switchProID, 18), c)
	}
	for b := Button(0); b < ButtonCount; b++ {
		require.Equal(t, None, c.Button(b), b.String())
	}

	layouts := []string{}
	for _, e := range logs.FilterMessage("gamepad layout").All() {
		layouts = append(layouts, e.ContextMap()["layout"].(string))
	}
	require.Equal(t, []string{"switch_pro", "faces"}, layouts)
}

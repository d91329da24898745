package input

import "github.com/milk9111/gamekit/vec"

// Controller is the normalized state of one player's input device: a state
// and an analog value per button plus two sticks.
type Controller struct {
	buttons [ButtonCount]State
	analogs [ButtonCount]float64
	axes    [AxisCount]vec.Vector2
}

func NewController() *Controller {
	return &Controller{}
}

// Button returns the edge state of b. Unknown buttons read as None.
func (c *Controller) Button(b Button) State {
	if !b.valid() {
		return None
	}
	return c.buttons[b]
}

func (c *Controller) SetButton(b Button, s State) {
	if !b.valid() {
		return
	}
	c.buttons[b] = s
}

// Analog returns how far b is pressed, 0..1 for analog triggers and 0 or 1
// for digital buttons.
func (c *Controller) Analog(b Button) float64 {
	if !b.valid() {
		return 0
	}
	return c.analogs[b]
}

func (c *Controller) SetAnalog(b Button, v float64) {
	if !b.valid() {
		return
	}
	c.analogs[b] = v
}

// Axis returns the stick a. The returned vector may be modified in place.
// Unknown axes return a detached zero vector.
func (c *Controller) Axis(a Axis) *vec.Vector2 {
	if !a.valid() {
		return &vec.Vector2{}
	}
	return &c.axes[a]
}

func (c *Controller) AxisLeft() *vec.Vector2 {
	return &c.axes[AxisLeft]
}

func (c *Controller) AxisRight() *vec.Vector2 {
	return &c.axes[AxisRight]
}

// Update advances b from a polled device reading.
func (c *Controller) Update(b Button, pressed bool, value float64) {
	if !b.valid() {
		return
	}
	c.buttons[b] = Next(c.buttons[b], pressed)
	c.analogs[b] = value
}

// Press records a button down event.
func (c *Controller) Press(b Button) {
	if !b.valid() || c.buttons[b].Down() {
		return
	}
	c.buttons[b] = Pressed
	c.analogs[b] = 1
}

// Release records a button up event.
func (c *Controller) Release(b Button) {
	if !b.valid() || !c.buttons[b].Down() {
		return
	}
	c.buttons[b] = Released
	c.analogs[b] = 0
}

// Reset ages every button by one frame. Call once per frame after the game
// has read its input.
func (c *Controller) Reset() {
	for i := range c.buttons {
		c.buttons[i] = c.buttons[i].Reset()
	}
}

// Snapshot is a printable view of a controller. Buttons in the None state and
// zero analog values are left out.
type Snapshot struct {
	Buttons map[string]string  `yaml:"buttons,omitempty"`
	Analogs map[string]float64 `yaml:"analogs,omitempty"`
	Left    [2]float64         `yaml:"left,flow"`
	Right   [2]float64         `yaml:"right,flow"`
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Buttons: map[string]string{},
		Analogs: map[string]float64{},
		Left:    [2]float64{c.axes[AxisLeft].X, c.axes[AxisLeft].Y},
		Right:   [2]float64{c.axes[AxisRight].X, c.axes[AxisRight].Y},
	}
	for b := Button(0); b < ButtonCount; b++ {
		if st := c.buttons[b]; st != None {
			s.Buttons[b.String()] = st.String()
		}
		if v := c.analogs[b]; v != 0 {
			s.Analogs[b.String()] = v
		}
	}
	return s
}

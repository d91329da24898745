package input

import "github.com/milk9111/gamekit/vec"

// MouseButtonCount is the number of mouse buttons tracked.
const MouseButtonCount = 5

// Viewport maps canvas pixels to world coordinates. *camera.Camera is one.
type Viewport interface {
	CanvasToPoint(x, y float64) vec.Vector2
	PointToWorld(p vec.Vector2) vec.Vector2
}

// DefaultMouseManager tracks the cursor, mouse buttons and wheel.
type DefaultMouseManager struct {
	pos     vec.Vector2
	drag    vec.Vector2
	buttons [MouseButtonCount]State
	wheel   [3]float64

	viewport Viewport
	bindings map[int]Button
}

func NewDefaultMouseManager() *DefaultMouseManager {
	return &DefaultMouseManager{}
}

// SetCamera attaches the viewport used by WorldPosition.
func (m *DefaultMouseManager) SetCamera(v Viewport) {
	m.viewport = v
}

// SetBindings maps mouse buttons onto controller buttons. nil disables them.
func (m *DefaultMouseManager) SetBindings(b map[int]Button) {
	m.bindings = b
}

// OnMouseMove accumulates drag as the distance from the new position back to
// the previous one.
func (m *DefaultMouseManager) OnMouseMove(e MouseMoveEvent, _ *Controller) {
	m.drag.X += m.pos.X - e.OffsetX
	m.drag.Y += m.pos.Y - e.OffsetY
	m.pos.X = e.OffsetX
	m.pos.Y = e.OffsetY
}

func (m *DefaultMouseManager) OnMouseDown(e MouseButtonEvent, c *Controller) {
	if e.Button < 0 || e.Button >= MouseButtonCount {
		return
	}
	m.buttons[e.Button] = Pressed
	if b, ok := m.bindings[e.Button]; ok && c != nil {
		c.Press(b)
	}
}

func (m *DefaultMouseManager) OnMouseUp(e MouseButtonEvent, c *Controller) {
	if e.Button < 0 || e.Button >= MouseButtonCount {
		return
	}
	m.buttons[e.Button] = Released
	if b, ok := m.bindings[e.Button]; ok && c != nil {
		c.Release(b)
	}
}

func (m *DefaultMouseManager) OnMouseWheel(e WheelEvent, _ *Controller) {
	m.wheel = [3]float64{e.DeltaX, e.DeltaY, e.DeltaZ}
}

func (m *DefaultMouseManager) Position() vec.Vector2 {
	return m.pos
}

// WorldPosition maps the cursor through the attached viewport. Without one it
// returns the raw position.
func (m *DefaultMouseManager) WorldPosition() vec.Vector2 {
	if m.viewport == nil {
		return m.pos
	}
	return m.viewport.PointToWorld(m.viewport.CanvasToPoint(m.pos.X, m.pos.Y))
}

func (m *DefaultMouseManager) Drag() vec.Vector2 {
	return m.drag
}

func (m *DefaultMouseManager) ClearDrag() {
	m.drag.Zero()
}

func (m *DefaultMouseManager) Buttons() []State {
	return m.buttons[:]
}

func (m *DefaultMouseManager) Wheel() [3]float64 {
	return m.wheel
}

// ClearWheel zeroes the wheel deltas. They otherwise keep the last event.
func (m *DefaultMouseManager) ClearWheel() {
	m.wheel = [3]float64{}
}

func (m *DefaultMouseManager) Reset() {
	for i := range m.buttons {
		m.buttons[i] = m.buttons[i].Reset()
	}
}

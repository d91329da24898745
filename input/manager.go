package input

import "github.com/milk9111/gamekit/vec"

// KeyboardManager turns key events into key and controller state.
type KeyboardManager interface {
	OnKeyDown(e KeyEvent, c *Controller)
	OnKeyUp(e KeyEvent, c *Controller)
	Key(code KeyCode) State
	Reset()
}

// MouseManager turns mouse events into cursor and controller state.
type MouseManager interface {
	OnMouseMove(e MouseMoveEvent, c *Controller)
	OnMouseDown(e MouseButtonEvent, c *Controller)
	OnMouseUp(e MouseButtonEvent, c *Controller)
	OnMouseWheel(e WheelEvent, c *Controller)

	Position() vec.Vector2
	Drag() vec.Vector2
	Buttons() []State
	Wheel() [3]float64
	Reset()
}

// GamepadManager applies a gamepad poll to the controller in the same slot.
// A nil pad means nothing is connected to the slot.
type GamepadManager interface {
	Update(slot int, pad *Gamepad, c *Controller)
}

// GamepadSource lists the connected gamepads by slot. Empty slots are nil.
type GamepadSource interface {
	Gamepads() []*Gamepad
}

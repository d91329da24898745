package input

import "go.uber.org/zap"

// ControllerCount is the number of controllers. Most browsers expose up to
// four gamepads, although no limit is defined.
const ControllerCount = 4

// Input owns the controllers and routes device input into them.
//
// Keyboard events go to the controller at KeyboardController and mouse
// events to the one at MouseController. Gamepad i drives controller i.
type Input struct {
	controllers [ControllerCount]*Controller

	KeyboardController int
	MouseController    int

	Keyboard KeyboardManager
	Mouse    MouseManager
	Gamepad  GamepadManager

	source GamepadSource
	log    *zap.Logger
}

// New returns an Input with the default device managers and no gamepad
// source.
func New(log *zap.Logger) *Input {
	if log == nil {
		log = zap.NewNop()
	}
	in := &Input{
		Keyboard: NewDefaultKeyboardManager(),
		Mouse:    NewDefaultMouseManager(),
		Gamepad:  NewDefaultGamepadManager(log.Named("gamepad")),
		log:      log,
	}
	for i := range in.controllers {
		in.controllers[i] = NewController()
	}
	return in
}

// SetGamepadSource sets where Act reads gamepads from.
func (in *Input) SetGamepadSource(src GamepadSource) {
	in.source = src
}

// Act polls the gamepads. Call once per frame before the game reads input.
func (in *Input) Act() {
	if in.source == nil || in.Gamepad == nil {
		return
	}
	pads := in.source.Gamepads()
	n := min(len(pads), ControllerCount)
	for i := 0; i < n; i++ {
		in.Gamepad.Update(i, pads[i], in.controllers[i])
	}
}

// Reset ages keyboard, mouse and controller state by one frame. Call once per
// frame after the game has read its input.
func (in *Input) Reset() {
	if in.Keyboard != nil {
		in.Keyboard.Reset()
	}
	if in.Mouse != nil {
		in.Mouse.Reset()
	}
	for _, c := range in.controllers {
		c.Reset()
	}
}

// Controller returns controller i, or nil when i is out of range.
func (in *Input) Controller(i int) *Controller {
	if i < 0 || i >= ControllerCount {
		return nil
	}
	return in.controllers[i]
}

func (in *Input) Player1() *Controller { return in.controllers[0] }
func (in *Input) Player2() *Controller { return in.controllers[1] }
func (in *Input) Player3() *Controller { return in.controllers[2] }
func (in *Input) Player4() *Controller { return in.controllers[3] }

func (in *Input) OnMouseMove(e MouseMoveEvent) {
	if in.Mouse != nil {
		in.Mouse.OnMouseMove(e, in.Controller(in.MouseController))
	}
}

func (in *Input) OnMouseDown(e MouseButtonEvent) {
	if in.Mouse != nil {
		in.Mouse.OnMouseDown(e, in.Controller(in.MouseController))
	}
}

func (in *Input) OnMouseUp(e MouseButtonEvent) {
	if in.Mouse != nil {
		in.Mouse.OnMouseUp(e, in.Controller(in.MouseController))
	}
}

func (in *Input) OnMouseWheel(e WheelEvent) {
	if in.Mouse != nil {
		in.Mouse.OnMouseWheel(e, in.Controller(in.MouseController))
	}
}

func (in *Input) OnKeyDown(e KeyEvent) {
	if in.Keyboard != nil {
		in.Keyboard.OnKeyDown(e, in.Controller(in.KeyboardController))
	}
}

func (in *Input) OnKeyUp(e KeyEvent) {
	if in.Keyboard != nil {
		in.Keyboard.OnKeyUp(e, in.Controller(in.KeyboardController))
	}
}

// Package input unifies keyboard, mouse and gamepads into console-style
// controllers.
//
// Every button carries a two bit edge state. Bit 1 is set while the button is
// down and bit 0 is set on the frame the button changed:
//
//	None     0b00
//	Released 0b01
//	Held     0b10
//	Pressed  0b11
//
// Polled devices (gamepads) advance a state with Next once per poll. Event
// driven devices (keyboard, mouse) write Pressed or Released when the event
// arrives and rely on Reset, called once per frame, to age the state.
package input

// State is the edge state of a single button.
type State uint8

const (
	None     State = 0
	Released State = 1
	Held     State = 2
	Pressed  State = 3
)

// Next returns the state that follows prev given whether the button is down
// now.
func Next(prev State, pressed bool) State {
	var p State
	if pressed {
		p = 1
	}
	return (prev >> 1) ^ (p * 3)
}

// Reset ages an event driven state by one frame: Pressed becomes Held and
// Released becomes None.
func (s State) Reset() State {
	return s & Held
}

// Down reports whether the button is currently down.
func (s State) Down() bool {
	return s&Held != 0
}

func (s State) JustPressed() bool {
	return s == Pressed
}

func (s State) JustReleased() bool {
	return s == Released
}

func (s State) String() string {
	switch s {
	case None:
		return "none"
	case Released:
		return "released"
	case Held:
		return "held"
	case Pressed:
		return "pressed"
	}
	return "invalid"
}

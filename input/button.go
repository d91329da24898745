package input

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=Button -trimprefix=Button
//go:generate stringer -type=Axis -trimprefix=Axis

// Button identifies one of the controller buttons.
type Button int

const (
	ButtonSelect Button = iota
	ButtonStart
	ButtonA
	ButtonB
	ButtonC
	ButtonD
	ButtonW
	ButtonX
	ButtonY
	ButtonZ
	ButtonLB
	ButtonRB
	ButtonLT
	ButtonRT
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonLS
	ButtonRS
	ButtonHome
	ButtonScreenShot
)

// ButtonCount is the number of buttons on a controller.
const ButtonCount = 22

// Axis identifies one of the two analog sticks.
type Axis int

const (
	AxisLeft Axis = iota
	AxisRight
)

// AxisCount is the number of sticks on a controller.
const AxisCount = 2

func (b Button) valid() bool {
	return b >= 0 && b < ButtonCount
}

func (a Axis) valid() bool {
	return a >= 0 && a < AxisCount
}

// ParseButton resolves a button name such as "a", "DPadUp" or "screen_shot".
func ParseButton(name string) (Button, error) {
	want := normalizeName(name)
	for b := Button(0); b < ButtonCount; b++ {
		if normalizeName(b.String()) == want {
			return b, nil
		}
	}
	return 0, fmt.Errorf("input: unknown button %q", name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Key returns the lower snake case name used in config files and scripts,
// e.g. "dpad_up" or "screen_shot".
func (b Button) Key() string {
	s := b.String()
	if !b.valid() {
		return strings.ToLower(s)
	}
	var sb strings.Builder
	for i, r := range s {
		upper := r >= 'A' && r <= 'Z'
		// a new word starts at an upper case letter that follows a lower
		// case one, so "DPad" and "LB" stay whole
		if upper && i > 0 {
			prev := s[i-1]
			if prev >= 'a' && prev <= 'z' {
				sb.WriteByte('_')
			}
		}
		sb.WriteRune(r)
	}
	return strings.ToLower(sb.String())
}

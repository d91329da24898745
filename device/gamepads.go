package device

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gamekit/input"
	"go.uber.org/zap"
)

type gamepadSlot struct {
	id   ebiten.GamepadID
	used bool
}

// Gamepads implements input.GamepadSource over Ebitengine gamepads. A gamepad
// keeps its slot until it disconnects, the way browsers keep gamepad indices.
type Gamepads struct {
	slots [input.ControllerCount]gamepadSlot
	ids   []ebiten.GamepadID
	frame int64
	log   *zap.Logger
}

func NewGamepads(log *zap.Logger) *Gamepads {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gamepads{log: log}
}

func (g *Gamepads) Gamepads() []*input.Gamepad {
	g.frame++

	g.ids = inpututil.AppendJustConnectedGamepadIDs(g.ids[:0])
	for _, id := range g.ids {
		g.assign(id)
	}

	out := make([]*input.Gamepad, input.ControllerCount)
	for i := range g.slots {
		s := &g.slots[i]
		if !s.used {
			continue
		}
		if inpututil.IsGamepadJustDisconnected(s.id) {
			g.log.Info("gamepad removed", zap.Int("slot", i), zap.Int("id", int(s.id)))
			s.used = false
			continue
		}
		out[i] = g.read(s.id)
	}
	return out
}

func (g *Gamepads) assign(id ebiten.GamepadID) {
	for i := range g.slots {
		if g.slots[i].used && g.slots[i].id == id {
			return
		}
	}
	for i := range g.slots {
		if !g.slots[i].used {
			g.slots[i] = gamepadSlot{id: id, used: true}
			g.log.Info("gamepad added",
				zap.Int("slot", i),
				zap.Int("id", int(id)),
				zap.String("name", ebiten.GamepadName(id)))
			return
		}
	}
	g.log.Warn("no free controller slot", zap.Int("id", int(id)))
}

func (g *Gamepads) read(id ebiten.GamepadID) *input.Gamepad {
	p := &input.Gamepad{
		ID:        describe(ebiten.GamepadName(id), ebiten.GamepadSDLID(id)),
		Timestamp: g.frame,
	}

	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		for b := ebiten.StandardGamepadButton(0); b <= ebiten.StandardGamepadButtonMax; b++ {
			p.Buttons = append(p.Buttons, input.GamepadButton{
				Pressed: ebiten.IsStandardGamepadButtonPressed(id, b),
				Value:   ebiten.StandardGamepadButtonValue(id, b),
			})
		}
		for a := ebiten.StandardGamepadAxis(0); a <= ebiten.StandardGamepadAxisMax; a++ {
			p.Axes = append(p.Axes, ebiten.StandardGamepadAxisValue(id, a))
		}
		return p
	}

	for i := 0; i < ebiten.GamepadButtonCount(id); i++ {
		pressed := ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i))
		var v float64
		if pressed {
			v = 1
		}
		p.Buttons = append(p.Buttons, input.GamepadButton{Pressed: pressed, Value: v})
	}
	for i := 0; i < ebiten.GamepadAxisCount(id); i++ {
		p.Axes = append(p.Axes, ebiten.GamepadAxisValue(id, ebiten.GamepadAxisType(i)))
	}
	return p
}

// describe builds a browser style gamepad id. Browsers already put the vendor
// in the name; native platforms expose it through the SDL GUID instead.
func describe(name, sdlID string) string {
	vendor := vendorFromSDLID(sdlID)
	if vendor == "" || strings.Contains(strings.ToLower(name), "vendor:") {
		return name
	}
	return fmt.Sprintf("%s (Vendor: %s)", name, vendor)
}

// vendorFromSDLID extracts the USB vendor id from an SDL GUID, which stores it
// little endian in bytes 4 and 5.
func vendorFromSDLID(guid string) string {
	if len(guid) < 12 {
		return ""
	}
	v := strings.ToLower(guid[10:12] + guid[8:10])
	if v == "0000" {
		return ""
	}
	return v
}

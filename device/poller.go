package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gamekit/input"
)

// Poller turns one frame of Ebitengine keyboard and mouse state into input
// events. Call Poll from Update before the game reads input.
type Poller struct {
	keys []ebiten.Key
	// held counts the physical keys down per code; left and right modifiers
	// share one.
	held   map[input.KeyCode]int
	cursor [2]int
	seen   bool
}

func NewPoller() *Poller {
	return &Poller{held: make(map[input.KeyCode]int)}
}

func (p *Poller) Poll(in *input.Input) {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.keyDown(in, k)
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		p.keyUp(in, k)
	}

	x, y := ebiten.CursorPosition()
	if !p.seen || x != p.cursor[0] || y != p.cursor[1] {
		p.seen = true
		p.cursor = [2]int{x, y}
		in.OnMouseMove(input.MouseMoveEvent{OffsetX: float64(x), OffsetY: float64(y)})
	}

	for i, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			in.OnMouseDown(input.MouseButtonEvent{Button: i})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			in.OnMouseUp(input.MouseButtonEvent{Button: i})
		}
	}

	// Ebitengine reports wheel-up as positive y; browsers use positive for down.
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		in.OnMouseWheel(input.WheelEvent{DeltaX: -dx, DeltaY: -dy})
	}
}

func (p *Poller) keyDown(in *input.Input, k ebiten.Key) {
	code, ok := KeyCodeOf(k)
	if !ok {
		return
	}
	p.held[code]++
	if p.held[code] == 1 {
		in.OnKeyDown(input.KeyEvent{Code: code})
	}
}

// keyUp reports a code released once its last physical key is up.
func (p *Poller) keyUp(in *input.Input, k ebiten.Key) {
	code, ok := KeyCodeOf(k)
	if !ok || p.held[code] == 0 {
		return
	}
	p.held[code]--
	if p.held[code] == 0 {
		delete(p.held, code)
		in.OnKeyUp(input.KeyEvent{Code: code})
	}
}

package main

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gamekit/input"
)

const gridStep = 100.0

var (
	backgroundColor = color.NRGBA{R: 0x1a, G: 0x1c, B: 0x22, A: 0xff}
	gridColor       = color.NRGBA{R: 0x33, G: 0x36, B: 0x40, A: 0xff}
	borderColor     = color.NRGBA{R: 0x88, G: 0x8c, B: 0x99, A: 0xff}
	ballColor       = color.NRGBA{R: 0xe0, G: 0x5a, B: 0x47, A: 0xff}
	aimColor        = color.NRGBA{R: 0xf2, G: 0xd3, B: 0x4b, A: 0xff}
	labelColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func (a *app) DrawScreen(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.drawGrid(screen)

	a.cam.FillCircle(screen, a.ball.X, a.ball.Y, ballRadius, ballColor)
	a.cam.StrokeCircle(screen, a.ball.X, a.ball.Y, ballRadius, 2, labelColor)
	if r := a.in.Player1().AxisRight(); !r.IsZero() {
		ang := r.Angle()
		path := &vector.Path{}
		a.cam.Circle(path, a.ball.X, a.ball.Y, ballRadius+10, ang-0.5, ang+0.5)
		a.cam.StrokePath(screen, path, 3, aimColor)
	}
	a.cam.FillText(screen, "P1", a.ball.X-ballRadius/2, a.ball.Y+5, ballRadius, labelColor)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Zoom: %.2f", a.frames, ebiten.ActualFPS(), a.cam.Scale()))
	for i := 0; i < input.ControllerCount; i++ {
		ebitenutil.DebugPrintAt(screen, controllerLine(i, a.in.Controller(i)), 10, 20+16*i)
	}
	if mm, ok := a.in.Mouse.(*input.DefaultMouseManager); ok {
		p := mm.WorldPosition()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Mouse world: %.0f, %.0f", p.X, p.Y), 10, 20+16*input.ControllerCount)
	}

	if a.paused && a.ui != nil {
		a.ui.Draw(screen)
	}
}

func (a *app) drawGrid(screen *ebiten.Image) {
	x0, y0 := a.cam.ViewTopLeft()
	vw := a.cam.Width() / a.cam.Scale()
	vh := a.cam.Height() / a.cam.Scale()
	line := 1 / a.cam.Scale()

	for x := math.Floor(x0/gridStep) * gridStep; x <= x0+vw; x += gridStep {
		a.cam.FillRect(screen, x, y0, line, vh, gridColor)
	}
	for y := math.Floor(y0/gridStep) * gridStep; y <= y0+vh; y += gridStep {
		a.cam.FillRect(screen, x0, y, vw, line, gridColor)
	}

	if w, h := a.cfg.Camera.WorldWidth, a.cfg.Camera.WorldHeight; w > 0 && h > 0 {
		a.cam.StrokeRect(screen, 0, 0, w, h, 2, borderColor)
	}
}

// controllerLine renders one controller as "P1 A:held DPadUp:pressed L(0.50,-1.00) R(0.00,0.00)".
func controllerLine(i int, c *input.Controller) string {
	s := c.Snapshot()
	names := make([]string, 0, len(s.Buttons))
	for name := range s.Buttons {
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	fmt.Fprintf(&sb, "P%d", i+1)
	for _, name := range names {
		fmt.Fprintf(&sb, " %s:%s", name, s.Buttons[name])
	}
	fmt.Fprintf(&sb, " L(%.2f,%.2f) R(%.2f,%.2f)", s.Left[0], s.Left[1], s.Right[0], s.Right[1])
	return sb.String()
}


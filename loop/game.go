package loop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gamekit/common"
	"github.com/milk9111/gamekit/input"
)

// Scene is an Instance that draws to an Ebitengine screen.
type Scene interface {
	Startup()
	Act()
	DrawScreen(screen *ebiten.Image)
}

// Poller feeds one frame of device input into an Input.
type Poller interface {
	Poll(in *input.Input)
}

// Game adapts a Scene to ebiten.Game. Ebitengine supplies the fixed timestep,
// so Update is one Act.
type Game struct {
	scene  Scene
	in     *input.Input
	poller Poller

	Width, Height float64

	started bool
	quit    bool
}

// NewGame sets Ebitengine's tick rate to fps and returns the adapter.
func NewGame(scene Scene, in *input.Input, poller Poller, fps int) *Game {
	if fps <= 0 {
		fps = FramesPerSecond
	}
	ebiten.SetTPS(fps)
	return &Game{
		scene:  scene,
		in:     in,
		poller: poller,
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}
}

// Quit ends the game after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if !g.started {
		g.started = true
		g.scene.Startup()
	}

	if g.poller != nil {
		g.poller.Poll(g.in)
	}
	g.in.Act()
	g.scene.Act()
	g.in.Reset()

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.DrawScreen(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.Width, g.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.Width), int(g.Height)
}

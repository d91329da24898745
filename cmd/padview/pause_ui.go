package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gamekit/common"
	"golang.org/x/image/font/basicfont"
)

var (
	menuText  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuPanel = color.NRGBA{A: 200}
	menuIdle  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	menuHover = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)

type pauseAction struct {
	label string
	run   func()
}

// pauseActions lists the pause menu entries in display order.
func (a *app) pauseActions() []pauseAction {
	actions := []pauseAction{
		{"Resume", func() { a.paused = false }},
		{"Copy controller state", a.copySnapshot},
	}
	if a.cfgPath != "" {
		actions = append(actions, pauseAction{"Reload config", func() { a.reload(a.cfgPath) }})
	}
	return append(actions, pauseAction{"Quit", func() {
		if a.quit != nil {
			a.quit()
		}
	}})
}

func newPauseUI(a *app) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	menu := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(menuPanel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for _, line := range []string{"Paused", "Start resumes"} {
		menu.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, menuText),
			widget.TextOpts.WidgetOpts(centered),
		))
	}

	idle := imageui.NewNineSliceColor(menuIdle)
	hover := imageui.NewNineSliceColor(menuHover)
	for _, act := range a.pauseActions() {
		run := act.run
		menu.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Hover: hover, Pressed: hover}),
			widget.ButtonOpts.Text(act.label, &face, &widget.ButtonTextColor{Idle: menuText}),
			widget.ButtonOpts.TextPadding(&widget.Insets{Top: 4, Bottom: 4, Left: 12, Right: 12}),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) { run() }),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(menu)
	return &ebitenui.UI{Container: root}
}

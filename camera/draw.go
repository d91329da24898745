package camera

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FullCircle is the end angle of a complete arc.
const FullCircle = math.Pi * 2

// SetFace replaces the font face used by FillText.
func (c *Camera) SetFace(f text.Face) {
	if f == nil {
		return
	}
	c.face = f
}

// FillRect draws a filled rectangle given in world values.
func (c *Camera) FillRect(dst *ebiten.Image, x, y, width, height float64, clr color.Color) {
	vector.FillRect(dst,
		float32(c.WtPX(x)),
		float32(c.WtPY(y)),
		float32(width*c.scale),
		float32(height*c.scale),
		clr, false)
}

// StrokeRect draws a rectangle outline given in world values. The stroke width
// is in pixels and does not scale.
func (c *Camera) StrokeRect(dst *ebiten.Image, x, y, width, height, strokeWidth float64, clr color.Color) {
	vector.StrokeRect(dst,
		float32(c.WtPX(x)),
		float32(c.WtPY(y)),
		float32(width*c.scale),
		float32(height*c.scale),
		float32(strokeWidth),
		clr, false)
}

// Circle appends an arc around the world point (x, y) to path. Angles are in
// radians and run clockwise; pass 0 and FullCircle for a whole circle.
func (c *Camera) Circle(path *vector.Path, x, y, radius, start, end float64) {
	path.Arc(
		float32(c.WtPX(x)),
		float32(c.WtPY(y)),
		float32(radius*c.scale),
		float32(start),
		float32(end),
		vector.Clockwise)
}

func (c *Camera) FillCircle(dst *ebiten.Image, x, y, radius float64, clr color.Color) {
	vector.FillCircle(dst, float32(c.WtPX(x)), float32(c.WtPY(y)), float32(radius*c.scale), clr, true)
}

func (c *Camera) StrokeCircle(dst *ebiten.Image, x, y, radius, strokeWidth float64, clr color.Color) {
	vector.StrokeCircle(dst, float32(c.WtPX(x)), float32(c.WtPY(y)), float32(radius*c.scale), float32(strokeWidth), clr, true)
}

// Clear clears dst.
func (c *Camera) Clear(dst *ebiten.Image) {
	dst.Clear()
}

// FillText draws text starting at the world point (x, y), with y on the
// alphabetic baseline. A positive maxWidth condenses wider text horizontally
// so it fits.
func (c *Camera) FillText(dst *ebiten.Image, s string, x, y, maxWidth float64, clr color.Color) {
	op := &text.DrawOptions{}
	if w := text.Advance(s, c.face); maxWidth > 0 && w > maxWidth {
		op.GeoM.Scale(maxWidth/w, 1)
	}
	op.GeoM.Translate(c.textOrigin(x, y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, c.face, op)
}

// textOrigin returns the canvas point of the top-left of text whose baseline
// starts at the world point (x, y).
func (c *Camera) textOrigin(x, y float64) (float64, float64) {
	return c.WtPX(x), c.WtPY(y) - c.face.Metrics().HAscent
}

var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// StrokePath strokes a path whose points are already in point coordinates,
// such as one built with Circle. The stroke width is in pixels.
func (c *Camera) StrokePath(dst *ebiten.Image, path *vector.Path, strokeWidth float64, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(strokeWidth),
		LineJoin: vector.LineJoinRound,
	})
	nc := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(nc.R) / 0xff
		vs[i].ColorG = float32(nc.G) / 0xff
		vs[i].ColorB = float32(nc.B) / 0xff
		vs[i].ColorA = float32(nc.A) / 0xff
	}
	dst.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

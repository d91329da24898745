// Package camera converts between world coordinates and point (canvas pixel)
// coordinates for a 2D view.
//
// The camera center is its embedded Vector2. With a scale of 1 and a width of
// 800, world x = X maps to point x = 400.
package camera

import (
	"math"

	"github.com/milk9111/gamekit/common"
	"github.com/milk9111/gamekit/vec"
	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Camera is a 2D camera centered on its X/Y position.
type Camera struct {
	vec.Vector2

	w  float64
	h  float64
	hw float64
	hh float64

	canvasW      float64
	canvasH      float64
	canvasScaleX float64
	canvasScaleY float64

	scale float64

	// smoothing factor for Follow (0..1). 0 snaps to the target.
	smooth float64
	// world bounds in world units (0 means unbounded)
	worldW float64
	worldH float64

	face text.Face
}

// New returns a camera at the origin with unit scale.
func New() *Camera {
	return &Camera{
		canvasScaleX: 1,
		canvasScaleY: 1,
		scale:        1,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetScale sets the zoom factor. Higher zooms in, lower zooms out.
func (c *Camera) SetScale(z float64) {
	c.scale = z
}

func (c *Camera) Scale() float64 {
	return c.scale
}

// SetWidth sets the view width. It should match the canvas width.
func (c *Camera) SetWidth(w float64) {
	c.w = w
	c.hw = w / 2
	c.updateCanvasScaleX()
}

func (c *Camera) Width() float64 {
	return c.w
}

// SetHeight sets the view height. It should match the canvas height.
func (c *Camera) SetHeight(h float64) {
	c.h = h
	c.hh = h / 2
	c.updateCanvasScaleY()
}

func (c *Camera) Height() float64 {
	return c.h
}

// SetCanvasWidth records the displayed width of the canvas, which may differ
// from the view width when the canvas is stretched by the page.
func (c *Camera) SetCanvasWidth(w float64) {
	c.canvasW = w
	c.updateCanvasScaleX()
}

func (c *Camera) SetCanvasHeight(h float64) {
	c.canvasH = h
	c.updateCanvasScaleY()
}

// CanvasScale returns the view size divided by the displayed canvas size.
func (c *Camera) CanvasScale() (float64, float64) {
	return c.canvasScaleX, c.canvasScaleY
}

func (c *Camera) updateCanvasScaleX() {
	if c.canvasW != 0 {
		c.canvasScaleX = c.w / c.canvasW
	}
}

func (c *Camera) updateCanvasScaleY() {
	if c.canvasH != 0 {
		c.canvasScaleY = c.h / c.canvasH
	}
}

// WtPX converts a world x value into a point on the canvas.
func (c *Camera) WtPX(x float64) float64 {
	return (x-c.X)*c.scale + c.hw
}

// WtPY converts a world y value into a point on the canvas.
func (c *Camera) WtPY(y float64) float64 {
	return (y-c.Y)*c.scale + c.hh
}

// PtWX converts a canvas x coordinate into world coordinates.
func (c *Camera) PtWX(x float64) float64 {
	return (x-c.hw)/c.scale + c.X
}

// PtWY converts a canvas y coordinate into world coordinates.
func (c *Camera) PtWY(y float64) float64 {
	return (y-c.hh)/c.scale + c.Y
}

// ScaleValue multiplies n by the camera scale.
func (c *Camera) ScaleValue(n float64) float64 {
	return n * c.scale
}

func (c *Camera) WorldToPoint(v vec.Vector2) vec.Vector2 {
	return vec.Vector2{X: c.WtPX(v.X), Y: c.WtPY(v.Y)}
}

func (c *Camera) PointToWorld(v vec.Vector2) vec.Vector2 {
	return vec.Vector2{X: c.PtWX(v.X), Y: c.PtWY(v.Y)}
}

// CanvasToPoint converts an offset on the displayed canvas (for example a
// mouse position) into canvas pixel coordinates.
func (c *Camera) CanvasToPoint(x, y float64) vec.Vector2 {
	return vec.Vector2{X: x * c.canvasScaleX, Y: y * c.canvasScaleY}
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PtWX(0), c.PtWY(0)
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// SetWorldBounds sets the world dimensions used to clamp the camera center.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// Follow moves the camera toward the target world coordinate. Call from the
// fixed-rate update to get consistent smoothing.
func (c *Camera) Follow(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.X = targetX
		c.Y = targetY
	} else {
		c.X = common.Lerp(c.X, targetX, c.smooth)
		c.Y = common.Lerp(c.Y, targetY, c.smooth)
	}
	c.snap()
}

// SnapTo immediately centers the camera on the given world coordinate,
// applying the same rounding and clamping as Follow.
func (c *Camera) SnapTo(x, y float64) {
	c.X = x
	c.Y = y
	c.snap()
}

func (c *Camera) snap() {
	// align to the 1/scale grid so texels land on whole pixels
	if c.scale != 0 {
		c.X = math.Round(c.X*c.scale) / c.scale
		c.Y = math.Round(c.Y*c.scale) / c.scale
	}

	if c.scale <= 0 {
		return
	}
	halfW := c.hw / c.scale
	halfH := c.hh / c.scale
	c.X = clampAxis(c.X, halfW, c.worldW)
	c.Y = clampAxis(c.Y, halfH, c.worldH)
}

func clampAxis(pos, half, world float64) float64 {
	if world <= 0 {
		return pos
	}
	lo := half
	hi := world - half
	if hi < lo {
		// world smaller than view: center on world
		return world / 2
	}
	return common.Clamp(pos, lo, hi)
}

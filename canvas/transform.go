package canvas

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Invalid is the sentinel returned by ScreenToCanvas before the viewport
// has usable geometry. Callers must check for it and skip the event.
var Invalid = cp.Vector{X: -1, Y: -1}

// Viewport maps between screen pixels and canvas units given the current
// zoom factor and pan offset. Zoom 0 means "not laid out yet".
type Viewport struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64

	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64
}

func NewViewport(minZoom, maxZoom, step float64) *Viewport {
	return &Viewport{Zoom: 1, MinZoom: minZoom, MaxZoom: maxZoom, ZoomStep: step}
}

// ScreenToCanvas inverts the pan/zoom transform. Returns Invalid instead
// of panicking when the viewport has no usable transform yet.
func (v *Viewport) ScreenToCanvas(sx, sy float64) cp.Vector {
	if v == nil || v.Zoom <= 0 {
		return Invalid
	}
	return cp.Vector{
		X: (sx - v.OffsetX) / v.Zoom,
		Y: (sy - v.OffsetY) / v.Zoom,
	}
}

func (v *Viewport) CanvasToScreen(p cp.Vector) (float64, float64) {
	return p.X*v.Zoom + v.OffsetX, p.Y*v.Zoom + v.OffsetY
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom],
// and adjusts the offset so the canvas point under (sx, sy) stays fixed
// on screen.
func (v *Viewport) ZoomAt(factor, sx, sy float64) {
	if v.Zoom <= 0 {
		return
	}
	newZoom := Clamp(v.Zoom*factor, v.MinZoom, v.MaxZoom)
	if newZoom == v.Zoom {
		return
	}
	worldX := (sx - v.OffsetX) / v.Zoom
	worldY := (sy - v.OffsetY) / v.Zoom
	v.Zoom = newZoom
	v.OffsetX = sx - worldX*v.Zoom
	v.OffsetY = sy - worldY*v.Zoom
}

// StepIn and StepOut apply the fixed zoom increment centered on the
// given screen point.
func (v *Viewport) StepIn(sx, sy float64)  { v.ZoomAt(1+v.ZoomStep, sx, sy) }
func (v *Viewport) StepOut(sx, sy float64) { v.ZoomAt(1/(1+v.ZoomStep), sx, sy) }

func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Snap rounds v to the nearest multiple of grid. A grid of zero or less
// disables snapping.
func Snap(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Round(v/grid) * grid
}

func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		// item larger than canvas: pin to origin side
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

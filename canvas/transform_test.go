package canvas

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestScreenToCanvasBeforeLayout(t *testing.T) {
	cases := []struct {
		name string
		vp   *Viewport
	}{
		{"nil_viewport", nil},
		{"zero_zoom", &Viewport{}},
		{"negative_zoom", &Viewport{Zoom: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.vp.ScreenToCanvas(100, 100)
			if got != Invalid {
				t.Fatalf("expected Invalid sentinel, got %+v", got)
			}
		})
	}
}

func TestScreenToCanvasRoundTrip(t *testing.T) {
	vp := &Viewport{Zoom: 1.5, OffsetX: 40, OffsetY: -20}
	want := cp.Vector{X: 123, Y: 456}
	sx, sy := vp.CanvasToScreen(want)
	got := vp.ScreenToCanvas(sx, sy)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("round trip mismatch: want %+v got %+v", want, got)
	}
}

func TestZoomAtKeepsPointFixed(t *testing.T) {
	vp := NewViewport(0.25, 4, 0.1)
	vp.OffsetX, vp.OffsetY = 10, 30
	const sx, sy = 200.0, 150.0
	before := vp.ScreenToCanvas(sx, sy)
	vp.ZoomAt(1.3, sx, sy)
	after := vp.ScreenToCanvas(sx, sy)
	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Fatalf("canvas point under cursor moved: before %+v after %+v", before, after)
	}
}

func TestZoomClamped(t *testing.T) {
	vp := NewViewport(0.5, 2, 0.1)
	for i := 0; i < 50; i++ {
		vp.StepIn(0, 0)
	}
	if vp.Zoom > 2 {
		t.Fatalf("zoom exceeded max: %v", vp.Zoom)
	}
	for i := 0; i < 50; i++ {
		vp.StepOut(0, 0)
	}
	if vp.Zoom < 0.5 {
		t.Fatalf("zoom fell below min: %v", vp.Zoom)
	}
}

func TestSnap(t *testing.T) {
	cases := []struct {
		v, grid, want float64
	}{
		{7, 5, 5},
		{8, 5, 10},
		{-3, 5, -5},
		{12.5, 5, 15},
		{42, 0, 42}, // disabled grid
	}
	for _, c := range cases {
		if got := Snap(c.v, c.grid); got != c.want {
			t.Fatalf("Snap(%v, %v) = %v, want %v", c.v, c.grid, got, c.want)
		}
	}
}

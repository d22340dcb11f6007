package canvas

import (
	"testing"

	"github.com/jakecoffman/cp"
)

// boardWithCenters places 50x50 items whose centers sit at the given
// points.
func boardWithCenters(centers ...cp.Vector) *Board {
	b := NewBoard(Config{Width: 1000, Height: 1000, SnapGrid: 10})
	for i, c := range centers {
		b.Add(&Item{
			ID:       int64(i + 1),
			Position: cp.Vector{X: c.X - 25, Y: c.Y - 25},
			Width:    50,
			Height:   50,
		})
	}
	return b
}

func TestMarqueeCenterContainment(t *testing.T) {
	b := boardWithCenters(
		cp.Vector{X: 50, Y: 50},
		cp.Vector{X: 150, Y: 150},
		cp.Vector{X: 250, Y: 250},
	)
	s := NewSelection(b)
	m := NewMarquee(b, s)

	m.Arm(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 0})
	m.Update(cp.Vector{X: 200, Y: 200}, cp.Vector{X: 200, Y: 200})
	if !m.Active() {
		t.Fatalf("marquee should be active after crossing the threshold")
	}
	m.End(false)

	if !s.IsSelected(1) || !s.IsSelected(2) {
		t.Fatalf("items with centers inside rect should be selected, got %v", s.IDs())
	}
	if s.IsSelected(3) {
		t.Fatalf("item with center at (250,250) is outside (0,0)-(200,200)")
	}
}

func TestMarqueeThreshold(t *testing.T) {
	b := boardWithCenters(cp.Vector{X: 50, Y: 50})
	s := NewSelection(b)
	m := NewMarquee(b, s)

	m.Arm(cp.Vector{X: 48, Y: 48}, cp.Vector{X: 48, Y: 48})
	m.Update(cp.Vector{X: 51, Y: 51}, cp.Vector{X: 51, Y: 51})
	if m.Active() {
		t.Fatalf("a 3px wiggle must not start a marquee")
	}
	if m.End(false) {
		t.Fatalf("an inactive marquee release should not swallow the click")
	}
}

func TestMarqueeTooSmallActsAsDeselect(t *testing.T) {
	b := boardWithCenters(cp.Vector{X: 50, Y: 50}, cp.Vector{X: 500, Y: 500})
	s := NewSelection(b)
	s.SelectAll()
	m := NewMarquee(b, s)

	// wide enough to activate but under the commit size on one axis
	m.Arm(cp.Vector{X: 300, Y: 300}, cp.Vector{X: 300, Y: 300})
	m.Update(cp.Vector{X: 320, Y: 302}, cp.Vector{X: 320, Y: 302})
	if !m.Active() {
		t.Fatalf("marquee should activate past the drag threshold")
	}
	if !m.End(false) {
		t.Fatalf("active marquee release should report true")
	}
	if s.Count() != 0 {
		t.Fatalf("too-small non-additive marquee should deselect all, got %v", s.IDs())
	}
}

func TestMarqueeAdditiveUnion(t *testing.T) {
	b := boardWithCenters(
		cp.Vector{X: 50, Y: 50},
		cp.Vector{X: 500, Y: 500},
	)
	s := NewSelection(b)
	s.SelectSingle(2, false)
	m := NewMarquee(b, s)

	m.Arm(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 0})
	m.Update(cp.Vector{X: 100, Y: 100}, cp.Vector{X: 100, Y: 100})
	m.End(true)

	if !s.IsSelected(1) || !s.IsSelected(2) {
		t.Fatalf("additive release should union with prior selection, got %v", s.IDs())
	}
}

func TestMarqueeReplacePriorSelection(t *testing.T) {
	b := boardWithCenters(
		cp.Vector{X: 50, Y: 50},
		cp.Vector{X: 500, Y: 500},
	)
	s := NewSelection(b)
	s.SelectSingle(2, false)
	m := NewMarquee(b, s)

	m.Arm(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 0})
	m.Update(cp.Vector{X: 100, Y: 100}, cp.Vector{X: 100, Y: 100})
	m.End(false)

	if !s.IsSelected(1) || s.IsSelected(2) {
		t.Fatalf("non-additive release should replace selection, got %v", s.IDs())
	}
}

func TestMarqueePreviewDoesNotCommit(t *testing.T) {
	b := boardWithCenters(cp.Vector{X: 50, Y: 50})
	s := NewSelection(b)
	m := NewMarquee(b, s)

	m.Arm(cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 0})
	m.Update(cp.Vector{X: 100, Y: 100}, cp.Vector{X: 100, Y: 100})
	if !m.InPreview(1) {
		t.Fatalf("item should be preview-highlighted while dragging")
	}
	if s.Count() != 0 {
		t.Fatalf("preview must not touch the real selection")
	}
}

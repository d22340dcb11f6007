package canvas

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	// screen pixels the pointer must travel before the marquee becomes
	// visible, so a plain click never flashes a rectangle
	marqueeDragThreshold = 5.0
	// minimum rectangle size (canvas units) for a release to commit
	marqueeMinCommit = 5.0
)

// Marquee is the rubber-band selection rectangle. It arms on pointer
// press, activates once the pointer travels past a small threshold, and
// preview-selects every item whose center falls inside the rectangle.
// The preview only becomes the real selection on release.
type Marquee struct {
	board *Board
	sel   *Selection

	armed  bool
	active bool

	origin      cp.Vector // canvas-space press point
	current     cp.Vector
	pressScreen cp.Vector

	preview map[int64]struct{}
}

func NewMarquee(b *Board, s *Selection) *Marquee {
	return &Marquee{board: b, sel: s}
}

func (m *Marquee) Armed() bool  { return m.armed }
func (m *Marquee) Active() bool { return m.active }

// Arm records the press without starting the visual rectangle yet.
func (m *Marquee) Arm(canvasPt, screenPt cp.Vector) {
	m.armed = true
	m.active = false
	m.origin = canvasPt
	m.current = canvasPt
	m.pressScreen = screenPt
	m.preview = map[int64]struct{}{}
}

// Update tracks the pointer. The rectangle appears only after the
// pointer has moved past the drag threshold in screen pixels.
func (m *Marquee) Update(canvasPt, screenPt cp.Vector) {
	if !m.armed {
		return
	}
	if !m.active {
		if math.Abs(screenPt.X-m.pressScreen.X) < marqueeDragThreshold &&
			math.Abs(screenPt.Y-m.pressScreen.Y) < marqueeDragThreshold {
			return
		}
		m.active = true
	}
	m.current = canvasPt
	m.recomputePreview()
}

// Rect returns the current rectangle as min/max bounds.
func (m *Marquee) Rect() cp.BB {
	return cp.BB{
		L: math.Min(m.origin.X, m.current.X),
		B: math.Min(m.origin.Y, m.current.Y),
		R: math.Max(m.origin.X, m.current.X),
		T: math.Max(m.origin.Y, m.current.Y),
	}
}

// InPreview reports whether the item is highlighted by the live
// rectangle. Used for draw-time highlighting before commit.
func (m *Marquee) InPreview(id int64) bool {
	_, ok := m.preview[id]
	return ok
}

func (m *Marquee) recomputePreview() {
	rect := m.Rect()
	m.preview = map[int64]struct{}{}
	for _, it := range m.board.Items() {
		if rect.ContainsVect(it.Center()) {
			m.preview[it.ID] = struct{}{}
		}
	}
}

// End finishes the gesture. A rectangle at least marqueeMinCommit on
// both axes commits the preview: replacing the selection, or unioned
// with it when additive is held at release. A smaller rectangle changes
// nothing beyond the plain-click deselect in the non-additive case.
// Returns true when the gesture was an active marquee, so the caller
// can swallow the synthetic click that follows release.
func (m *Marquee) End(additive bool) bool {
	wasActive := m.active
	rect := m.Rect()
	preview := m.preview
	m.armed = false
	m.active = false
	m.preview = nil
	if !wasActive {
		return false
	}
	if rect.R-rect.L >= marqueeMinCommit && rect.T-rect.B >= marqueeMinCommit {
		ids := make([]int64, 0, len(preview))
		for _, it := range m.board.Items() {
			if _, ok := preview[it.ID]; ok {
				ids = append(ids, it.ID)
			}
		}
		m.sel.SelectMultiple(ids, additive)
	} else if !additive {
		m.sel.DeselectAll()
	}
	return true
}

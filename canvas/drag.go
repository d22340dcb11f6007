package canvas

import "github.com/jakecoffman/cp"

// PositionChange records one item's move within a gesture. From lets the
// caller roll the move back if persistence fails.
type PositionChange struct {
	Item *Item
	From cp.Vector
	To   cp.Vector
}

// Drag translates a pointer-drag gesture on the current selection into
// snapped, clamped item positions. Moves apply synchronously to the
// board; End reports what actually moved so the caller can persist the
// whole gesture in one batch.
type Drag struct {
	board *Board
	sel   *Selection

	active  bool
	start   cp.Vector
	origins map[int64]cp.Vector
}

func NewDrag(b *Board, s *Selection) *Drag {
	return &Drag{board: b, sel: s}
}

func (d *Drag) Active() bool { return d.active }

// Start records the canvas-space pointer position and every selected
// item's starting position.
func (d *Drag) Start(pointer cp.Vector) {
	d.active = true
	d.start = pointer
	d.origins = make(map[int64]cp.Vector)
	for _, it := range d.sel.SelectedItems() {
		d.origins[it.ID] = it.Position
	}
}

// Move applies snap(origin + delta) then bounds clamping to every
// dragged item. No-ops silently if the gesture is dead or the selection
// was emptied externally mid-gesture.
func (d *Drag) Move(pointer cp.Vector) {
	if !d.active || d.sel.Count() == 0 {
		return
	}
	delta := pointer.Sub(d.start)
	for id, origin := range d.origins {
		it := d.board.ItemByID(id)
		if it == nil || !d.sel.IsSelected(id) {
			continue
		}
		it.Position.X = d.board.snap(origin.X + delta.X)
		it.Position.Y = d.board.snap(origin.Y + delta.Y)
		d.board.ClampItem(it)
	}
}

// End finishes the gesture and returns the changes for items that ended
// somewhere other than where they started. An empty result means no
// persistence call is needed.
func (d *Drag) End() []PositionChange {
	if !d.active {
		return nil
	}
	d.active = false
	if d.sel.Count() == 0 {
		d.origins = nil
		return nil
	}
	var moved []PositionChange
	for _, it := range d.sel.SelectedItems() {
		origin, ok := d.origins[it.ID]
		if !ok {
			continue
		}
		if it.Position.X != origin.X || it.Position.Y != origin.Y {
			moved = append(moved, PositionChange{Item: it, From: origin, To: it.Position})
		}
	}
	d.origins = nil
	return moved
}

// Cancel aborts the gesture and restores every dragged item to its
// starting position.
func (d *Drag) Cancel() {
	if !d.active {
		return
	}
	d.active = false
	for id, origin := range d.origins {
		if it := d.board.ItemByID(id); it != nil {
			it.Position = origin
		}
	}
	d.origins = nil
}

package canvas

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

// AlignMode names one alignment or distribution rule applied to a
// multi-selection.
type AlignMode string

const (
	AlignLeft    AlignMode = "left"
	AlignRight   AlignMode = "right"
	AlignTop     AlignMode = "top"
	AlignBottom  AlignMode = "bottom"
	AlignCenterH AlignMode = "center-h"
	AlignCenterV AlignMode = "center-v"
	DistributeH  AlignMode = "distribute-horizontal"
	DistributeV  AlignMode = "distribute-vertical"
)

const defaultDistributeMargin = 50.0

// Align repositions the given items according to mode and returns the
// changes for items that actually moved, clamped to canvas bounds.
// Requires at least two items; fewer is a no-op.
func Align(b *Board, items []*Item, mode AlignMode) []PositionChange {
	if len(items) < 2 {
		return nil
	}
	origins := make(map[int64]cp.Vector, len(items))
	for _, it := range items {
		origins[it.ID] = it.Position
	}

	switch mode {
	case AlignLeft:
		edge := items[0].Position.X
		for _, it := range items[1:] {
			edge = math.Min(edge, it.Position.X)
		}
		for _, it := range items {
			it.Position.X = edge
		}
	case AlignRight:
		edge := items[0].Position.X + items[0].Width
		for _, it := range items[1:] {
			edge = math.Max(edge, it.Position.X+it.Width)
		}
		for _, it := range items {
			it.Position.X = edge - it.Width
		}
	case AlignTop:
		edge := items[0].Position.Y
		for _, it := range items[1:] {
			edge = math.Min(edge, it.Position.Y)
		}
		for _, it := range items {
			it.Position.Y = edge
		}
	case AlignBottom:
		edge := items[0].Position.Y + items[0].Height
		for _, it := range items[1:] {
			edge = math.Max(edge, it.Position.Y+it.Height)
		}
		for _, it := range items {
			it.Position.Y = edge - it.Height
		}
	case AlignCenterH:
		mean := 0.0
		for _, it := range items {
			mean += it.Center().X
		}
		mean /= float64(len(items))
		for _, it := range items {
			it.Position.X = b.snap(mean - it.Width/2)
		}
	case AlignCenterV:
		mean := 0.0
		for _, it := range items {
			mean += it.Center().Y
		}
		mean /= float64(len(items))
		for _, it := range items {
			it.Position.Y = b.snap(mean - it.Height/2)
		}
	case DistributeH:
		distribute(b, items, true)
	case DistributeV:
		distribute(b, items, false)
	default:
		return nil
	}

	var changed []PositionChange
	for _, it := range items {
		b.ClampItem(it)
		o := origins[it.ID]
		if it.Position.X != o.X || it.Position.Y != o.Y {
			changed = append(changed, PositionChange{Item: it, From: o, To: it.Position})
		}
	}
	return changed
}

// distribute lays the items out with uniform gaps between fixed margins
// along one axis and aligns their centers on the other. The gap stays
// fractional so spacing is exact; only the perpendicular coordinate is
// rounded (to the nearest integer, not the snap grid).
func distribute(b *Board, items []*Item, horizontal bool) {
	sorted := make([]*Item, len(items))
	copy(sorted, items)
	margin := b.Config.DistributeMargin
	if margin <= 0 {
		margin = defaultDistributeMargin
	}

	if horizontal {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Position.X < sorted[j].Position.X
		})
		total := 0.0
		meanCenterY := 0.0
		for _, it := range sorted {
			total += it.Width
			meanCenterY += it.Center().Y
		}
		meanCenterY /= float64(len(sorted))
		gap := (b.Config.Width - 2*margin - total) / float64(len(sorted)-1)
		x := margin
		for _, it := range sorted {
			it.Position.X = x
			it.Position.Y = math.Round(meanCenterY - it.Height/2)
			x += it.Width + gap
		}
		return
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position.Y < sorted[j].Position.Y
	})
	total := 0.0
	meanCenterX := 0.0
	for _, it := range sorted {
		total += it.Height
		meanCenterX += it.Center().X
	}
	meanCenterX /= float64(len(sorted))
	gap := (b.Config.Height - 2*margin - total) / float64(len(sorted)-1)
	y := margin
	for _, it := range sorted {
		it.Position.Y = y
		it.Position.X = math.Round(meanCenterX - it.Width/2)
		y += it.Height + gap
	}
}

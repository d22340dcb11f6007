package canvas

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestAlignEdges(t *testing.T) {
	cases := []struct {
		name string
		mode AlignMode
		// expected X (or Y for top/bottom) per item id
		check func(t *testing.T, b *Board)
	}{
		{"left", AlignLeft, func(t *testing.T, b *Board) {
			for _, it := range b.Items() {
				if it.Position.X != 20 {
					t.Fatalf("item %d left edge %v, want 20", it.ID, it.Position.X)
				}
			}
		}},
		{"right", AlignRight, func(t *testing.T, b *Board) {
			for _, it := range b.Items() {
				if it.Position.X+it.Width != 330 {
					t.Fatalf("item %d right edge %v, want 330", it.ID, it.Position.X+it.Width)
				}
			}
		}},
		{"top", AlignTop, func(t *testing.T, b *Board) {
			for _, it := range b.Items() {
				if it.Position.Y != 10 {
					t.Fatalf("item %d top edge %v, want 10", it.ID, it.Position.Y)
				}
			}
		}},
		{"bottom", AlignBottom, func(t *testing.T, b *Board) {
			for _, it := range b.Items() {
				if it.Position.Y+it.Height != 290 {
					t.Fatalf("item %d bottom edge %v, want 290", it.ID, it.Position.Y+it.Height)
				}
			}
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBoard(Config{Width: 1000, Height: 800, SnapGrid: 10})
			b.Add(
				&Item{ID: 1, Position: cp.Vector{X: 20, Y: 10}, Width: 60, Height: 40},
				&Item{ID: 2, Position: cp.Vector{X: 250, Y: 120}, Width: 80, Height: 80},
				&Item{ID: 3, Position: cp.Vector{X: 100, Y: 240}, Width: 40, Height: 50},
			)
			changed := Align(b, b.Items(), c.mode)
			if len(changed) == 0 {
				t.Fatalf("expected at least one item to move")
			}
			c.check(t, b)
		})
	}
}

func TestAlignIdempotent(t *testing.T) {
	modes := []AlignMode{
		AlignLeft, AlignRight, AlignTop, AlignBottom,
		AlignCenterH, AlignCenterV, DistributeH, DistributeV,
	}
	for _, mode := range modes {
		t.Run(string(mode), func(t *testing.T) {
			b := NewBoard(Config{Width: 1000, Height: 800, SnapGrid: 10})
			b.Add(
				&Item{ID: 1, Position: cp.Vector{X: 20, Y: 10}, Width: 60, Height: 40},
				&Item{ID: 2, Position: cp.Vector{X: 250, Y: 120}, Width: 80, Height: 80},
				&Item{ID: 3, Position: cp.Vector{X: 100, Y: 240}, Width: 40, Height: 50},
			)
			Align(b, b.Items(), mode)
			first := make(map[int64]cp.Vector)
			for _, it := range b.Items() {
				first[it.ID] = it.Position
			}
			if changed := Align(b, b.Items(), mode); changed != nil {
				t.Fatalf("second application moved %d items", len(changed))
			}
			for _, it := range b.Items() {
				if it.Position != first[it.ID] {
					t.Fatalf("item %d drifted from %+v to %+v", it.ID, first[it.ID], it.Position)
				}
			}
		})
	}
}

func TestDistributeHorizontalEvenGaps(t *testing.T) {
	b := NewBoard(Config{Width: 700, Height: 400, SnapGrid: 10, DistributeMargin: 50})
	b.Add(
		&Item{ID: 1, Position: cp.Vector{X: 0, Y: 100}, Width: 100, Height: 50},
		&Item{ID: 2, Position: cp.Vector{X: 300, Y: 100}, Width: 100, Height: 50},
		&Item{ID: 3, Position: cp.Vector{X: 450, Y: 100}, Width: 100, Height: 50},
	)
	Align(b, b.Items(), DistributeH)

	// available = 700 - 2*50 = 600; items total 300; two gaps of 150
	it1, it2, it3 := b.ItemByID(1), b.ItemByID(2), b.ItemByID(3)
	if it1.Position.X != 50 {
		t.Fatalf("first item should start at the margin, got %v", it1.Position.X)
	}
	gap1 := it2.Position.X - (it1.Position.X + it1.Width)
	gap2 := it3.Position.X - (it2.Position.X + it2.Width)
	if gap1 != gap2 {
		t.Fatalf("gaps differ: %v vs %v", gap1, gap2)
	}
	if gap1 != 150 {
		t.Fatalf("gap = %v, want 150", gap1)
	}
	if it3.Position.X+it3.Width != 650 {
		t.Fatalf("last item should end at the far margin, got %v", it3.Position.X+it3.Width)
	}
}

func TestDistributePreservesOrderAndAlignsCenters(t *testing.T) {
	b := NewBoard(Config{Width: 700, Height: 400, SnapGrid: 10})
	b.Add(
		&Item{ID: 1, Position: cp.Vector{X: 400, Y: 90}, Width: 50, Height: 40},
		&Item{ID: 2, Position: cp.Vector{X: 10, Y: 120}, Width: 50, Height: 60},
		&Item{ID: 3, Position: cp.Vector{X: 200, Y: 150}, Width: 50, Height: 20},
	)
	Align(b, b.Items(), DistributeH)

	// original left-to-right order: 2, 3, 1
	if !(b.ItemByID(2).Position.X < b.ItemByID(3).Position.X &&
		b.ItemByID(3).Position.X < b.ItemByID(1).Position.X) {
		t.Fatalf("distribution must preserve axis order")
	}
	// mean center y = (110 + 150 + 160) / 3 = 140
	for _, it := range b.Items() {
		if got := it.Center().Y; math.Abs(got-140) > 0.5 {
			t.Fatalf("item %d center y = %v, want ~140", it.ID, got)
		}
	}
}

func TestAlignCenterSnapsToGrid(t *testing.T) {
	b := NewBoard(Config{Width: 1000, Height: 800, SnapGrid: 10})
	b.Add(
		&Item{ID: 1, Position: cp.Vector{X: 13, Y: 0}, Width: 50, Height: 50},
		&Item{ID: 2, Position: cp.Vector{X: 222, Y: 100}, Width: 70, Height: 50},
	)
	Align(b, b.Items(), AlignCenterH)
	for _, it := range b.Items() {
		if math.Mod(it.Position.X, 10) != 0 {
			t.Fatalf("item %d x %v not grid-snapped", it.ID, it.Position.X)
		}
	}
}

func TestAlignRequiresTwoItems(t *testing.T) {
	b := testBoard(1)
	if changed := Align(b, b.Items(), AlignLeft); changed != nil {
		t.Fatalf("single-item align should be a no-op")
	}
}

func TestAlignStaysInBounds(t *testing.T) {
	b := NewBoard(Config{Width: 300, Height: 300, SnapGrid: 10})
	b.Add(
		&Item{ID: 1, Position: cp.Vector{X: 0, Y: 0}, Width: 100, Height: 100},
		&Item{ID: 2, Position: cp.Vector{X: 200, Y: 200}, Width: 100, Height: 100},
	)
	for _, mode := range []AlignMode{AlignLeft, AlignRight, AlignTop, AlignBottom, AlignCenterH, AlignCenterV, DistributeH, DistributeV} {
		Align(b, b.Items(), mode)
		for _, it := range b.Items() {
			if it.Position.X < 0 || it.Position.X > b.Config.Width-it.Width ||
				it.Position.Y < 0 || it.Position.Y > b.Config.Height-it.Height {
				t.Fatalf("%s pushed item %d out of bounds: %+v", mode, it.ID, it.Position)
			}
		}
	}
}

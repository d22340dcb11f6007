package canvas

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func testBoard(ids ...int64) *Board {
	b := NewBoard(Config{Width: 1000, Height: 800, SnapGrid: 10})
	for i, id := range ids {
		b.Add(&Item{
			ID:       id,
			Position: cp.Vector{X: float64(i) * 100, Y: float64(i) * 100},
			Width:    50,
			Height:   50,
			TypeKey:  "sunbed",
		})
	}
	return b
}

func TestToggleRoundTrip(t *testing.T) {
	b := testBoard(1, 2, 3)
	s := NewSelection(b)
	s.SelectMultiple([]int64{1, 2}, false)

	before := s.IDs()
	s.Toggle(3)
	if !s.IsSelected(3) {
		t.Fatalf("toggle should add unselected id")
	}
	s.Toggle(3)
	after := s.IDs()
	if len(after) != len(before) {
		t.Fatalf("double toggle changed selection: before %v after %v", before, after)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("double toggle changed selection: before %v after %v", before, after)
		}
	}
}

func TestSelectSingleReplacesUnlessAdditive(t *testing.T) {
	b := testBoard(1, 2, 3)
	s := NewSelection(b)
	s.SelectSingle(1, false)
	s.SelectSingle(2, false)
	if s.Count() != 1 || !s.IsSelected(2) {
		t.Fatalf("non-additive select should replace, got %v", s.IDs())
	}
	s.SelectSingle(3, true)
	if s.Count() != 2 || !s.IsSelected(2) || !s.IsSelected(3) {
		t.Fatalf("additive select should extend, got %v", s.IDs())
	}
}

func TestSelectionIgnoresUnknownIDs(t *testing.T) {
	b := testBoard(1)
	s := NewSelection(b)
	s.SelectSingle(99, false)
	if s.Count() != 0 {
		t.Fatalf("selecting a missing id should not grow the set")
	}
}

// Exactly one selected item drives the single-item property panel; two
// or more drive the multi toolbar; zero shows neither.
func TestPanelObserverPolicy(t *testing.T) {
	b := testBoard(1, 2, 3)
	s := NewSelection(b)

	var panelItem *Item
	var toolbarVisible bool
	s.OnSingleChanged(func(it *Item) { panelItem = it })
	s.OnMultiChanged(func(items []*Item) { toolbarVisible = len(items) >= 2 })

	cases := []struct {
		name        string
		mutate      func()
		wantPanel   bool
		wantToolbar bool
	}{
		{"one_selected", func() { s.SelectSingle(1, false) }, true, false},
		{"two_selected", func() { s.SelectSingle(2, true) }, false, true},
		{"all_selected", func() { s.SelectAll() }, false, true},
		{"none_selected", func() { s.DeselectAll() }, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.mutate()
			if (panelItem != nil) != c.wantPanel {
				t.Fatalf("panel visible = %v, want %v", panelItem != nil, c.wantPanel)
			}
			if toolbarVisible != c.wantToolbar {
				t.Fatalf("toolbar visible = %v, want %v", toolbarVisible, c.wantToolbar)
			}
		})
	}
}

func TestDeletePruning(t *testing.T) {
	b := testBoard(1, 2, 3)
	s := NewSelection(b)
	s.SelectMultiple([]int64{1, 2, 3}, false)

	var lastMulti []*Item
	notified := 0
	s.OnMultiChanged(func(items []*Item) {
		lastMulti = items
		notified++
	})

	if removed := b.Remove(2); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	s.Prune()

	if b.ItemByID(2) != nil {
		t.Fatalf("item 2 still on board after delete")
	}
	if s.IsSelected(2) {
		t.Fatalf("item 2 still selected after prune")
	}
	if notified != 1 {
		t.Fatalf("expected one notification from prune, got %d", notified)
	}
	if len(lastMulti) != 2 {
		t.Fatalf("notification should carry reduced set, got %d items", len(lastMulti))
	}

	// pruning again with nothing missing stays silent
	s.Prune()
	if notified != 1 {
		t.Fatalf("no-op prune should not notify, got %d", notified)
	}
}

package canvas

// Selection tracks which board items are selected and notifies observers
// on every change. Observers come in two granularities: the single form
// receives the item when exactly one is selected (nil otherwise), the
// multi form always receives the full selected slice. Both fire on every
// mutation so surrounding UI can register once for either.
type Selection struct {
	board *Board
	ids   map[int64]struct{}

	onSingle []func(*Item)
	onMulti  []func([]*Item)
}

func NewSelection(b *Board) *Selection {
	return &Selection{board: b, ids: map[int64]struct{}{}}
}

func (s *Selection) OnSingleChanged(fn func(*Item)) {
	s.onSingle = append(s.onSingle, fn)
}

func (s *Selection) OnMultiChanged(fn func([]*Item)) {
	s.onMulti = append(s.onMulti, fn)
}

// SelectSingle adds the item to the selection, replacing the current
// selection unless additive is true.
func (s *Selection) SelectSingle(id int64, additive bool) {
	if !additive {
		s.ids = map[int64]struct{}{}
	}
	if s.board.ItemByID(id) != nil {
		s.ids[id] = struct{}{}
	}
	s.notify()
}

// Toggle removes the id if selected, otherwise adds it additively.
func (s *Selection) Toggle(id int64) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		s.notify()
		return
	}
	s.SelectSingle(id, true)
}

func (s *Selection) DeselectAll() {
	s.ids = map[int64]struct{}{}
	s.notify()
}

func (s *Selection) SelectMultiple(ids []int64, additive bool) {
	if !additive {
		s.ids = map[int64]struct{}{}
	}
	for _, id := range ids {
		if s.board.ItemByID(id) != nil {
			s.ids[id] = struct{}{}
		}
	}
	s.notify()
}

func (s *Selection) SelectAll() {
	for _, it := range s.board.Items() {
		s.ids[it.ID] = struct{}{}
	}
	s.notify()
}

func (s *Selection) IsSelected(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Count() int { return len(s.ids) }

// SelectedItems returns the selected items in board order.
func (s *Selection) SelectedItems() []*Item {
	out := make([]*Item, 0, len(s.ids))
	for _, it := range s.board.Items() {
		if _, ok := s.ids[it.ID]; ok {
			out = append(out, it)
		}
	}
	return out
}

func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for _, it := range s.board.Items() {
		if _, ok := s.ids[it.ID]; ok {
			out = append(out, it.ID)
		}
	}
	return out
}

// Prune drops ids that no longer reference a board item. Called after
// items are deleted; notifies only when something was actually dropped.
func (s *Selection) Prune() {
	changed := false
	for id := range s.ids {
		if s.board.ItemByID(id) == nil {
			delete(s.ids, id)
			changed = true
		}
	}
	if changed {
		s.notify()
	}
}

func (s *Selection) notify() {
	items := s.SelectedItems()
	var single *Item
	if len(items) == 1 {
		single = items[0]
	}
	for _, fn := range s.onSingle {
		fn(single)
	}
	for _, fn := range s.onMulti {
		fn(items)
	}
}

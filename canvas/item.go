package canvas

import "github.com/jakecoffman/cp"

// Item is one placeable element (furniture or decoration) on a zone map.
// Position is the top-left corner in canvas units. Rotation is in degrees
// and pivots around the item center.
type Item struct {
	ID        int64
	Position  cp.Vector
	Width     float64
	Height    float64
	Rotation  float64
	TypeKey   string
	FillColor string
	Number    int
	Capacity  int
}

func (it *Item) Center() cp.Vector {
	return cp.Vector{X: it.Position.X + it.Width/2, Y: it.Position.Y + it.Height/2}
}

func (it *Item) Bounds() cp.BB {
	return cp.BB{
		L: it.Position.X,
		B: it.Position.Y,
		R: it.Position.X + it.Width,
		T: it.Position.Y + it.Height,
	}
}

// FurnitureType describes one entry of the zone's type registry. Items
// reference a type by key; the registry supplies defaults for newly
// placed items and the palette label.
type FurnitureType struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	Category        string  `json:"category"`
	DefaultColor    string  `json:"default_color"`
	DefaultWidth    float64 `json:"default_width"`
	DefaultHeight   float64 `json:"default_height"`
	DefaultCapacity int     `json:"default_capacity"`
}

// Config holds the zone-level canvas settings.
type Config struct {
	Width            float64
	Height           float64
	BackgroundColor  string
	SnapGrid         float64
	DistributeMargin float64
}

// Board holds the authoritative in-memory item array for the loaded zone.
// The server is the durable store; the board is kept eventually consistent
// through the persistence gateway.
type Board struct {
	Config Config
	Types  map[string]FurnitureType

	items []*Item
}

func NewBoard(cfg Config) *Board {
	return &Board{Config: cfg, Types: map[string]FurnitureType{}}
}

func (b *Board) Items() []*Item { return b.items }

func (b *Board) Len() int { return len(b.items) }

func (b *Board) ItemByID(id int64) *Item {
	for _, it := range b.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// Reset drops every item, keeping the config. Used when a different
// zone is loaded into the same board.
func (b *Board) Reset() {
	b.items = b.items[:0]
}

// Add appends an item without snapping or clamping it. Server-loaded
// items may carry unsnapped legacy positions and are kept as-is.
func (b *Board) Add(items ...*Item) {
	b.items = append(b.items, items...)
}

// Remove drops the items with the given ids from the board and reports
// how many were actually present. Callers that hold a Selection must
// prune it afterwards.
func (b *Board) Remove(ids ...int64) int {
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := b.items[:0]
	removed := 0
	for _, it := range b.items {
		if _, ok := drop[it.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	for i := len(kept); i < len(b.items); i++ {
		b.items[i] = nil
	}
	b.items = kept
	return removed
}

// ItemAt returns the topmost item whose bounds contain the given
// canvas-space point, or nil. Later items draw on top of earlier ones.
func (b *Board) ItemAt(p cp.Vector) *Item {
	for i := len(b.items) - 1; i >= 0; i-- {
		if b.items[i].Bounds().ContainsVect(p) {
			return b.items[i]
		}
	}
	return nil
}

// Contains reports whether the point lies inside the canvas bounds.
func (b *Board) Contains(p cp.Vector) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= b.Config.Width && p.Y <= b.Config.Height
}

// ClampItem forces the item's position into [0, canvas - extent] on both
// axes.
func (b *Board) ClampItem(it *Item) {
	it.Position.X = Clamp(it.Position.X, 0, b.Config.Width-it.Width)
	it.Position.Y = Clamp(it.Position.Y, 0, b.Config.Height-it.Height)
}

func (b *Board) snap(v float64) float64 {
	return Snap(v, b.Config.SnapGrid)
}

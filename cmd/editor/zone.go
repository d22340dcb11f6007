package main

import (
	"log"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/beachclub/mapeditor/api"
	"github.com/beachclub/mapeditor/canvas"
	"github.com/beachclub/mapeditor/viewprefs"
)

// applyZone swaps a freshly loaded zone into the board. Runs on the
// main loop via the gateway result channel.
func (g *EditorGame) applyZone(zoneID int64, resp *api.ZoneResponse) {
	g.zoneID = zoneID

	g.board.Config.BackgroundColor = resp.Zone.BackgroundColor
	g.board.Config.Width = resp.Zone.CanvasWidth
	g.board.Config.Height = resp.Zone.CanvasHeight
	if g.overrideW > 0 {
		g.board.Config.Width = g.overrideW
	}
	if g.overrideH > 0 {
		g.board.Config.Height = g.overrideH
	}

	g.board.Types = map[string]canvas.FurnitureType{}
	ordered := make([]canvas.FurnitureType, 0, len(resp.FurnitureTypes))
	for _, ft := range resp.FurnitureTypes {
		t := canvas.FurnitureType{
			Key:             ft.Key,
			Label:           ft.Label,
			Category:        ft.Category,
			DefaultColor:    ft.DefaultColor,
			DefaultWidth:    ft.DefaultWidth,
			DefaultHeight:   ft.DefaultHeight,
			DefaultCapacity: ft.DefaultCapacity,
		}
		g.board.Types[t.Key] = t
		ordered = append(ordered, t)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Label < ordered[j].Label })

	g.board.Reset()
	for _, f := range resp.Zone.Furniture {
		g.board.Add(&canvas.Item{
			ID:        f.ID,
			Position:  cp.Vector{X: f.PositionX, Y: f.PositionY},
			Width:     f.Width,
			Height:    f.Height,
			Rotation:  f.Rotation,
			TypeKey:   f.TypeKey,
			FillColor: f.FillColor,
			Number:    f.Number,
			Capacity:  f.Capacity,
		})
	}
	g.sel.DeselectAll()
	g.notifyItemCount()

	if g.palette != nil {
		g.palette.SetTypes(ordered)
	}

	if v, ok := g.prefs.Get(zoneID); ok && v.Zoom > 0 {
		g.vp.Zoom = canvas.Clamp(v.Zoom, g.vp.MinZoom, g.vp.MaxZoom)
		g.vp.OffsetX = v.OffsetX
		g.vp.OffsetY = v.OffsetY
	}

	log.Printf("zone %d loaded: %d items, %d types, canvas %.0fx%.0f",
		zoneID, g.board.Len(), len(g.board.Types),
		g.board.Config.Width, g.board.Config.Height)
}

func (g *EditorGame) restoreDefaultView() {
	g.vp.Zoom = 1
	g.vp.OffsetX = 0
	g.vp.OffsetY = 0
	g.prefs.Set(g.zoneID, viewprefs.ZoneView{Zoom: 1})
	if err := g.prefs.Save(); err != nil {
		log.Printf("save view prefs: %v", err)
	}
}

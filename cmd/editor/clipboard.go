package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/beachclub/mapeditor/canvas"
)

// clipboardItem is the serialized form of a copied canvas item. Copies
// go through the normal create flow on paste, so pasted items get fresh
// server-issued ids and numbers.
type clipboardItem struct {
	TypeKey   string  `json:"furniture_type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Rotation  float64 `json:"rotation"`
	Capacity  int     `json:"capacity"`
	FillColor string  `json:"fill_color,omitempty"`
}

var clipboardReady bool

func initClipboard() {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return
	}
	clipboardReady = true
}

func (g *EditorGame) copySelection() {
	if !clipboardReady {
		return
	}
	items := g.sel.SelectedItems()
	if len(items) == 0 {
		return
	}
	payload := make([]clipboardItem, 0, len(items))
	for _, it := range items {
		payload = append(payload, clipboardItem{
			TypeKey:   it.TypeKey,
			X:         it.Position.X,
			Y:         it.Position.Y,
			Width:     it.Width,
			Height:    it.Height,
			Rotation:  it.Rotation,
			Capacity:  it.Capacity,
			FillColor: it.FillColor,
		})
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	clipboard.Write(clipboard.FmtText, b)
	g.toasts.Info(fmt.Sprintf("Copied %d item(s)", len(payload)))
}

func (g *EditorGame) pasteClipboard() {
	if !clipboardReady {
		return
	}
	b := clipboard.Read(clipboard.FmtText)
	if len(b) == 0 {
		return
	}
	var payload []clipboardItem
	if err := json.Unmarshal(b, &payload); err != nil {
		return
	}
	offset := g.editorCfg.PasteOffset
	for _, c := range payload {
		it := &canvas.Item{
			Position: cp.Vector{
				X: canvas.Snap(c.X+offset, g.board.Config.SnapGrid),
				Y: canvas.Snap(c.Y+offset, g.board.Config.SnapGrid),
			},
			Width:     c.Width,
			Height:    c.Height,
			Rotation:  c.Rotation,
			TypeKey:   c.TypeKey,
			Capacity:  c.Capacity,
			FillColor: c.FillColor,
		}
		g.board.ClampItem(it)
		g.gateway.createItem(it)
	}
}

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"

	"github.com/beachclub/mapeditor/canvas"
)

// canvasView owns the drawing of the board area: background, grid,
// items, selection highlights, and the marquee rectangle.
type canvasView struct {
	whiteImg *ebiten.Image
	font     text.Face
	smallFnt text.Face
}

func newCanvasView(font, small text.Face) *canvasView {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &canvasView{whiteImg: img, font: font, smallFnt: small}
}

// parseHexColor parses "#rrggbb". Falls back to a sand tone when the
// string doesn't parse.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0xd9, 0xc9, 0xa3
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// fillRect draws a solid rectangle already transformed to screen space.
func (v *canvasView) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(v.whiteImg, op)
}

// strokeRect draws a 1px outline around a screen-space rectangle.
func (v *canvasView) strokeRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	v.fillRect(dst, x, y, w, 1, c)
	v.fillRect(dst, x, y+h-1, w, 1, c)
	v.fillRect(dst, x, y, 1, h, c)
	v.fillRect(dst, x+w-1, y, 1, h, c)
}

func (v *canvasView) Draw(screen *ebiten.Image, g *EditorGame) {
	screen.Fill(color.RGBA{30, 30, 34, 255})

	vp := g.vp
	board := g.board
	ox := float64(g.leftPanelWidth)

	// canvas background
	bx, by := vp.CanvasToScreen(cp.Vector{})
	bw := board.Config.Width * vp.Zoom
	bh := board.Config.Height * vp.Zoom
	v.fillRect(screen, bx+ox, by, bw, bh, parseHexColor(board.Config.BackgroundColor))

	if g.showGrid {
		v.drawGrid(screen, g, ox)
	}

	for _, it := range board.Items() {
		v.drawItem(screen, g, it, ox)
	}

	if g.marquee.Active() {
		rect := g.marquee.Rect()
		x0, y0 := vp.CanvasToScreen(cp.Vector{X: rect.L, Y: rect.B})
		w := (rect.R - rect.L) * vp.Zoom
		h := (rect.T - rect.B) * vp.Zoom
		v.fillRect(screen, x0+ox, y0, w, h, color.RGBA{70, 130, 220, 60})
		v.strokeRect(screen, x0+ox, y0, w, h, color.RGBA{70, 130, 220, 200})
	}

	v.drawStatus(screen, g)
}

func (v *canvasView) drawGrid(screen *ebiten.Image, g *EditorGame, ox float64) {
	grid := g.board.Config.SnapGrid
	if grid <= 0 || g.vp.Zoom*grid < 4 {
		// grid too dense to be useful at this zoom
		return
	}
	lineColor := color.RGBA{0, 0, 0, 26}
	w := g.board.Config.Width
	h := g.board.Config.Height
	for x := 0.0; x <= w; x += grid {
		sx, sy := g.vp.CanvasToScreen(cp.Vector{X: x})
		v.fillRect(screen, sx+ox, sy, 1, h*g.vp.Zoom, lineColor)
	}
	for y := 0.0; y <= h; y += grid {
		sx, sy := g.vp.CanvasToScreen(cp.Vector{Y: y})
		v.fillRect(screen, sx+ox, sy, w*g.vp.Zoom, 1, lineColor)
	}
}

func (v *canvasView) drawItem(screen *ebiten.Image, g *EditorGame, it *canvas.Item, ox float64) {
	fill := it.FillColor
	if fill == "" {
		if t, ok := g.board.Types[it.TypeKey]; ok {
			fill = t.DefaultColor
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(it.Width, it.Height)
	op.GeoM.Translate(-it.Width/2, -it.Height/2)
	op.GeoM.Rotate(it.Rotation * math.Pi / 180)
	op.GeoM.Translate(it.Position.X+it.Width/2, it.Position.Y+it.Height/2)
	op.GeoM.Scale(g.vp.Zoom, g.vp.Zoom)
	op.GeoM.Translate(g.vp.OffsetX+ox, g.vp.OffsetY)
	op.ColorScale.ScaleWithColor(parseHexColor(fill))
	screen.DrawImage(v.whiteImg, op)

	selected := g.sel.IsSelected(it.ID)
	previewed := g.marquee.Active() && g.marquee.InPreview(it.ID)
	if selected || previewed {
		c := color.RGBA{255, 200, 40, 255}
		if previewed && !selected {
			c = color.RGBA{120, 180, 255, 255}
		}
		sx, sy := g.vp.CanvasToScreen(it.Position)
		v.strokeRect(screen, sx+ox-2, sy-2, it.Width*g.vp.Zoom+4, it.Height*g.vp.Zoom+4, c)
	}

	if it.Number > 0 && g.vp.Zoom >= 0.5 {
		sx, sy := g.vp.CanvasToScreen(it.Center())
		top := &text.DrawOptions{}
		top.GeoM.Translate(sx+ox-6, sy-8)
		top.ColorScale.ScaleWithColor(color.RGBA{20, 20, 20, 255})
		text.Draw(screen, fmt.Sprintf("%d", it.Number), v.smallFnt, top)
	}
}

func (v *canvasView) drawStatus(screen *ebiten.Image, g *EditorGame) {
	status := fmt.Sprintf("zone %d | %d items | %d selected | zoom %.0f%% | grid %.0f",
		g.zoneID, g.board.Len(), g.sel.Count(), g.vp.Zoom*100, g.board.Config.SnapGrid)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(g.leftPanelWidth)+8, 6)
	op.ColorScale.ScaleWithColor(color.RGBA{210, 210, 210, 255})
	text.Draw(screen, status, v.smallFnt, op)
}

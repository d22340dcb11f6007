package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// confirmDialog is a simple modal yes/no box. While open it captures
// all input: Enter or Y confirms, Escape or N cancels. A cancelled
// confirmation runs nothing.
type confirmDialog struct {
	open      bool
	message   string
	onConfirm func()
	font      text.Face
	bgImg     *ebiten.Image
}

func newConfirmDialog(font text.Face) *confirmDialog {
	bg := ebiten.NewImage(1, 1)
	bg.Fill(color.White)
	return &confirmDialog{font: font, bgImg: bg}
}

func (c *confirmDialog) Open(message string, onConfirm func()) {
	c.message = message
	c.onConfirm = onConfirm
	c.open = true
}

func (c *confirmDialog) close() {
	c.open = false
	c.message = ""
	c.onConfirm = nil
}

// Update processes input while the dialog is open. Returns true if the
// dialog is open so the caller can skip all other input handling.
func (c *confirmDialog) Update() bool {
	if !c.open {
		return false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyY) {
		fn := c.onConfirm
		c.close()
		if fn != nil {
			fn()
		}
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		c.close()
	}
	return true
}

func (c *confirmDialog) Draw(screen *ebiten.Image) {
	if !c.open {
		return
	}
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	// dim the whole screen
	dim := &ebiten.DrawImageOptions{}
	dim.GeoM.Scale(sw, sh)
	dim.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 120})
	screen.DrawImage(c.bgImg, dim)

	const w, h = 420.0, 110.0
	x := (sw - w) / 2
	y := (sh - h) / 2

	box := &ebiten.DrawImageOptions{}
	box.GeoM.Scale(w, h)
	box.GeoM.Translate(x, y)
	box.ColorScale.ScaleWithColor(color.RGBA{50, 50, 55, 255})
	screen.DrawImage(c.bgImg, box)

	msg := &text.DrawOptions{}
	msg.GeoM.Translate(x+16, y+20)
	msg.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, c.message, c.font, msg)

	hint := &text.DrawOptions{}
	hint.GeoM.Translate(x+16, y+64)
	hint.ColorScale.ScaleWithColor(color.RGBA{180, 180, 180, 255})
	text.Draw(screen, "Enter/Y to confirm, Esc/N to cancel", c.font, hint)
}

package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastWarn
	toastError
)

type toast struct {
	msg  string
	kind toastKind
	ttl  int // frames
}

// toastStack shows non-blocking notifications in the bottom-right
// corner. Errors also go to the log so they survive the fade-out.
type toastStack struct {
	items    []toast
	font     text.Face
	bgImg    *ebiten.Image
	maxShown int
}

const toastFrames = 240 // ~4s at 60 TPS

func newToastStack(font text.Face) *toastStack {
	bg := ebiten.NewImage(1, 1)
	bg.Fill(color.White)
	return &toastStack{font: font, bgImg: bg, maxShown: 5}
}

func (t *toastStack) push(msg string, kind toastKind) {
	t.items = append(t.items, toast{msg: msg, kind: kind, ttl: toastFrames})
	if len(t.items) > t.maxShown {
		t.items = t.items[len(t.items)-t.maxShown:]
	}
}

func (t *toastStack) Info(msg string) { t.push(msg, toastInfo) }
func (t *toastStack) Warn(msg string) { t.push(msg, toastWarn) }

func (t *toastStack) Error(msg string) {
	log.Printf("error: %s", msg)
	t.push(msg, toastError)
}

func (t *toastStack) Update() {
	kept := t.items[:0]
	for _, it := range t.items {
		it.ttl--
		if it.ttl > 0 {
			kept = append(kept, it)
		}
	}
	t.items = kept
}

func (t *toastStack) Draw(screen *ebiten.Image) {
	if len(t.items) == 0 {
		return
	}
	const (
		w       = 360.0
		h       = 28.0
		pad     = 8.0
		spacing = 6.0
	)
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())
	y := sh - pad - h
	for i := len(t.items) - 1; i >= 0; i-- {
		it := t.items[i]
		var bg color.RGBA
		switch it.kind {
		case toastError:
			bg = color.RGBA{170, 40, 40, 230}
		case toastWarn:
			bg = color.RGBA{180, 130, 20, 230}
		default:
			bg = color.RGBA{40, 90, 160, 230}
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(sw-pad-w, y)
		op.ColorScale.ScaleWithColor(bg)
		screen.DrawImage(t.bgImg, op)

		top := &text.DrawOptions{}
		top.GeoM.Translate(sw-pad-w+8, y+6)
		top.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, it.msg, t.font, top)

		y -= h + spacing
	}
}

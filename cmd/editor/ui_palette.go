package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/beachclub/mapeditor/canvas"
)

// Palette is the left-panel furniture type list. Clicking a type arms a
// one-shot placement: the next canvas click stamps an item of that type.
type Palette struct {
	Container *widget.Container

	theme    *widget.Theme
	fontFace *text.Face
	buttons  *widget.Container
	status   *widget.Label

	onPick func(canvas.FurnitureType)
}

func buildPalette(theme *widget.Theme, fontFace *text.Face, onPick func(canvas.FurnitureType)) *Palette {
	p := &Palette{theme: theme, fontFace: fontFace, onPick: onPick}

	p.Container = widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 10, Right: 10}),
			),
		),
	)

	p.Container.AddChild(newPanelLabel("Furniture", fontFace))

	p.status = newPanelLabel("", fontFace)
	p.Container.AddChild(p.status)

	p.buttons = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	p.Container.AddChild(p.buttons)

	return p
}

// SetTypes rebuilds the palette buttons from the zone's type registry,
// one section per category.
func (p *Palette) SetTypes(types []canvas.FurnitureType) {
	p.buttons.RemoveChildren()
	lastCategory := ""
	for _, t := range types {
		if t.Category != lastCategory {
			lastCategory = t.Category
			p.buttons.AddChild(newPanelLabel(t.Category, p.fontFace))
		}
		typ := t
		btn := widget.NewButton(
			widget.ButtonOpts.Image(p.theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(typ.Label, p.fontFace, p.theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 30)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				p.setStatus("Placing: " + typ.Label + " (Esc cancels)")
				if p.onPick != nil {
					p.onPick(typ)
				}
			}),
		)
		p.buttons.AddChild(btn)
	}
	p.Container.RequestRelayout()
}

// ClearActive drops the pending-placement hint once the type has been
// stamped or the placement was cancelled.
func (p *Palette) ClearActive() {
	p.setStatus("")
}

func (p *Palette) setStatus(s string) {
	if p.status != nil {
		p.status.Label = s
	}
}

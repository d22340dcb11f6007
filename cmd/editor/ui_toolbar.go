package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/beachclub/mapeditor/canvas"
)

// MultiToolbar is the alignment and bulk-action section shown while two
// or more items are selected.
type MultiToolbar struct {
	Container *widget.Container

	count *widget.Label
}

func buildMultiToolbar(
	theme *widget.Theme,
	fontFace *text.Face,
	onAlign func(mode canvas.AlignMode),
	onDelete func(),
) *MultiToolbar {
	tb := &MultiToolbar{}

	tb.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)

	tb.count = newPanelLabel("", fontFace)
	tb.Container.AddChild(tb.count)

	addButton := func(label string, mode canvas.AlignMode) {
		m := mode
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onAlign != nil {
					onAlign(m)
				}
			}),
		)
		tb.Container.AddChild(btn)
	}

	tb.Container.AddChild(newPanelLabel("Align", fontFace))
	addButton("Left edges", canvas.AlignLeft)
	addButton("Right edges", canvas.AlignRight)
	addButton("Top edges", canvas.AlignTop)
	addButton("Bottom edges", canvas.AlignBottom)
	addButton("Center horizontally", canvas.AlignCenterH)
	addButton("Center vertically", canvas.AlignCenterV)

	tb.Container.AddChild(newPanelLabel("Distribute", fontFace))
	addButton("Spread horizontally", canvas.DistributeH)
	addButton("Spread vertically", canvas.DistributeV)

	deleteBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    solidNineSlice(color.RGBA{190, 80, 80, 255}),
			Hover:   solidNineSlice(color.RGBA{210, 100, 100, 255}),
			Pressed: solidNineSlice(color.RGBA{170, 60, 60, 255}),
		}),
		widget.ButtonOpts.Text("Delete selected", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 28)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onDelete != nil {
				onDelete()
			}
		}),
	)
	tb.Container.AddChild(deleteBtn)

	tb.Container.GetWidget().Visibility = widget.Visibility_Hide
	return tb
}

// SetSelection shows the toolbar for multi-selections and hides it
// otherwise.
func (tb *MultiToolbar) SetSelection(items []*canvas.Item) {
	if len(items) < 2 {
		tb.Container.GetWidget().Visibility = widget.Visibility_Hide
		tb.Container.RequestRelayout()
		return
	}
	tb.count.Label = fmt.Sprintf("%d items selected", len(items))
	tb.Container.GetWidget().Visibility = widget.Visibility_Show
	tb.Container.RequestRelayout()
}

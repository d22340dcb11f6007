package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/beachclub/mapeditor/canvas"
)

const (
	leftPanelWidth  = 200
	rightPanelWidth = 220
)

func BuildEditorUI(
	game *EditorGame,
	onTypePicked func(canvas.FurnitureType),
	onAlign func(mode canvas.AlignMode),
	onDelete func(),
	onResetView func(),
) (*ebitenui.UI, *Palette, *PropertyPanel, *MultiToolbar, text.Face, text.Face) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	var smallFace text.Face = &text.GoTextFace{Source: s, Size: 11}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	palette := buildPalette(ui.PrimaryTheme, &fontFace, onTypePicked)
	propertyPanel := buildPropertyPanel(game, &fontFace)
	multiToolbar := buildMultiToolbar(ui.PrimaryTheme, &fontFace, onAlign, onDelete)

	rightPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, 400),
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
	rightPanel.AddChild(newPanelLabel("Selection", &fontFace))
	rightPanel.AddChild(propertyPanel.Container)
	rightPanel.AddChild(multiToolbar.Container)

	rightPanel.AddChild(newPanelLabel("View", &fontFace))
	addButton := func(label string, onClick func()) {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, &fontFace, ui.PrimaryTheme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 28)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		rightPanel.AddChild(btn)
	}
	addButton("Zoom in", game.zoomStepIn)
	addButton("Zoom out", game.zoomStepOut)
	addButton("Reset view", onResetView)

	countLabel := newPanelLabel("", &fontFace)
	rightPanel.AddChild(countLabel)
	game.OnItemCountChanged(func(n int) {
		countLabel.Label = fmt.Sprintf("%d items in zone", n)
	})

	// Root container: anchor layout
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	palette.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	rightPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	root.AddChild(palette.Container)
	root.AddChild(rightPanel)

	ui.Container = root
	return ui, palette, propertyPanel, multiToolbar, fontFace, smallFace
}

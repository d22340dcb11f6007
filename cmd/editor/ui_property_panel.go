package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/beachclub/mapeditor/canvas"
)

// PropertyPanel shows the editable fields of the single selected item.
// Edits commit on Enter: the new value is applied locally right away and
// sent to the server, which may roll it back on failure.
type PropertyPanel struct {
	Container *widget.Container

	game *EditorGame

	title    *widget.Label
	number   *widget.TextInput
	capacity *widget.TextInput
	fill     *widget.TextInput
	rotation *widget.TextInput

	itemID int64
}

func buildPropertyPanel(game *EditorGame, fontFace *text.Face) *PropertyPanel {
	p := &PropertyPanel{game: game}

	p.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)

	p.title = newPanelLabel("", fontFace)
	p.Container.AddChild(p.title)

	addField := func(label string, submit func(text string)) *widget.TextInput {
		p.Container.AddChild(newPanelLabel(label, fontFace))
		input := newPanelInput(fontFace, submit)
		p.Container.AddChild(input)
		return input
	}

	p.number = addField("Number", p.submitNumber)
	p.capacity = addField("Capacity", p.submitCapacity)
	p.fill = addField("Fill color", p.submitFill)
	p.rotation = addField("Rotation", p.submitRotation)

	p.Container.GetWidget().Visibility = widget.Visibility_Hide
	return p
}

// ShowItem fills the fields from the item and reveals the panel. Called
// by the selection observer whenever exactly one item is selected.
func (p *PropertyPanel) ShowItem(it *canvas.Item) {
	if it == nil {
		p.Hide()
		return
	}
	p.itemID = it.ID
	label := it.TypeKey
	if t, ok := p.game.board.Types[it.TypeKey]; ok {
		label = t.Label
	}
	p.title.Label = fmt.Sprintf("%s #%d", label, it.Number)
	p.number.SetText(strconv.Itoa(it.Number))
	p.capacity.SetText(strconv.Itoa(it.Capacity))
	p.fill.SetText(it.FillColor)
	p.rotation.SetText(strconv.FormatFloat(it.Rotation, 'f', -1, 64))
	p.Container.GetWidget().Visibility = widget.Visibility_Show
	p.Container.RequestRelayout()
}

func (p *PropertyPanel) Hide() {
	p.itemID = 0
	p.Container.GetWidget().Visibility = widget.Visibility_Hide
	p.Container.RequestRelayout()
}

// item resolves the panel's target; nil when it was deleted or the
// selection moved on while the input still had focus.
func (p *PropertyPanel) item() *canvas.Item {
	if p.itemID == 0 {
		return nil
	}
	return p.game.board.ItemByID(p.itemID)
}

func (p *PropertyPanel) submitNumber(s string) {
	it := p.item()
	if it == nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		p.game.toasts.Warn("Number must be a positive integer")
		p.number.SetText(strconv.Itoa(it.Number))
		return
	}
	prev := it.Number
	if n == prev {
		return
	}
	it.Number = n
	id := it.ID
	p.game.gateway.updateProperty(id, "number", n, func(g *EditorGame) {
		if cur := g.board.ItemByID(id); cur != nil {
			cur.Number = prev
		}
		p.refreshIfCurrent(id)
	})
	label := it.TypeKey
	if t, ok := p.game.board.Types[it.TypeKey]; ok {
		label = t.Label
	}
	p.title.Label = fmt.Sprintf("%s #%d", label, n)
}

func (p *PropertyPanel) submitCapacity(s string) {
	it := p.item()
	if it == nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		p.game.toasts.Warn("Capacity must be a non-negative integer")
		p.capacity.SetText(strconv.Itoa(it.Capacity))
		return
	}
	prev := it.Capacity
	if n == prev {
		return
	}
	it.Capacity = n
	id := it.ID
	p.game.gateway.updateProperty(id, "capacity", n, func(g *EditorGame) {
		if cur := g.board.ItemByID(id); cur != nil {
			cur.Capacity = prev
		}
		p.refreshIfCurrent(id)
	})
}

func (p *PropertyPanel) submitFill(s string) {
	it := p.item()
	if it == nil {
		return
	}
	s = strings.TrimSpace(strings.ToLower(s))
	if !validHexColor(s) {
		p.game.toasts.Warn("Color must look like #rrggbb")
		p.fill.SetText(it.FillColor)
		return
	}
	prev := it.FillColor
	if s == prev {
		return
	}
	it.FillColor = s
	id := it.ID
	p.game.gateway.updateProperty(id, "fill_color", s, func(g *EditorGame) {
		if cur := g.board.ItemByID(id); cur != nil {
			cur.FillColor = prev
		}
		p.refreshIfCurrent(id)
	})
}

func (p *PropertyPanel) submitRotation(s string) {
	it := p.item()
	if it == nil {
		return
	}
	deg, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		p.game.toasts.Warn("Rotation must be a number of degrees")
		p.rotation.SetText(strconv.FormatFloat(it.Rotation, 'f', -1, 64))
		return
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	prev := it.Rotation
	if deg == prev {
		return
	}
	it.Rotation = deg
	p.rotation.SetText(strconv.FormatFloat(deg, 'f', -1, 64))
	p.game.gateway.updateRotation(it, prev)
}

// refreshIfCurrent re-fills the inputs after a server rollback, but only
// when the panel still shows the same item.
func (p *PropertyPanel) refreshIfCurrent(id int64) {
	if p.itemID != id {
		return
	}
	if it := p.game.board.ItemByID(id); it != nil {
		p.ShowItem(it)
	}
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}

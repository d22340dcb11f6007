package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/beachclub/mapeditor/canvas"
	"github.com/beachclub/mapeditor/config"
	"github.com/beachclub/mapeditor/viewprefs"
)

// EditorGame is the Ebiten game for the zone map editor. All board and
// selection mutation happens in Update on the main loop; network results
// come back through the gateway's result channel and are drained here.
type EditorGame struct {
	ui *ebitenui.UI

	board   *canvas.Board
	sel     *canvas.Selection
	drag    *canvas.Drag
	marquee *canvas.Marquee
	vp      *canvas.Viewport

	gateway *gateway
	toasts  *toastStack
	confirm *confirmDialog
	prefs   *viewprefs.Store
	zoneID  int64

	editorCfg config.Editor
	cfgWatch  *config.Watcher

	propertyPanel *PropertyPanel
	multiToolbar  *MultiToolbar
	palette       *Palette
	view          *canvasView

	// layout
	leftPanelWidth  int
	rightPanelWidth int
	screenW         int
	screenH         int

	// a selected palette type is stamped on the next canvas click
	pendingType *canvas.FurnitureType

	// caller-supplied canvas dimensions; when set they win over the
	// server-reported ones
	overrideW float64
	overrideH float64

	// pan state
	panning  bool
	lastPanX int
	lastPanY int

	// pressEmpty marks a primary press that started on empty canvas, so
	// a plain click there deselects on release
	pressEmpty    bool
	suppressClick bool

	showGrid bool

	itemCountObservers []func(int)
}

// OnItemCountChanged registers an observer for structural changes
// (create/delete). Counters in the surrounding UI subscribe here instead
// of being wired into the canvas code.
func (g *EditorGame) OnItemCountChanged(fn func(int)) {
	g.itemCountObservers = append(g.itemCountObservers, fn)
}

func (g *EditorGame) notifyItemCount() {
	n := g.board.Len()
	for _, fn := range g.itemCountObservers {
		fn(n)
	}
}

func (g *EditorGame) additiveHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (g *EditorGame) shiftHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift)
}

// screenToCanvas maps a window position to canvas units, accounting for
// the left panel. Returns canvas.Invalid before the viewport is ready.
func (g *EditorGame) screenToCanvas(sx, sy int) cp.Vector {
	return g.vp.ScreenToCanvas(float64(sx-g.leftPanelWidth), float64(sy))
}

func (g *EditorGame) overCanvasArea(sx, sy int) bool {
	return sx >= g.leftPanelWidth && sx < g.screenW-g.rightPanelWidth && sy >= 0
}

func (g *EditorGame) Update() error {
	g.drainGateway()
	g.drainConfig()
	g.toasts.Update()

	if g.confirm.Update() {
		return nil
	}

	// If the UI has a focused text widget (user is typing), suppress hotkeys.
	suppressHotkeys := false
	if g.ui != nil {
		if fw := g.ui.GetFocusedWidget(); fw != nil {
			switch fw.(type) {
			case *widget.TextInput:
				suppressHotkeys = true
			}
		}
	}
	if !suppressHotkeys {
		g.handleKeys()
	}

	if g.ui != nil {
		g.ui.Update()
	}

	mx, my := ebiten.CursorPosition()

	// Ctrl+wheel zoom centered on the cursor; plain wheel is left alone
	// so trackpad scrolling keeps working.
	if _, wy := ebiten.Wheel(); wy != 0 && g.additiveHeld() && g.overCanvasArea(mx, my) {
		if wy > 0 {
			g.vp.StepIn(float64(mx-g.leftPanelWidth), float64(my))
		} else {
			g.vp.StepOut(float64(mx-g.leftPanelWidth), float64(my))
		}
		g.saveViewPrefs()
	}

	g.updatePan(mx, my)
	if g.panning {
		return nil
	}

	g.updatePointer(mx, my)
	return nil
}

func (g *EditorGame) handleKeys() {
	ctrl := g.additiveHeld()
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.sel.SelectAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pendingType = nil
		if g.palette != nil {
			g.palette.ClearActive()
		}
		g.sel.DeselectAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.requestDeleteSelection()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySelection()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.pasteClipboard()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.Key0) {
		g.restoreDefaultView()
	}
}

func (g *EditorGame) updatePan(mx, my int) {
	spacePan := ebiten.IsKeyPressed(ebiten.KeySpace) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	middlePan := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	// item drag and marquee take priority once started
	if g.drag.Active() || g.marquee.Armed() {
		return
	}
	if spacePan || middlePan {
		if !g.panning {
			g.panning = true
			g.lastPanX, g.lastPanY = mx, my
			return
		}
		g.vp.Pan(float64(mx-g.lastPanX), float64(my-g.lastPanY))
		g.lastPanX, g.lastPanY = mx, my
		return
	}
	if g.panning {
		g.panning = false
		g.saveViewPrefs()
	}
}

func (g *EditorGame) updatePointer(mx, my int) {
	pt := g.screenToCanvas(mx, my)
	screenPt := cp.Vector{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		!ebuiinput.UIHovered && g.overCanvasArea(mx, my) && pt != canvas.Invalid {
		g.handlePress(pt, screenPt)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && pt != canvas.Invalid {
		if g.drag.Active() {
			g.drag.Move(pt)
		} else if g.marquee.Armed() {
			g.marquee.Update(pt, screenPt)
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.handleRelease()
	}
}

func (g *EditorGame) handlePress(pt, screenPt cp.Vector) {
	g.pressEmpty = false
	g.suppressClick = false

	if g.pendingType != nil {
		g.placePending(pt)
		return
	}

	item := g.board.ItemAt(pt)
	additive := g.additiveHeld()

	switch {
	case item == nil:
		// empty canvas: arm the marquee; a plain click deselects on
		// release
		g.pressEmpty = true
		g.marquee.Arm(pt, screenPt)
	case additive:
		// modifier press on an item toggles and never moves; further
		// movement becomes a marquee
		g.sel.Toggle(item.ID)
		g.marquee.Arm(pt, screenPt)
	default:
		if !g.sel.IsSelected(item.ID) {
			g.sel.SelectSingle(item.ID, g.shiftHeld())
		}
		g.drag.Start(pt)
	}
}

func (g *EditorGame) handleRelease() {
	if g.drag.Active() {
		if moved := g.drag.End(); len(moved) > 0 {
			g.gateway.persistMoves(moved)
		}
		return
	}
	if g.marquee.Armed() {
		additive := g.additiveHeld() || g.shiftHeld()
		if g.marquee.End(additive) {
			// swallow the click that follows an actual rubber-band drag
			g.suppressClick = true
		}
	}
	if g.pressEmpty && !g.suppressClick {
		g.sel.DeselectAll()
	}
	g.pressEmpty = false
	g.suppressClick = false
}

// placePending stamps the selected palette type at the click point via
// the create endpoint. The drop point is validated locally first.
func (g *EditorGame) placePending(pt cp.Vector) {
	typ := *g.pendingType
	g.pendingType = nil
	if g.palette != nil {
		g.palette.ClearActive()
	}

	if !g.board.Contains(pt) {
		g.toasts.Warn("Drop point is outside the canvas")
		return
	}
	it := &canvas.Item{
		Position: cp.Vector{
			X: canvas.Snap(pt.X-typ.DefaultWidth/2, g.board.Config.SnapGrid),
			Y: canvas.Snap(pt.Y-typ.DefaultHeight/2, g.board.Config.SnapGrid),
		},
		Width:     typ.DefaultWidth,
		Height:    typ.DefaultHeight,
		TypeKey:   typ.Key,
		Capacity:  typ.DefaultCapacity,
		FillColor: typ.DefaultColor,
	}
	g.board.ClampItem(it)
	g.gateway.createItem(it)
}

func (g *EditorGame) applyAlign(mode canvas.AlignMode) {
	items := g.sel.SelectedItems()
	if len(items) < 2 {
		return
	}
	if changed := canvas.Align(g.board, items, mode); len(changed) > 0 {
		g.gateway.persistMoves(changed)
	}
}

// requestDeleteSelection deletes the selection. One item goes straight
// out; more than one asks for confirmation first.
func (g *EditorGame) requestDeleteSelection() {
	ids := g.sel.IDs()
	if len(ids) == 0 {
		return
	}
	if len(ids) == 1 {
		g.gateway.deleteItems(ids)
		return
	}
	g.confirm.Open(fmt.Sprintf("Delete %d selected items?", len(ids)), func() {
		g.gateway.deleteItems(ids)
	})
}

func (g *EditorGame) drainGateway() {
	for {
		select {
		case r := <-g.gateway.results:
			if r.generation == g.gateway.generation {
				r.apply(g)
			}
		default:
			return
		}
	}
}

func (g *EditorGame) drainConfig() {
	if g.cfgWatch == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.cfgWatch.Configs:
			if !ok {
				g.cfgWatch = nil
				return
			}
			g.applyEditorConfig(cfg)
			g.toasts.Info(fmt.Sprintf("Config reloaded (grid %v)", cfg.SnapGrid))
		case err, ok := <-g.cfgWatch.Errors:
			if !ok {
				g.cfgWatch = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

// applyEditorConfig picks up a changed config at runtime. A new snap
// grid redraws the grid lines but existing item positions stay put.
func (g *EditorGame) applyEditorConfig(cfg config.Editor) {
	g.editorCfg = cfg
	g.board.Config.SnapGrid = cfg.SnapGrid
	g.board.Config.DistributeMargin = cfg.DistributeMargin
	g.vp.MinZoom = cfg.MinZoom
	g.vp.MaxZoom = cfg.MaxZoom
	g.vp.ZoomStep = cfg.ZoomStep
	g.showGrid = cfg.ShowGrid
}

// zoomStepIn and zoomStepOut are the toolbar zoom buttons; they zoom
// around the center of the visible canvas area.
func (g *EditorGame) zoomStepIn() {
	cx, cy := g.canvasAreaCenter()
	g.vp.StepIn(cx, cy)
	g.saveViewPrefs()
}

func (g *EditorGame) zoomStepOut() {
	cx, cy := g.canvasAreaCenter()
	g.vp.StepOut(cx, cy)
	g.saveViewPrefs()
}

func (g *EditorGame) canvasAreaCenter() (float64, float64) {
	return float64(g.screenW-g.leftPanelWidth-g.rightPanelWidth) / 2, float64(g.screenH) / 2
}

func (g *EditorGame) saveViewPrefs() {
	if g.prefs == nil {
		return
	}
	g.prefs.Set(g.zoneID, viewprefs.ZoneView{
		Zoom:    g.vp.Zoom,
		OffsetX: g.vp.OffsetX,
		OffsetY: g.vp.OffsetY,
	})
	if err := g.prefs.Save(); err != nil {
		log.Printf("save view prefs: %v", err)
	}
}

func (g *EditorGame) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g)
	if g.ui != nil {
		g.ui.Draw(screen)
	}
	g.toasts.Draw(screen)
	g.confirm.Draw(screen)
}

func (g *EditorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW = outsideWidth
	g.screenH = outsideHeight
	return outsideWidth, outsideHeight
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/beachclub/mapeditor/api"
	"github.com/beachclub/mapeditor/canvas"
	"github.com/beachclub/mapeditor/config"
	"github.com/beachclub/mapeditor/viewprefs"
)

func main() {
	configPath := flag.String("config", "editor.yaml", "Editor settings file")
	zoneFlag := flag.Int64("zone", 0, "Zone to open (overrides MAPEDITOR_ZONE_ID)")
	widthFlag := flag.Float64("width", 0, "Override the zone's canvas width")
	heightFlag := flag.Float64("height", 0, "Override the zone's canvas height")
	flag.Parse()

	log.Println("Map editor starting...")

	editorCfg, err := config.LoadEditor(*configPath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *configPath, err)
	}
	serverCfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Server config: %v", err)
	}

	zoneID := serverCfg.ZoneID
	if *zoneFlag != 0 {
		zoneID = *zoneFlag
	}
	if zoneID == 0 {
		log.Fatal("No zone given: set MAPEDITOR_ZONE_ID or pass -zone")
	}

	client := api.NewClient(serverCfg.BaseURL, func() string { return serverCfg.Token })

	prefsPath, err := viewprefs.DefaultPath()
	if err != nil {
		log.Printf("View prefs unavailable: %v", err)
	}
	prefs := viewprefs.Load(prefsPath)

	initClipboard()

	board := canvas.NewBoard(canvas.Config{
		Width:            1000,
		Height:           800,
		SnapGrid:         editorCfg.SnapGrid,
		DistributeMargin: editorCfg.DistributeMargin,
	})
	sel := canvas.NewSelection(board)
	game := &EditorGame{
		board:           board,
		sel:             sel,
		drag:            canvas.NewDrag(board, sel),
		marquee:         canvas.NewMarquee(board, sel),
		vp:              canvas.NewViewport(editorCfg.MinZoom, editorCfg.MaxZoom, editorCfg.ZoomStep),
		prefs:           prefs,
		zoneID:          zoneID,
		editorCfg:       editorCfg,
		leftPanelWidth:  leftPanelWidth,
		rightPanelWidth: rightPanelWidth,
		overrideW:       *widthFlag,
		overrideH:       *heightFlag,
		showGrid:        editorCfg.ShowGrid,
	}
	game.gateway = newGateway(client, zoneID)

	ui, palette, propertyPanel, multiToolbar, fontFace, smallFace := BuildEditorUI(
		game,
		func(t canvas.FurnitureType) { game.pendingType = &t },
		game.applyAlign,
		game.requestDeleteSelection,
		game.restoreDefaultView,
	)
	game.ui = ui
	game.palette = palette
	game.propertyPanel = propertyPanel
	game.multiToolbar = multiToolbar
	game.view = newCanvasView(fontFace, smallFace)
	game.toasts = newToastStack(smallFace)
	game.confirm = newConfirmDialog(fontFace)

	sel.OnSingleChanged(propertyPanel.ShowItem)
	sel.OnMultiChanged(multiToolbar.SetSelection)

	if watcher, err := config.NewWatcher(*configPath); err != nil {
		log.Printf("Config watch disabled: %v", err)
	} else {
		game.cfgWatch = watcher
		defer watcher.Close()
	}

	game.gateway.loadZone(zoneID)

	ebiten.SetWindowTitle("Zone Map Editor")
	ebiten.SetWindowSize(1440, 900)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

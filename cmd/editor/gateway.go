package main

import (
	"context"
	"fmt"
	"log"

	"github.com/beachclub/mapeditor/api"
	"github.com/beachclub/mapeditor/canvas"
)

// gwResult is one network outcome handed back to the main loop. The
// generation stamps which zone load the result belongs to; results from
// a zone that is no longer displayed are dropped.
type gwResult struct {
	generation int
	apply      func(*EditorGame)
}

// gateway runs the persistence calls off the main loop. One goroutine
// per gesture, no queueing across gestures: concurrent batches may race
// and last-write-wins is fine because every batch carries absolute
// final positions.
type gateway struct {
	client     *api.Client
	zoneID     int64
	generation int
	results    chan gwResult
}

func newGateway(client *api.Client, zoneID int64) *gateway {
	return &gateway{
		client:  client,
		zoneID:  zoneID,
		results: make(chan gwResult, 32),
	}
}

func (gw *gateway) post(gen int, apply func(*EditorGame)) {
	gw.results <- gwResult{generation: gen, apply: apply}
}

// loadZone fetches the zone and swaps the board contents in on the main
// loop. Bumping the generation first makes any still-inflight results
// for the previous zone harmless.
func (gw *gateway) loadZone(zoneID int64) {
	gw.generation++
	gw.zoneID = zoneID
	gen := gw.generation
	go func() {
		resp, err := gw.client.LoadZone(context.Background(), zoneID)
		if err != nil {
			gw.post(gen, func(g *EditorGame) {
				g.toasts.Error(fmt.Sprintf("Failed to load zone %d: %v", zoneID, err))
			})
			return
		}
		gw.post(gen, func(g *EditorGame) {
			g.applyZone(zoneID, resp)
		})
	}()
}

// persistMoves submits one batched position update for a finished
// gesture. On failure every item still on the board rolls back to its
// pre-gesture position.
func (gw *gateway) persistMoves(changes []canvas.PositionChange) {
	gen := gw.generation
	updates := make([]api.PositionUpdate, 0, len(changes))
	rollback := make(map[int64]canvas.PositionChange, len(changes))
	for _, ch := range changes {
		updates = append(updates, api.PositionUpdate{
			ID:       ch.Item.ID,
			X:        ch.To.X,
			Y:        ch.To.Y,
			Rotation: ch.Item.Rotation,
		})
		rollback[ch.Item.ID] = ch
	}
	go func() {
		err := gw.client.BatchUpdatePositions(context.Background(), updates)
		if err == nil {
			return
		}
		gw.post(gen, func(g *EditorGame) {
			for id, ch := range rollback {
				if it := g.board.ItemByID(id); it != nil {
					it.Position = ch.From
				}
			}
			g.toasts.Error(fmt.Sprintf("Saving positions failed: %v", err))
		})
	}()
}

// createItem asks the server for the type's next label number, creates
// the item, and adds it to the board with its server-issued id.
func (gw *gateway) createItem(it *canvas.Item) {
	gen := gw.generation
	zoneID := gw.zoneID
	go func() {
		ctx := context.Background()
		number, err := gw.client.NextNumber(ctx, zoneID, it.TypeKey)
		if err != nil {
			gw.post(gen, func(g *EditorGame) {
				g.toasts.Error(fmt.Sprintf("Could not number new %s: %v", it.TypeKey, err))
			})
			return
		}
		it.Number = number
		id, err := gw.client.CreateFurniture(ctx, api.CreateFurnitureRequest{
			ZoneID:        zoneID,
			FurnitureType: it.TypeKey,
			Number:        it.Number,
			Capacity:      it.Capacity,
			PositionX:     it.Position.X,
			PositionY:     it.Position.Y,
			Rotation:      it.Rotation,
			Width:         it.Width,
			Height:        it.Height,
		})
		if err != nil {
			gw.post(gen, func(g *EditorGame) {
				g.toasts.Error(fmt.Sprintf("Create failed: %v", err))
			})
			return
		}
		it.ID = id
		gw.post(gen, func(g *EditorGame) {
			g.board.Add(it)
			g.sel.SelectSingle(it.ID, false)
			g.notifyItemCount()
		})
	}()
}

// deleteItems removes the items server-side first and only then from
// the board, so a rejected delete never loses local state.
func (gw *gateway) deleteItems(ids []int64) {
	gen := gw.generation
	go func() {
		err := gw.client.BatchDelete(context.Background(), ids)
		gw.post(gen, func(g *EditorGame) {
			if err != nil {
				g.toasts.Error(fmt.Sprintf("Delete failed: %v", err))
				return
			}
			g.board.Remove(ids...)
			g.sel.Prune()
			g.notifyItemCount()
			log.Printf("deleted %d item(s)", len(ids))
		})
	}()
}

// updateProperty persists a single property edit. The caller already
// applied the new value locally; undo restores it on failure.
func (gw *gateway) updateProperty(id int64, name string, value any, undo func(*EditorGame)) {
	gen := gw.generation
	go func() {
		err := gw.client.UpdateProperty(context.Background(), id, name, value)
		if err == nil {
			return
		}
		gw.post(gen, func(g *EditorGame) {
			if undo != nil {
				undo(g)
			}
			g.toasts.Error(fmt.Sprintf("Saving %s failed: %v", name, err))
		})
	}()
}

// updateRotation persists a rotation edit through the single-position
// endpoint, which carries rotation alongside the coordinates.
func (gw *gateway) updateRotation(it *canvas.Item, previous float64) {
	gen := gw.generation
	id := it.ID
	x, y, rot := it.Position.X, it.Position.Y, it.Rotation
	go func() {
		err := gw.client.UpdatePosition(context.Background(), id, x, y, rot)
		if err == nil {
			return
		}
		gw.post(gen, func(g *EditorGame) {
			if cur := g.board.ItemByID(id); cur != nil {
				cur.Rotation = previous
			}
			g.toasts.Error(fmt.Sprintf("Saving rotation failed: %v", err))
		})
	}()
}

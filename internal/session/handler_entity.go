package session

import (
	"errors"
	"log/slog"

	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/world"
)

// handleAddEntity spawns a remote entity. A spawn for a still-alive id is
// a protocol violation: the server must despawn an id before reusing it.
func handleAddEntity(ctx *Context, pkt clientbound.AddEntity) error {
	e, err := ctx.View.Spawn(world.EntityID(pkt.EntityID), pkt.UUID, pkt.Kind)
	if err != nil {
		if errors.Is(err, world.ErrEntityAlive) {
			return Violationf("spawn for live entity id %d", pkt.EntityID)
		}
		return err
	}
	if err := world.Set(e, world.Position{Pos: pkt.Pos}); err != nil {
		return err
	}
	if err := world.Set(e, world.Rotation{Yaw: pkt.Yaw, Pitch: pkt.Pitch}); err != nil {
		return err
	}
	return world.Set(e, world.Velocity{Vel: pkt.Velocity})
}

func handleRemoveEntities(ctx *Context, pkt clientbound.RemoveEntities) error {
	for _, id := range pkt.EntityIDs {
		if err := ctx.View.Despawn(world.EntityID(id)); err != nil {
			// Servers occasionally remove ids the client never saw.
			slog.Debug("despawn for unknown entity", "entity", id)
		}
	}
	return nil
}

// resolveEntity looks up the target of a movement/data update. Updates for
// unknown entities are dropped: despawn and update packets race on the
// server side and the despawn wins.
func resolveEntity(ctx *Context, id int32) (world.Entity, bool) {
	e, err := ctx.View.Entity(world.EntityID(id))
	if err != nil {
		slog.Debug("update for unknown entity", "entity", id)
		return world.Entity{}, false
	}
	return e, true
}

func handleMoveEntityPos(ctx *Context, pkt clientbound.MoveEntityPos) error {
	e, ok := resolveEntity(ctx, pkt.EntityID)
	if !ok {
		return nil
	}
	if err := world.Update(e, func(p world.Position) world.Position {
		p.Pos = p.Pos.Add(pkt.Delta)
		return p
	}); err != nil {
		return err
	}
	return world.Set(e, world.OnGround{Value: pkt.OnGround})
}

func handleMoveEntityPosRot(ctx *Context, pkt clientbound.MoveEntityPosRot) error {
	e, ok := resolveEntity(ctx, pkt.EntityID)
	if !ok {
		return nil
	}
	if err := world.Update(e, func(p world.Position) world.Position {
		p.Pos = p.Pos.Add(pkt.Delta)
		return p
	}); err != nil {
		return err
	}
	if err := world.Set(e, world.Rotation{Yaw: pkt.Yaw, Pitch: pkt.Pitch}); err != nil {
		return err
	}
	return world.Set(e, world.OnGround{Value: pkt.OnGround})
}

func handleTeleportEntity(ctx *Context, pkt clientbound.TeleportEntity) error {
	e, ok := resolveEntity(ctx, pkt.EntityID)
	if !ok {
		return nil
	}
	if err := world.Set(e, world.Position{Pos: pkt.Pos}); err != nil {
		return err
	}
	if err := world.Set(e, world.Rotation{Yaw: pkt.Yaw, Pitch: pkt.Pitch}); err != nil {
		return err
	}
	return world.Set(e, world.OnGround{Value: pkt.OnGround})
}

func handleSetEntityMotion(ctx *Context, pkt clientbound.SetEntityMotion) error {
	e, ok := resolveEntity(ctx, pkt.EntityID)
	if !ok {
		return nil
	}
	return world.Set(e, world.Velocity{Vel: pkt.Velocity})
}

func handleSetEntityData(ctx *Context, pkt clientbound.SetEntityData) error {
	e, ok := resolveEntity(ctx, pkt.EntityID)
	if !ok {
		return nil
	}
	meta, err := world.Get[world.Metadata](e)
	if err != nil {
		meta = world.Metadata{Values: make(map[uint8][]byte)}
	}
	for k, v := range pkt.Values {
		meta.Values[k] = v
	}
	return world.Set(e, meta)
}

func handleSetEquipment(ctx *Context, pkt clientbound.SetEquipment) error {
	e, ok := resolveEntity(ctx, pkt.EntityID)
	if !ok {
		return nil
	}
	eq, err := world.Get[world.Equipment](e)
	if err != nil {
		eq = world.Equipment{Slots: make(map[uint8]model.ItemStack)}
	}
	for slot, item := range pkt.Slots {
		eq.Slots[slot] = model.ItemStack{ItemID: item.ItemID, Count: item.Count}
	}
	return world.Set(e, eq)
}

package session

import (
	"fmt"
	"log/slog"

	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
	"github.com/tundrabyte/craftlink/internal/world"
)

// handlePlayLogin allocates the local player from the join packet. The
// world was reset when the session entered Play; a repeated login packet
// is a world change and rebuilds it from scratch.
func handlePlayLogin(ctx *Context, pkt clientbound.Login) error {
	_, err := ctx.View.InitLocal(
		world.EntityID(pkt.EntityID),
		ctx.s.opts.Profile,
		pkt.GameMode,
		pkt.Hardcore,
		pkt.ViewDistance,
	)
	if err != nil {
		return Fatalf("allocating local player %d: %v", pkt.EntityID, err)
	}
	slog.Info("joined world",
		"entity", pkt.EntityID,
		"mode", pkt.GameMode,
		"view_distance", pkt.ViewDistance)
	return nil
}

func handlePlayKeepAlive(ctx *Context, pkt clientbound.PlayKeepAlive) error {
	return ctx.Send(serverbound.PlayKeepAlive{ID: pkt.ID})
}

func handlePlayPing(ctx *Context, pkt clientbound.PlayPing) error {
	return ctx.Send(serverbound.PlayPong{ID: pkt.ID})
}

func handlePlayDisconnect(ctx *Context, pkt clientbound.PlayDisconnect) error {
	ctx.Disconnect(KindNone, fmt.Errorf("disconnected by server: %s", pkt.Reason))
	return nil
}

// handlePlayerPosition applies a server teleport to the local player and
// confirms it. Confirmation is urgent: the server freezes the player until
// it arrives.
func handlePlayerPosition(ctx *Context, pkt clientbound.PlayerPosition) error {
	local, err := ctx.View.Local()
	if err != nil {
		return Fatalf("player position before world init: %v", err)
	}
	if err := world.Set(local, world.Position{Pos: pkt.Pos}); err != nil {
		return err
	}
	if err := world.Set(local, world.Rotation{Yaw: pkt.Yaw, Pitch: pkt.Pitch}); err != nil {
		return err
	}
	return ctx.Send(serverbound.AcceptTeleportation{TeleportID: pkt.TeleportID})
}

func handleSetHealth(ctx *Context, pkt clientbound.SetHealth) error {
	local, err := ctx.View.Local()
	if err != nil {
		return Fatalf("health update before world init: %v", err)
	}
	return world.Set(local, world.Health{
		Health:     pkt.Health,
		Food:       pkt.Food,
		Saturation: pkt.Saturation,
	})
}

func handleSetHeldSlot(ctx *Context, pkt clientbound.SetHeldSlot) error {
	lp, err := ctx.View.Player()
	if err != nil {
		return Fatalf("held slot before world init: %v", err)
	}
	if !model.ValidHotbar(pkt.Slot) {
		return Malformedf("held slot %d out of range", pkt.Slot)
	}
	lp.HeldSlot = pkt.Slot
	return nil
}

func handleContainerSetSlot(ctx *Context, pkt clientbound.ContainerSetSlot) error {
	if pkt.ContainerID != 0 {
		// Only the player inventory is modeled; other containers are a
		// consumer concern.
		return nil
	}
	lp, err := ctx.View.Player()
	if err != nil {
		return Fatalf("inventory update before world init: %v", err)
	}
	if pkt.Slot < 0 || int(pkt.Slot) >= len(lp.Inventory) {
		return Malformedf("inventory slot %d out of range", pkt.Slot)
	}
	lp.Inventory[pkt.Slot] = pkt.Item
	lp.StateID = pkt.StateID
	return nil
}

func handleContainerSetContent(ctx *Context, pkt clientbound.ContainerSetContent) error {
	if pkt.ContainerID != 0 {
		return nil
	}
	lp, err := ctx.View.Player()
	if err != nil {
		return Fatalf("inventory update before world init: %v", err)
	}
	if len(pkt.Items) > len(lp.Inventory) {
		return Malformedf("inventory content has %d slots, client models %d", len(pkt.Items), len(lp.Inventory))
	}
	for i := range lp.Inventory {
		if i < len(pkt.Items) {
			lp.Inventory[i] = pkt.Items[i]
		} else {
			lp.Inventory[i] = model.ItemStack{}
		}
	}
	lp.Carried = pkt.Carried
	lp.StateID = pkt.StateID
	return nil
}

package main

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
	"github.com/tundrabyte/craftlink/internal/session"
	"github.com/tundrabyte/craftlink/internal/world"
)

// wanderer walks the player in a slow circle around the spawn point, just
// to keep the session visibly alive.
type wanderer struct {
	center mgl64.Vec3
	have   bool
}

func (w *wanderer) Name() string { return "wanderer" }

func (w *wanderer) Tick(ctx *session.Context) error {
	local, err := ctx.View.Local()
	if errors.Is(err, world.ErrNotInWorld) {
		return nil
	}
	if err != nil {
		return err
	}
	pos, err := world.Get[world.Position](local)
	if err != nil {
		return err
	}
	if !w.have {
		w.center = pos.Pos
		w.have = true
	}

	angle := float64(ctx.Tick) / 100 * 2 * math.Pi
	next := w.center.Add(mgl64.Vec3{3 * math.Cos(angle), 0, 3 * math.Sin(angle)})
	if err := world.Set(local, world.Position{Pos: next}); err != nil {
		return err
	}
	return ctx.Send(serverbound.MovePlayerPos{Pos: next, OnGround: true})
}

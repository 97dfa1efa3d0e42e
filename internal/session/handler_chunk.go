package session

import (
	"errors"
	"log/slog"

	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/world"
)

// handleLevelChunk builds the chunk column from the decoded payload and
// loads it atomically: the world never exposes a half-populated chunk.
func handleLevelChunk(ctx *Context, pkt clientbound.LevelChunkWithLight) error {
	height := int32(len(pkt.Sections)) * 16
	c, err := world.NewChunk(pkt.Pos, pkt.MinY, height)
	if err != nil {
		return Malformedf("chunk %v: %v", pkt.Pos, err)
	}
	for i, sec := range pkt.Sections {
		if err := c.FillSection(i, sec.BlockStates); err != nil {
			return Malformedf("chunk %v section %d: %v", pkt.Pos, i, err)
		}
	}
	c.SetPayloads(pkt.Biomes, pkt.LightData)
	return ctx.View.LoadChunk(c)
}

func handleForgetChunk(ctx *Context, pkt clientbound.ForgetLevelChunk) error {
	ok, err := ctx.View.UnloadChunk(pkt.Pos)
	if err != nil {
		return err
	}
	if !ok {
		slog.Debug("unload for chunk not in cache", "chunk", pkt.Pos)
	}
	return nil
}

func handleBlockUpdate(ctx *Context, pkt clientbound.BlockUpdate) error {
	return applyBlockDelta(ctx, pkt)
}

// handleSectionBlocksUpdate applies a multi-block delta. The batch is
// validated up front so a bad entry rejects the whole packet with no
// earlier entries committed.
func handleSectionBlocksUpdate(ctx *Context, pkt clientbound.SectionBlocksUpdate) error {
	for _, upd := range pkt.Updates {
		_, err := ctx.View.BlockState(upd.Pos)
		if err != nil && !errors.Is(err, world.ErrChunkNotLoaded) {
			return Malformedf("section blocks update at %v: %v", upd.Pos, err)
		}
	}
	for _, upd := range pkt.Updates {
		if err := applyBlockDelta(ctx, upd); err != nil {
			return err
		}
	}
	return nil
}

// applyBlockDelta drops deltas for unloaded chunks: the server streams
// block updates and unloads concurrently, and the unload wins.
func applyBlockDelta(ctx *Context, upd clientbound.BlockUpdate) error {
	err := ctx.View.SetBlockState(upd.Pos, upd.BlockState)
	if errors.Is(err, world.ErrChunkNotLoaded) {
		slog.Debug("block update outside loaded chunks", "pos", upd.Pos)
		return nil
	}
	return err
}

func handleChunkCacheCenter(ctx *Context, pkt clientbound.SetChunkCacheCenter) error {
	return ctx.View.SetChunkCenter(pkt.Pos)
}

func handleChunkCacheRadius(ctx *Context, pkt clientbound.SetChunkCacheRadius) error {
	if pkt.Radius <= 0 {
		return Malformedf("chunk cache radius %d", pkt.Radius)
	}
	return ctx.View.SetChunkRadius(pkt.Radius)
}

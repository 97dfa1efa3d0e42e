package world

import "github.com/tundrabyte/craftlink/internal/model"

func testProfile(name string) model.GameProfile {
	return model.OfflineProfile(name)
}

func mustChunk(pos model.ChunkPos, minY, height int32) *Chunk {
	c, err := NewChunk(pos, minY, height)
	if err != nil {
		panic(err)
	}
	return c
}

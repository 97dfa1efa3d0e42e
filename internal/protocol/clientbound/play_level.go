package clientbound

import (
	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Play phase packet IDs (terrain synchronization).
const (
	IDBlockUpdate         protocol.ID = 0x09
	IDForgetLevelChunk    protocol.ID = 0x1F
	IDLevelChunkWithLight protocol.ID = 0x25
	IDSectionBlocksUpdate protocol.ID = 0x47
	IDSetChunkCacheCenter protocol.ID = 0x54
	IDSetChunkCacheRadius protocol.ID = 0x55
)

// ChunkSection is the decoded block payload of one 16x16x16 section,
// already unpacked from its palette by the codec. Block states are indexed
// [y*256 + z*16 + x].
type ChunkSection struct {
	BlockStates []int32
}

// LevelChunkWithLight loads or replaces a full chunk column.
type LevelChunkWithLight struct {
	Pos      model.ChunkPos
	MinY     int32
	Sections []ChunkSection
	// Biomes and LightData are opaque payloads the core stores untouched.
	Biomes    []byte
	LightData []byte
}

func (LevelChunkWithLight) PacketID() protocol.ID { return IDLevelChunkWithLight }

// ForgetLevelChunk evicts a chunk column from the client cache.
type ForgetLevelChunk struct {
	Pos model.ChunkPos
}

func (ForgetLevelChunk) PacketID() protocol.ID { return IDForgetLevelChunk }

// BlockUpdate changes a single block.
type BlockUpdate struct {
	Pos        model.BlockPos
	BlockState int32
}

func (BlockUpdate) PacketID() protocol.ID { return IDBlockUpdate }

// SectionBlocksUpdate changes several blocks within one section.
type SectionBlocksUpdate struct {
	Updates []BlockUpdate
}

func (SectionBlocksUpdate) PacketID() protocol.ID { return IDSectionBlocksUpdate }

// SetChunkCacheCenter recenters the chunk cache on the local player's
// chunk; columns outside the radius around it are evicted.
type SetChunkCacheCenter struct {
	Pos model.ChunkPos
}

func (SetChunkCacheCenter) PacketID() protocol.ID { return IDSetChunkCacheCenter }

// SetChunkCacheRadius changes the server-authoritative view distance.
type SetChunkCacheRadius struct {
	Radius int32
}

func (SetChunkCacheRadius) PacketID() protocol.ID { return IDSetChunkCacheRadius }

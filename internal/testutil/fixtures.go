package testutil

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
)

// JoinSequence is the minimal clientbound packet sequence that takes a
// fresh session from Login to Play with local entity id 1.
func JoinSequence(profile model.GameProfile) []protocol.Packet {
	return []protocol.Packet{
		clientbound.GameProfile{ID: profile.ID, Name: profile.Name},
		clientbound.FinishConfiguration{},
		clientbound.Login{
			EntityID:     1,
			GameMode:     model.GameModeSurvival,
			ViewDistance: 8,
			WorldHeight:  384,
			MinY:         -64,
		},
	}
}

// SpawnEntity builds an AddEntity packet with a fixed UUID derived from
// the id, so replayed sequences stay content-identical.
func SpawnEntity(id int32, pos mgl64.Vec3) clientbound.AddEntity {
	return clientbound.AddEntity{
		EntityID: id,
		UUID:     uuid.NewMD5(uuid.Nil, []byte{byte(id), byte(id >> 8), byte(id >> 16), byte(id >> 24)}),
		Kind:     1,
		Pos:      pos,
	}
}

// FlatChunk builds a chunk-load packet whose bottom section is filled
// with the given block state.
func FlatChunk(pos model.ChunkPos, state int32) clientbound.LevelChunkWithLight {
	const perSection = 16 * 16 * 16
	bottom := make([]int32, perSection)
	for i := range bottom {
		bottom[i] = state
	}
	sections := make([]clientbound.ChunkSection, 4)
	sections[0] = clientbound.ChunkSection{BlockStates: bottom}
	return clientbound.LevelChunkWithLight{
		Pos:      pos,
		MinY:     0,
		Sections: sections,
	}
}

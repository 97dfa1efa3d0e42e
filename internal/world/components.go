package world

import (
	"maps"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tundrabyte/craftlink/internal/model"
)

// Components attached to entities by the built-in packet handlers.
// Consumers may define and attach their own component types; anything
// comparable by reflect.DeepEqual works with snapshots.

// Position is an entity's absolute position.
type Position struct {
	Pos mgl64.Vec3
}

// Rotation is an entity's look direction in degrees.
type Rotation struct {
	Yaw, Pitch float32
}

// Velocity is an entity's motion vector in blocks per tick.
type Velocity struct {
	Vel mgl64.Vec3
}

// Health mirrors the server's health/food state. Only the local player
// receives authoritative updates; other entities carry it when metadata
// exposes it.
type Health struct {
	Health     float32
	Food       int32
	Saturation float32
}

// OnGround mirrors the entity's on-ground flag from movement packets.
type OnGround struct {
	Value bool
}

// Metadata holds raw entity metadata entries indexed by their slot.
type Metadata struct {
	Values map[uint8][]byte
}

func (m Metadata) cloneComponent() any {
	cp := Metadata{Values: maps.Clone(m.Values)}
	for k, v := range cp.Values {
		cp.Values[k] = slices.Clone(v)
	}
	return cp
}

// Equipment holds equipped item stacks indexed by equipment slot.
type Equipment struct {
	Slots map[uint8]model.ItemStack
}

func (e Equipment) cloneComponent() any {
	return Equipment{Slots: maps.Clone(e.Slots)}
}

// Local marks the local player entity.
type Local struct{}

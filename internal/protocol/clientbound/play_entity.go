package clientbound

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Play phase packet IDs (entity synchronization).
const (
	IDAddEntity        protocol.ID = 0x01
	IDMoveEntityPos    protocol.ID = 0x2C
	IDMoveEntityPosRot protocol.ID = 0x2D
	IDRemoveEntities   protocol.ID = 0x40
	IDSetEntityData    protocol.ID = 0x52
	IDSetEntityMotion  protocol.ID = 0x5A
	IDSetEquipment     protocol.ID = 0x5C
	IDTeleportEntity   protocol.ID = 0x6D
)

// AddEntity spawns an entity into the client's view.
type AddEntity struct {
	EntityID int32
	UUID     uuid.UUID
	Kind     int32
	Pos      mgl64.Vec3
	Yaw      float32
	Pitch    float32
	Velocity mgl64.Vec3
}

func (AddEntity) PacketID() protocol.ID { return IDAddEntity }

// MoveEntityPos moves an entity by a relative delta.
type MoveEntityPos struct {
	EntityID int32
	Delta    mgl64.Vec3
	OnGround bool
}

func (MoveEntityPos) PacketID() protocol.ID { return IDMoveEntityPos }

// MoveEntityPosRot moves and rotates an entity.
type MoveEntityPosRot struct {
	EntityID int32
	Delta    mgl64.Vec3
	Yaw      float32
	Pitch    float32
	OnGround bool
}

func (MoveEntityPosRot) PacketID() protocol.ID { return IDMoveEntityPosRot }

// RemoveEntities despawns entities. Their ids may be reused by the server
// afterwards.
type RemoveEntities struct {
	EntityIDs []int32
}

func (RemoveEntities) PacketID() protocol.ID { return IDRemoveEntities }

// SetEntityData updates metadata entries on an entity. Values are opaque
// to the core and stored indexed by their metadata slot.
type SetEntityData struct {
	EntityID int32
	Values   map[uint8][]byte
}

func (SetEntityData) PacketID() protocol.ID { return IDSetEntityData }

// SetEntityMotion replaces an entity's velocity.
type SetEntityMotion struct {
	EntityID int32
	Velocity mgl64.Vec3
}

func (SetEntityMotion) PacketID() protocol.ID { return IDSetEntityMotion }

// SetEquipment replaces equipment slots on an entity.
type SetEquipment struct {
	EntityID int32
	Slots    map[uint8]EquipmentItem
}

// EquipmentItem mirrors an equipped item stack.
type EquipmentItem struct {
	ItemID int32
	Count  int32
}

func (SetEquipment) PacketID() protocol.ID { return IDSetEquipment }

// TeleportEntity sets an entity's absolute position and rotation.
type TeleportEntity struct {
	EntityID int32
	Pos      mgl64.Vec3
	Yaw      float32
	Pitch    float32
	OnGround bool
}

func (TeleportEntity) PacketID() protocol.ID { return IDTeleportEntity }

package clientbound

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Play phase packet IDs (local player, inventory, chat, lifecycle).
const (
	IDContainerSetContent protocol.ID = 0x13
	IDContainerSetSlot    protocol.ID = 0x15
	IDPlayDisconnect      protocol.ID = 0x1D
	IDGameEvent           protocol.ID = 0x20
	IDPlayKeepAlive       protocol.ID = 0x24
	IDLogin               protocol.ID = 0x2B
	IDPlayPing            protocol.ID = 0x32
	IDPlayerChat          protocol.ID = 0x39
	IDPlayerPosition      protocol.ID = 0x3E
	IDSetHeldSlot         protocol.ID = 0x51
	IDSetHealth           protocol.ID = 0x5B
	IDSystemChat          protocol.ID = 0x69
)

// Login (often called "join game") starts the Play phase proper: it
// assigns the local player's entity id and world parameters.
type Login struct {
	EntityID     int32
	Hardcore     bool
	GameMode     model.GameMode
	ViewDistance int32
	WorldHeight  int32
	MinY         int32
}

func (Login) PacketID() protocol.ID { return IDLogin }

// PlayerPosition teleports the local player; the client must confirm with
// an AcceptTeleportation carrying the same id.
type PlayerPosition struct {
	Pos        mgl64.Vec3
	Yaw        float32
	Pitch      float32
	TeleportID int32
}

func (PlayerPosition) PacketID() protocol.ID { return IDPlayerPosition }

// SetHealth updates the local player's health and food.
type SetHealth struct {
	Health     float32
	Food       int32
	Saturation float32
}

func (SetHealth) PacketID() protocol.ID { return IDSetHealth }

// SetHeldSlot is the server forcing a hotbar slot selection.
type SetHeldSlot struct {
	Slot int32
}

func (SetHeldSlot) PacketID() protocol.ID { return IDSetHeldSlot }

// ContainerSetSlot replaces one slot in a container. Container id 0 is the
// player inventory.
type ContainerSetSlot struct {
	ContainerID int32
	StateID     int32
	Slot        int32
	Item        model.ItemStack
}

func (ContainerSetSlot) PacketID() protocol.ID { return IDContainerSetSlot }

// ContainerSetContent replaces a container's full contents.
type ContainerSetContent struct {
	ContainerID int32
	StateID     int32
	Items       []model.ItemStack
	Carried     model.ItemStack
}

func (ContainerSetContent) PacketID() protocol.ID { return IDContainerSetContent }

// PlayKeepAlive must be echoed back before the server's timeout.
type PlayKeepAlive struct {
	ID int64
}

func (PlayKeepAlive) PacketID() protocol.ID { return IDPlayKeepAlive }

// PlayPing is answered with a pong carrying the same id.
type PlayPing struct {
	ID int32
}

func (PlayPing) PacketID() protocol.ID { return IDPlayPing }

// PlayDisconnect is a server-initiated disconnect with a reason.
type PlayDisconnect struct {
	Reason string
}

func (PlayDisconnect) PacketID() protocol.ID { return IDPlayDisconnect }

// SystemChat is a non-player chat message (server notices, command
// output).
type SystemChat struct {
	Content string
	Overlay bool
}

func (SystemChat) PacketID() protocol.ID { return IDSystemChat }

// PlayerChat is a chat message attributed to a player.
type PlayerChat struct {
	Sender  uuid.UUID
	Content string
}

func (PlayerChat) PacketID() protocol.ID { return IDPlayerChat }

// GameEvent carries miscellaneous world events (rain, game mode change).
type GameEvent struct {
	Event uint8
	Value float32
}

func (GameEvent) PacketID() protocol.ID { return IDGameEvent }

package serverbound

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Play phase packet IDs.
const (
	IDAcceptTeleportation protocol.ID = 0x00
	IDChatCommand         protocol.ID = 0x04
	IDChat                protocol.ID = 0x06
	IDPlayKeepAlive       protocol.ID = 0x15
	IDMovePlayerPos       protocol.ID = 0x1A
	IDMovePlayerPosRot    protocol.ID = 0x1B
	IDPlayPong            protocol.ID = 0x27
	IDPlayerAction        protocol.ID = 0x21
	IDSetCarriedItem      protocol.ID = 0x2F
)

// AcceptTeleportation confirms a server-initiated teleport.
type AcceptTeleportation struct {
	TeleportID int32
}

func (AcceptTeleportation) PacketID() protocol.ID { return IDAcceptTeleportation }

// Urgent: servers resend the teleport and freeze the player until the
// confirmation arrives.
func (AcceptTeleportation) Urgent() {}

// Chat sends a chat message.
type Chat struct {
	Message string
}

func (Chat) PacketID() protocol.ID { return IDChat }

// ChatCommand sends a slash command (without the slash).
type ChatCommand struct {
	Command string
}

func (ChatCommand) PacketID() protocol.ID { return IDChatCommand }

// PlayKeepAlive echoes a play-phase keep-alive.
type PlayKeepAlive struct {
	ID int64
}

func (PlayKeepAlive) PacketID() protocol.ID { return IDPlayKeepAlive }

func (PlayKeepAlive) Urgent() {}

// MovePlayerPos reports the local player's position.
type MovePlayerPos struct {
	Pos      mgl64.Vec3
	OnGround bool
}

func (MovePlayerPos) PacketID() protocol.ID { return IDMovePlayerPos }

// MovePlayerPosRot reports the local player's position and look.
type MovePlayerPosRot struct {
	Pos      mgl64.Vec3
	Yaw      float32
	Pitch    float32
	OnGround bool
}

func (MovePlayerPosRot) PacketID() protocol.ID { return IDMovePlayerPosRot }

// PlayPong answers a play-phase ping.
type PlayPong struct {
	ID int32
}

func (PlayPong) PacketID() protocol.ID { return IDPlayPong }

func (PlayPong) Urgent() {}

// PlayerAction reports digging and similar block actions.
type PlayerAction struct {
	Action int32
	X      int32
	Y      int32
	Z      int32
	Face   int32
}

func (PlayerAction) PacketID() protocol.ID { return IDPlayerAction }

// SetCarriedItem selects a hotbar slot.
type SetCarriedItem struct {
	Slot int32
}

func (SetCarriedItem) PacketID() protocol.ID { return IDSetCarriedItem }

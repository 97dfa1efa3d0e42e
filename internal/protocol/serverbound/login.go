package serverbound

import (
	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Status and login phase packet IDs.
const (
	IDStatusRequest     protocol.ID = 0x00
	IDPingRequest       protocol.ID = 0x01
	IDHello             protocol.ID = 0x00
	IDKey               protocol.ID = 0x01
	IDCustomQueryAnswer protocol.ID = 0x02
	IDLoginAcknowledged protocol.ID = 0x03
)

// StatusRequest asks for the server list payload.
type StatusRequest struct{}

func (StatusRequest) PacketID() protocol.ID { return IDStatusRequest }

// PingRequest measures latency during the status flow.
type PingRequest struct {
	Time int64
}

func (PingRequest) PacketID() protocol.ID { return IDPingRequest }

// Hello starts the login flow with the desired profile.
type Hello struct {
	Name      string
	ProfileID uuid.UUID
}

func (Hello) PacketID() protocol.ID { return IDHello }

// Key answers the server's encryption request. The session core passes the
// transport-produced key material through unchanged.
type Key struct {
	KeyBytes           []byte
	EncryptedChallenge []byte
}

func (Key) PacketID() protocol.ID { return IDKey }

// CustomQueryAnswer responds to a login plugin query. A nil Data means the
// client does not understand the query.
type CustomQueryAnswer struct {
	TransactionID int32
	Data          []byte
}

func (CustomQueryAnswer) PacketID() protocol.ID { return IDCustomQueryAnswer }

// LoginAcknowledged confirms the game profile and moves the connection
// into the Configuration phase.
type LoginAcknowledged struct{}

func (LoginAcknowledged) PacketID() protocol.ID { return IDLoginAcknowledged }

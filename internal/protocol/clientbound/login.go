// Package clientbound defines the decoded server-to-client packet types
// the session core consumes. Field layouts follow the Java-edition
// protocol; byte-level decoding belongs to the transport.
package clientbound

import (
	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Login phase packet IDs.
const (
	IDLoginDisconnect   protocol.ID = 0x00
	IDHello             protocol.ID = 0x01
	IDGameProfile       protocol.ID = 0x02
	IDLoginCompression  protocol.ID = 0x03
	IDCustomQuery       protocol.ID = 0x04
)

// LoginDisconnect terminates the connection during login.
type LoginDisconnect struct {
	Reason string
}

func (LoginDisconnect) PacketID() protocol.ID { return IDLoginDisconnect }

// Hello is the server's encryption request. The session core treats the
// key material as opaque and forwards it to the transport, which owns the
// wire cipher.
type Hello struct {
	ServerID  string
	PublicKey []byte
	Challenge []byte
}

func (Hello) PacketID() protocol.ID { return IDHello }

// GameProfile confirms a successful login and carries the authenticated
// identity. Receiving it moves the session toward Configuration.
type GameProfile struct {
	ID   uuid.UUID
	Name string
}

func (GameProfile) PacketID() protocol.ID { return IDGameProfile }

// LoginCompression sets the packet compression threshold. Negative
// disables compression. The value is opaque to the core and re-exposed to
// the transport.
type LoginCompression struct {
	Threshold int32
}

func (LoginCompression) PacketID() protocol.ID { return IDLoginCompression }

// CustomQuery is a server-initiated plugin query during login. Vanilla
// clients answer every query with an empty payload.
type CustomQuery struct {
	TransactionID int32
	Identifier    string
	Data          []byte
}

func (CustomQuery) PacketID() protocol.ID { return IDCustomQuery }

// Package serverbound defines the client-to-server packet types the
// session core emits through the outbound queue.
package serverbound

import "github.com/tundrabyte/craftlink/internal/protocol"

// Handshake phase packet IDs.
const (
	IDIntention protocol.ID = 0x00
)

// Intention targets.
const (
	IntentStatus int32 = 1
	IntentLogin  int32 = 2
)

// Intention opens the connection and declares which phase the client
// wants: status for a server list ping, login to join.
type Intention struct {
	ProtocolVersion int32
	Hostname        string
	Port            uint16
	Intent          int32
}

func (Intention) PacketID() protocol.ID { return IDIntention }

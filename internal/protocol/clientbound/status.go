package clientbound

import "github.com/tundrabyte/craftlink/internal/protocol"

// Status phase packet IDs.
const (
	IDStatusResponse protocol.ID = 0x00
	IDPongResponse   protocol.ID = 0x01
)

// StatusResponse carries the server list JSON payload.
type StatusResponse struct {
	Payload string
}

func (StatusResponse) PacketID() protocol.ID { return IDStatusResponse }

// PongResponse echoes the timestamp from a ping request.
type PongResponse struct {
	Time int64
}

func (PongResponse) PacketID() protocol.ID { return IDPongResponse }

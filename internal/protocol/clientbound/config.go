package clientbound

import "github.com/tundrabyte/craftlink/internal/protocol"

// Configuration phase packet IDs.
const (
	IDConfigDisconnect      protocol.ID = 0x02
	IDFinishConfiguration   protocol.ID = 0x03
	IDConfigKeepAlive       protocol.ID = 0x04
	IDConfigPing            protocol.ID = 0x05
	IDRegistryData          protocol.ID = 0x07
	IDUpdateTags            protocol.ID = 0x0D
)

// ConfigDisconnect terminates the connection during configuration.
type ConfigDisconnect struct {
	Reason string
}

func (ConfigDisconnect) PacketID() protocol.ID { return IDConfigDisconnect }

// FinishConfiguration signals the end of the configuration phase. The
// client acknowledges it and enters Play.
type FinishConfiguration struct{}

func (FinishConfiguration) PacketID() protocol.ID { return IDFinishConfiguration }

// ConfigKeepAlive must be answered promptly or the server drops the
// connection.
type ConfigKeepAlive struct {
	ID int64
}

func (ConfigKeepAlive) PacketID() protocol.ID { return IDConfigKeepAlive }

// ConfigPing is answered with a pong carrying the same id.
type ConfigPing struct {
	ID int32
}

func (ConfigPing) PacketID() protocol.ID { return IDConfigPing }

// RegistryData carries one registry's serialized contents. The core keeps
// the payload opaque; consumers that need registry values decode it
// themselves.
type RegistryData struct {
	Registry string
	Data     []byte
}

func (RegistryData) PacketID() protocol.ID { return IDRegistryData }

// UpdateTags carries block/item/fluid tag tables, kept opaque.
type UpdateTags struct {
	Data []byte
}

func (UpdateTags) PacketID() protocol.ID { return IDUpdateTags }

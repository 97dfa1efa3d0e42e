package serverbound

import "github.com/tundrabyte/craftlink/internal/protocol"

// Configuration phase packet IDs.
const (
	IDClientInformation       protocol.ID = 0x00
	IDCustomPayload           protocol.ID = 0x02
	IDFinishConfigurationAck  protocol.ID = 0x03
	IDConfigKeepAlive         protocol.ID = 0x04
	IDConfigPong              protocol.ID = 0x05
)

// ClientInformation tells the server about client settings.
type ClientInformation struct {
	Locale       string
	ViewDistance int32
	ChatVisible  bool
	MainHand     int32
}

func (ClientInformation) PacketID() protocol.ID { return IDClientInformation }

// CustomPayload carries a plugin channel message. The brand channel
// ("minecraft:brand") is sent on entering Configuration.
type CustomPayload struct {
	Identifier string
	Data       []byte
}

func (CustomPayload) PacketID() protocol.ID { return IDCustomPayload }

// FinishConfigurationAck acknowledges the end of configuration; the
// connection enters Play.
type FinishConfigurationAck struct{}

func (FinishConfigurationAck) PacketID() protocol.ID { return IDFinishConfigurationAck }

// ConfigKeepAlive echoes a configuration-phase keep-alive.
type ConfigKeepAlive struct {
	ID int64
}

func (ConfigKeepAlive) PacketID() protocol.ID { return IDConfigKeepAlive }

// Urgent: must beat the server keep-alive deadline.
func (ConfigKeepAlive) Urgent() {}

// ConfigPong answers a configuration-phase ping.
type ConfigPong struct {
	ID int32
}

func (ConfigPong) PacketID() protocol.ID { return IDConfigPong }

func (ConfigPong) Urgent() {}

// Package protocol defines the phase state machine and the typed packet
// contract shared between the session core and the external transport.
//
// The byte-level codec (framing, compression, encryption) is not part of
// this module: the transport hands the session fully-decoded packet values
// in arrival order and accepts typed packets to encode and send.
package protocol

// ID identifies a packet type within one protocol phase and direction.
// IDs are only unique per (phase, direction); the dispatcher always keys
// on the pair.
type ID int32

// Packet is a decoded unit of protocol communication.
type Packet interface {
	// PacketID returns the packet's wire identifier within its phase.
	PacketID() ID
}

// Urgent marks serverbound packets that must be flushed to the transport
// immediately on enqueue instead of at end-of-tick. Keep-alive responses
// fall in this class: the server disconnects clients whose responses
// arrive later than its timeout, regardless of the client's tick cadence.
type Urgent interface {
	Packet
	Urgent()
}

// Package testutil provides fakes and fixtures shared by the package
// tests: an in-memory transport and canned packet sequences for the
// join flow.
package testutil

import (
	"sync"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

// FakeTransport is an in-memory Transport: tests deliver clientbound
// packets with Deliver and inspect what the session sent with Sent.
type FakeTransport struct {
	in chan protocol.Packet

	mu          sync.Mutex
	sent        []protocol.Packet
	closed      bool
	inClosed    bool
	compression int32
	encrypted   bool
	sendErr     error
}

// NewFakeTransport returns a transport with a generously buffered inbound
// channel so tests never block on delivery.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{in: make(chan protocol.Packet, 1024), compression: -1}
}

func (t *FakeTransport) Inbound() <-chan protocol.Packet { return t.in }

func (t *FakeTransport) Send(pkts ...protocol.Packet) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sendErr != nil {
		return t.sendErr
	}
	t.sent = append(t.sent, pkts...)
	return nil
}

func (t *FakeTransport) SetCompressionThreshold(threshold int32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.compression = threshold
}

func (t *FakeTransport) EnableEncryption(secret []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.encrypted = true
	return nil
}

func (t *FakeTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.closeInboundLocked()
	return nil
}

// Deliver queues clientbound packets on the inbound channel.
func (t *FakeTransport) Deliver(pkts ...protocol.Packet) {
	for _, pkt := range pkts {
		t.in <- pkt
	}
}

// CloseInbound simulates the connection dying.
func (t *FakeTransport) CloseInbound() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeInboundLocked()
}

func (t *FakeTransport) closeInboundLocked() {
	if !t.inClosed {
		t.inClosed = true
		close(t.in)
	}
}

// FailSends makes every subsequent Send return err.
func (t *FakeTransport) FailSends(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sendErr = err
}

// Sent returns a copy of everything sent so far.
func (t *FakeTransport) Sent() []protocol.Packet {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]protocol.Packet(nil), t.sent...)
}

// SentSince returns packets sent after the first n.
func (t *FakeTransport) SentSince(n int) []protocol.Packet {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n > len(t.sent) {
		return nil
	}
	return append([]protocol.Packet(nil), t.sent[n:]...)
}

// Closed reports whether the session closed the transport.
func (t *FakeTransport) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// CompressionThreshold returns the negotiated threshold (-1 if unset).
func (t *FakeTransport) CompressionThreshold() int32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.compression
}

// Encrypted reports whether encryption was enabled.
func (t *FakeTransport) Encrypted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.encrypted
}

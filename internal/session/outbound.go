package session

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Outbound collects packets produced during dispatch and ticks and hands
// them to the transport in FIFO order at end-of-tick. Packets implementing
// protocol.Urgent skip the queue and go out immediately, because the
// server enforces wall-clock deadlines on them.
type Outbound struct {
	transport Transport
	seq       *atomic.Uint64

	mu     sync.Mutex
	queue  []protocol.Packet
	closed bool
}

func newOutbound(t Transport, seq *atomic.Uint64) *Outbound {
	return &Outbound{transport: t, seq: seq}
}

// Enqueue queues packets for the end-of-tick flush, sending urgent ones
// right away. Order within the queue is strictly the enqueue order.
func (o *Outbound) Enqueue(pkts ...protocol.Packet) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrSessionClosed
	}
	for _, pkt := range pkts {
		if _, urgent := pkt.(protocol.Urgent); urgent {
			o.seq.Add(1)
			if err := o.transport.Send(pkt); err != nil {
				return &Error{Kind: KindTransportFailure, Err: fmt.Errorf("sending urgent packet 0x%02X: %w", pkt.PacketID(), err)}
			}
			continue
		}
		o.queue = append(o.queue, pkt)
	}
	return nil
}

// Flush sends all queued packets in order.
func (o *Outbound) Flush() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.flushLocked()
}

func (o *Outbound) flushLocked() error {
	if len(o.queue) == 0 {
		return nil
	}
	pkts := o.queue
	o.queue = nil
	o.seq.Add(uint64(len(pkts)))
	if err := o.transport.Send(pkts...); err != nil {
		return &Error{Kind: KindTransportFailure, Err: fmt.Errorf("flushing %d outbound packets: %w", len(pkts), err)}
	}
	return nil
}

// Drain performs the final flush and closes the queue; later Enqueue calls
// fail with ErrSessionClosed.
func (o *Outbound) Drain() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	err := o.flushLocked()
	o.closed = true
	return err
}

// Len returns the number of queued (non-urgent, unflushed) packets.
func (o *Outbound) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.queue)
}

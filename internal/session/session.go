// Package session owns the protocol phase state machine and the
// world-synchronization loop: it gates and dispatches decoded packets into
// world mutations, drives consumer systems on a fixed tick cadence, and
// queues outgoing packets back to the transport.
//
// Concurrency model: one goroutine (Run) owns the world. The transport
// delivers decoded packets on a channel, which doubles as the ordered
// holding buffer; packets arriving while a tick executes wait there and
// are applied at the start of the next tick, so packet dispatch and system
// execution never overlap.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
	"github.com/tundrabyte/craftlink/internal/world"
)

const (
	defaultTickInterval    = 50 * time.Millisecond
	defaultProtocolVersion = 767
	defaultBrand           = "vanilla"
	defaultLocale          = "en_us"
	defaultViewDistance    = 8
)

// Intent selects which flow the session opens with.
type Intent int

const (
	IntentLogin Intent = iota // join the server
	IntentStatus              // server list ping, then disconnect
)

// Transport is the external codec boundary. Inbound must always return
// the same channel, carrying decoded packets in arrival order; the channel
// closing means the connection died. Send encodes and writes packets in
// the order given.
type Transport interface {
	Inbound() <-chan protocol.Packet
	Send(pkts ...protocol.Packet) error
	SetCompressionThreshold(threshold int32)
	EnableEncryption(secret []byte) error
	Close() error
}

// KeyExchangeFunc answers an encryption request. It receives the server's
// public key and challenge and returns the wire-ready key response plus
// the shared secret to hand the transport. The core never interprets any
// of these bytes.
type KeyExchangeFunc func(publicKey, challenge []byte) (keyBytes, encryptedChallenge, secret []byte, err error)

// Options configures a session.
type Options struct {
	Profile         model.GameProfile
	ServerHost      string
	ServerPort      uint16
	Intent          Intent
	ProtocolVersion int32
	Brand           string
	Locale          string
	ViewDistance    int32
	TickInterval    time.Duration
	KeyExchange     KeyExchangeFunc // nil means encryption is unsupported
}

func (o *Options) withDefaults() {
	if o.ProtocolVersion == 0 {
		o.ProtocolVersion = defaultProtocolVersion
	}
	if o.Brand == "" {
		o.Brand = defaultBrand
	}
	if o.Locale == "" {
		o.Locale = defaultLocale
	}
	if o.ViewDistance <= 0 {
		o.ViewDistance = defaultViewDistance
	}
	if o.TickInterval <= 0 {
		o.TickInterval = defaultTickInterval
	}
}

// PhaseChange is delivered to phase observers on every transition.
type PhaseChange struct {
	From, To protocol.Phase
}

// DisconnectEvent is delivered exactly once when the session terminates.
// Kind is KindNone for orderly disconnects.
type DisconnectEvent struct {
	Kind   Kind
	Cause  error
	Reason string
}

// Session is one logical connection: phase state machine, dispatcher,
// scheduler and outbound queue around a single world model.
type Session struct {
	id   uuid.UUID
	opts Options

	transport  Transport
	world      *world.World
	dispatcher *Dispatcher
	scheduler  *Scheduler
	out        *Outbound

	phase atomic.Int32
	seq   atomic.Uint64
	tick  uint64

	quitCh   chan struct{}
	quitOnce sync.Once
	doneCh   chan struct{}
	downOnce sync.Once

	mu         sync.Mutex
	phaseObs   []func(PhaseChange)
	discObs    []func(DisconnectEvent)
	registries map[string][]byte
	status     string
	termErr    error
}

// New creates a session over the given transport. Built-in handlers for
// the login, configuration and play flows are registered first; consumer
// handlers registered afterwards run after them.
func New(transport Transport, opts Options) *Session {
	opts.withDefaults()
	s := &Session{
		id:         uuid.New(),
		opts:       opts,
		transport:  transport,
		world:      world.New(),
		dispatcher: newDispatcher(),
		scheduler:  newScheduler(),
		quitCh:     make(chan struct{}),
		doneCh:     make(chan struct{}),
		registries: make(map[string][]byte),
	}
	s.out = newOutbound(transport, &s.seq)
	s.phase.Store(int32(protocol.PhaseHandshake))
	s.registerBuiltins()
	return s
}

// ID returns the unique connection identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Phase returns the current protocol phase.
func (s *Session) Phase() protocol.Phase {
	return protocol.Phase(s.phase.Load())
}

// Sequence returns the number of packets handed to the transport so far.
func (s *Session) Sequence() uint64 { return s.seq.Load() }

// Profile returns the session's game profile.
func (s *Session) Profile() model.GameProfile { return s.opts.Profile }

// Snapshot returns a content-comparable copy of the world model. Call it
// between turns (e.g. from a disconnect observer or after Run returns).
func (s *Session) Snapshot() *world.Snapshot { return s.world.Snapshot() }

// Registry returns the raw payload of a registry synced during
// configuration.
func (s *Session) Registry(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.registries[name]
	return data, ok
}

// StatusPayload returns the server list JSON received during a status
// flow.
func (s *Session) StatusPayload() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.status != ""
}

// AddSystem registers a tick system under the given order key. Systems
// with equal keys run in registration order.
func (s *Session) AddSystem(order int, sys System) {
	s.scheduler.register(order, sys)
}

// OnPhaseChange registers a phase-transition observer. Observers are side
// effects only and run on the session goroutine; keep them fast.
func (s *Session) OnPhaseChange(f func(PhaseChange)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phaseObs = append(s.phaseObs, f)
}

// OnDisconnect registers a disconnect observer, fired exactly once.
func (s *Session) OnDisconnect(f func(DisconnectEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.discObs = append(s.discObs, f)
}

// Disconnect requests an orderly user-initiated disconnect. If a tick or
// dispatch is in flight it completes first.
func (s *Session) Disconnect() {
	s.quitOnce.Do(func() { close(s.quitCh) })
}

// Done is closed when the session has fully torn down.
func (s *Session) Done() <-chan struct{} { return s.doneCh }

// Run drives the session until disconnect: it opens the connection with
// the configured intent, then loops dispatching inbound packets and
// running ticks. It returns nil on orderly disconnect and the terminating
// error otherwise.
func (s *Session) Run(ctx context.Context) error {
	if err := s.begin(); err != nil {
		s.teardown(KindOf(err), err)
		return err
	}

	ticker := time.NewTicker(s.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.teardown(KindNone, fmt.Errorf("context canceled: %w", ctx.Err()))
			return ctx.Err()

		case <-s.quitCh:
			s.teardown(KindNone, errors.New("disconnect requested"))
			return nil

		case pkt, ok := <-s.transport.Inbound():
			if !ok {
				s.teardown(KindNone, errors.New("connection closed by transport"))
				return nil
			}
			if err := s.dispatch(pkt); err != nil {
				s.teardown(KindOf(err), err)
				return err
			}

		case <-ticker.C:
			if err := s.runTick(); err != nil {
				s.teardown(KindOf(err), err)
				return err
			}
		}

		if s.Phase().Terminal() {
			s.mu.Lock()
			err := s.termErr
			s.mu.Unlock()
			return err
		}
	}
}

// begin performs the handshake: the intention packet followed by either a
// status request or the login hello.
func (s *Session) begin() error {
	intent := serverbound.IntentLogin
	next := protocol.PhaseLogin
	if s.opts.Intent == IntentStatus {
		intent = serverbound.IntentStatus
		next = protocol.PhaseStatus
	}

	if err := s.out.Enqueue(serverbound.Intention{
		ProtocolVersion: s.opts.ProtocolVersion,
		Hostname:        s.opts.ServerHost,
		Port:            s.opts.ServerPort,
		Intent:          intent,
	}); err != nil {
		return fmt.Errorf("enqueuing intention: %w", err)
	}
	if err := s.setPhase(next); err != nil {
		return err
	}

	switch s.opts.Intent {
	case IntentStatus:
		if err := s.out.Enqueue(serverbound.StatusRequest{}); err != nil {
			return fmt.Errorf("enqueuing status request: %w", err)
		}
	default:
		if err := s.out.Enqueue(serverbound.Hello{
			Name:      s.opts.Profile.Name,
			ProfileID: s.opts.Profile.ID,
		}); err != nil {
			return fmt.Errorf("enqueuing hello: %w", err)
		}
	}
	if err := s.out.Flush(); err != nil {
		return err
	}
	return nil
}

// dispatch applies one packet to the world. Called only from the run
// loop, so it never overlaps a tick. Returns only terminating errors.
func (s *Session) dispatch(pkt protocol.Packet) error {
	phase := s.Phase()
	if phase.Terminal() {
		return nil
	}

	handlers, status := s.dispatcher.lookup(phase, pkt)
	switch status {
	case packetUnknown:
		slog.Debug("ignoring unknown packet",
			"id", fmt.Sprintf("0x%02X", pkt.PacketID()),
			"type", fmt.Sprintf("%T", pkt),
			"phase", phase)
		return nil
	case packetIllegal:
		return Violationf("packet %T (0x%02X) illegal in phase %s", pkt, pkt.PacketID(), phase)
	}

	v := s.world.BeginTurn()
	defer v.End()
	ctx := &Context{s: s, View: v, Tick: s.tick}

	for _, h := range handlers {
		if err := h(ctx, pkt); err != nil {
			if KindOf(err).Terminating() {
				return fmt.Errorf("handling %T: %w", pkt, err)
			}
			slog.Warn("packet handler failed",
				"packet", fmt.Sprintf("%T", pkt),
				"phase", phase,
				"err", err)
		}
		if s.Phase().Terminal() {
			break
		}
	}

	// Outside Play the negotiation flows are latency-bound, not
	// tick-bound: responses go out as soon as the packet is handled.
	if phase != protocol.PhasePlay && !s.Phase().Terminal() {
		if err := s.out.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// runTick executes one tick: buffered packets first, then systems, then
// the outbound flush. Returns only terminating errors.
func (s *Session) runTick() error {
	if s.Phase().Terminal() {
		return nil
	}
	s.tick++

	if err := s.drainInbound(); err != nil {
		return err
	}
	if s.Phase().Terminal() {
		return nil
	}

	v := s.world.BeginTurn()
	ctx := &Context{s: s, View: v, Tick: s.tick}
	err := s.scheduler.runTick(ctx)
	v.End()
	if err != nil {
		return err
	}

	if err := s.out.Flush(); err != nil {
		return err
	}
	return nil
}

// drainInbound applies every packet already buffered, without blocking.
func (s *Session) drainInbound() error {
	for {
		select {
		case pkt, ok := <-s.transport.Inbound():
			if !ok {
				s.setDisconnectedLocked(KindNone, errors.New("connection closed by transport"))
				return nil
			}
			if err := s.dispatch(pkt); err != nil {
				return err
			}
			if s.Phase().Terminal() {
				return nil
			}
		default:
			return nil
		}
	}
}

// setPhase performs a validated phase transition and fires observers.
func (s *Session) setPhase(next protocol.Phase) error {
	cur := s.Phase()
	if !cur.CanTransition(next) {
		return Violationf("illegal phase transition %s -> %s", cur, next)
	}
	s.phase.Store(int32(next))
	slog.Info("session phase changed", "session", s.id, "from", cur, "to", next)

	if next == protocol.PhasePlay {
		// One-time world initialization; the play login packet allocates
		// the local player into the fresh model.
		s.world.Teardown()
	}

	s.mu.Lock()
	obs := slices.Clone(s.phaseObs)
	s.mu.Unlock()
	for _, f := range obs {
		f(PhaseChange{From: cur, To: next})
	}

	if next == protocol.PhaseConfiguration {
		return s.enterConfiguration()
	}
	return nil
}

// enterConfiguration sends the brand payload and client information, the
// way vanilla clients announce themselves.
func (s *Session) enterConfiguration() error {
	if err := s.out.Enqueue(
		serverbound.CustomPayload{Identifier: "minecraft:brand", Data: []byte(s.opts.Brand)},
		serverbound.ClientInformation{
			Locale:       s.opts.Locale,
			ViewDistance: s.opts.ViewDistance,
			ChatVisible:  true,
		},
	); err != nil {
		return fmt.Errorf("enqueuing configuration greeting: %w", err)
	}
	return nil
}

// setDisconnectedLocked flips the phase to Disconnected and records the
// terminating error, without running teardown (the run loop does that on
// exit).
func (s *Session) setDisconnectedLocked(kind Kind, cause error) {
	cur := s.Phase()
	if cur.Terminal() {
		return
	}
	s.phase.Store(int32(protocol.PhaseDisconnected))
	s.mu.Lock()
	if kind.Terminating() {
		s.termErr = cause
	}
	obs := slices.Clone(s.phaseObs)
	s.mu.Unlock()
	for _, f := range obs {
		f(PhaseChange{From: cur, To: protocol.PhaseDisconnected})
	}
	s.teardown(kind, cause)
}

// teardown transitions to Disconnected (if not already), drains the
// outbound queue, tears down the world and fires disconnect observers
// exactly once.
func (s *Session) teardown(kind Kind, cause error) {
	s.downOnce.Do(func() {
		cur := s.Phase()
		if !cur.Terminal() {
			s.phase.Store(int32(protocol.PhaseDisconnected))
			s.mu.Lock()
			obs := slices.Clone(s.phaseObs)
			s.mu.Unlock()
			for _, f := range obs {
				f(PhaseChange{From: cur, To: protocol.PhaseDisconnected})
			}
		}

		if err := s.out.Drain(); err != nil {
			slog.Debug("draining outbound queue on disconnect", "err", err)
		}
		s.world.Teardown()
		if err := s.transport.Close(); err != nil {
			slog.Debug("closing transport", "err", err)
		}

		reason := "disconnected"
		if cause != nil {
			reason = cause.Error()
		}
		ev := DisconnectEvent{Kind: kind, Cause: cause, Reason: reason}
		slog.Info("session disconnected",
			"session", s.id,
			"kind", kind,
			"reason", reason)

		s.mu.Lock()
		obs := slices.Clone(s.discObs)
		s.mu.Unlock()
		for _, f := range obs {
			f(ev)
		}
		close(s.doneCh)
	})
}

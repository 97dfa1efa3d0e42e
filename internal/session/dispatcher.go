package session

import (
	"reflect"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

// Handler is logic bound to a (phase, packet type) pair. Handlers run in
// registration order; later handlers observe earlier handlers' mutations.
type Handler func(ctx *Context, pkt protocol.Packet) error

type dispatchKey struct {
	phase protocol.Phase
	typ   reflect.Type
}

type lookupStatus int

const (
	packetHandled lookupStatus = iota // legal, zero or more handlers
	packetUnknown                     // not in any phase's vocabulary: ignore
	packetIllegal                     // belongs to a different phase: violation
)

// Dispatcher routes decoded packets to the handlers registered for the
// current phase and the packet's Go type, which serves as the variant tag.
type Dispatcher struct {
	handlers map[dispatchKey][]Handler
	// phases holds every phase a packet type is legal in. A type seen in
	// no phase is unknown (forward compatibility); a type legal only in
	// other phases is a protocol violation in this one.
	phases map[reflect.Type]map[protocol.Phase]struct{}
}

func newDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[dispatchKey][]Handler),
		phases:   make(map[reflect.Type]map[protocol.Phase]struct{}),
	}
}

func (d *Dispatcher) allow(phase protocol.Phase, typ reflect.Type) {
	set, ok := d.phases[typ]
	if !ok {
		set = make(map[protocol.Phase]struct{})
		d.phases[typ] = set
	}
	set[phase] = struct{}{}
}

func (d *Dispatcher) register(phase protocol.Phase, typ reflect.Type, h Handler) {
	d.allow(phase, typ)
	key := dispatchKey{phase: phase, typ: typ}
	d.handlers[key] = append(d.handlers[key], h)
}

func (d *Dispatcher) lookup(phase protocol.Phase, pkt protocol.Packet) ([]Handler, lookupStatus) {
	typ := reflect.TypeOf(pkt)
	set, known := d.phases[typ]
	if !known {
		return nil, packetUnknown
	}
	if _, legal := set[phase]; !legal {
		return nil, packetIllegal
	}
	return d.handlers[dispatchKey{phase: phase, typ: typ}], packetHandled
}

// Handle registers fn for packets of type P in the given phase. Handlers
// for the same pair run in registration order, built-ins first.
func Handle[P protocol.Packet](s *Session, phase protocol.Phase, fn func(*Context, P) error) {
	var zero P
	s.dispatcher.register(phase, reflect.TypeOf(zero), func(ctx *Context, pkt protocol.Packet) error {
		return fn(ctx, pkt.(P))
	})
}

// Allow whitelists packet type P in the given phase without attaching a
// handler, so receiving it is legal and silently accepted.
func Allow[P protocol.Packet](s *Session, phase protocol.Phase) {
	var zero P
	s.dispatcher.allow(phase, reflect.TypeOf(zero))
}

package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
)

type pingPacket struct{ n int }

func (pingPacket) PacketID() protocol.ID { return 0x70 }

type otherPacket struct{}

func (otherPacket) PacketID() protocol.ID { return 0x71 }

func TestDispatcher_HandlersRunInRegistrationOrder(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	var order []string
	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error {
		order = append(order, "first")
		return nil
	})
	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, s.dispatch(pingPacket{n: 1}))
	require.Equal(t, []string{"first", "second"}, order)
}

func TestDispatcher_UnknownTypeIgnored(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	handlers, status := s.dispatcher.lookup(protocol.PhasePlay, otherPacket{})
	require.Equal(t, packetUnknown, status)
	require.Empty(t, handlers)
}

func TestDispatcher_WrongPhaseIsIllegal(t *testing.T) {
	s, _ := newTestSession(t)
	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error { return nil })

	_, status := s.dispatcher.lookup(protocol.PhaseLogin, pingPacket{})
	require.Equal(t, packetIllegal, status)

	_, status = s.dispatcher.lookup(protocol.PhasePlay, pingPacket{})
	require.Equal(t, packetHandled, status)
}

func TestDispatcher_AllowWithoutHandler(t *testing.T) {
	s, _ := newTestSession(t)
	Allow[otherPacket](s, protocol.PhaseConfiguration)

	handlers, status := s.dispatcher.lookup(protocol.PhaseConfiguration, otherPacket{})
	require.Equal(t, packetHandled, status)
	require.Empty(t, handlers)
}

func TestDispatcher_LaterHandlerSeesEarlierMutation(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error {
		return ctx.Send(serverbound.Chat{Message: "from first"})
	})
	var queued int
	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error {
		queued = s.out.Len()
		return nil
	})

	require.NoError(t, s.dispatch(pingPacket{}))
	require.Equal(t, 1, queued)
}

func TestDispatcher_NonTerminatingHandlerErrorIsIsolated(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	var secondRan bool
	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error {
		return &Error{Kind: KindSystemFailure, Err: errTestBoom}
	})
	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error {
		secondRan = true
		return nil
	})

	require.NoError(t, s.dispatch(pingPacket{}))
	require.True(t, secondRan)
	require.Equal(t, protocol.PhasePlay, s.Phase())
}

func TestDispatcher_TerminatingHandlerErrorPropagates(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	Handle(s, protocol.PhasePlay, func(ctx *Context, pkt pingPacket) error {
		return Malformedf("bad field")
	})

	err := s.dispatch(pingPacket{})
	require.ErrorIs(t, err, ErrMalformedPacket)
}

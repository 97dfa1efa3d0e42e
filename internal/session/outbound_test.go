package session

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
	"github.com/tundrabyte/craftlink/internal/testutil"
)

func newTestOutbound() (*Outbound, *testutil.FakeTransport, *atomic.Uint64) {
	tr := testutil.NewFakeTransport()
	var seq atomic.Uint64
	return newOutbound(tr, &seq), tr, &seq
}

func TestOutbound_FlushPreservesFIFO(t *testing.T) {
	o, tr, _ := newTestOutbound()

	require.NoError(t, o.Enqueue(serverbound.Chat{Message: "a"}))
	require.NoError(t, o.Enqueue(
		serverbound.Chat{Message: "b"},
		serverbound.Chat{Message: "c"},
	))
	require.Empty(t, tr.Sent(), "nothing goes out before the flush")
	require.Equal(t, 3, o.Len())

	require.NoError(t, o.Flush())
	sent := tr.Sent()
	require.Len(t, sent, 3)
	require.Equal(t, serverbound.Chat{Message: "a"}, sent[0])
	require.Equal(t, serverbound.Chat{Message: "b"}, sent[1])
	require.Equal(t, serverbound.Chat{Message: "c"}, sent[2])
	require.Equal(t, 0, o.Len())
}

func TestOutbound_UrgentBypassesQueue(t *testing.T) {
	o, tr, _ := newTestOutbound()

	require.NoError(t, o.Enqueue(serverbound.Chat{Message: "queued"}))
	require.NoError(t, o.Enqueue(serverbound.PlayKeepAlive{ID: 42}))

	sent := tr.Sent()
	require.Len(t, sent, 1)
	require.Equal(t, serverbound.PlayKeepAlive{ID: 42}, sent[0])
	require.Equal(t, 1, o.Len())
}

func TestOutbound_SequenceCountsEverySend(t *testing.T) {
	o, _, seq := newTestOutbound()

	require.NoError(t, o.Enqueue(serverbound.Chat{Message: "a"}))
	require.NoError(t, o.Enqueue(serverbound.PlayPong{ID: 7}))
	require.Equal(t, uint64(1), seq.Load(), "urgent send bumps the sequence immediately")

	require.NoError(t, o.Flush())
	require.Equal(t, uint64(2), seq.Load())
}

func TestOutbound_DrainFlushesAndCloses(t *testing.T) {
	o, tr, _ := newTestOutbound()

	require.NoError(t, o.Enqueue(serverbound.Chat{Message: "pending"}))
	require.NoError(t, o.Drain())
	require.Len(t, tr.Sent(), 1)

	err := o.Enqueue(serverbound.Chat{Message: "late"})
	require.ErrorIs(t, err, ErrSessionClosed)

	// Drain is idempotent.
	require.NoError(t, o.Drain())
}

func TestOutbound_SendFailureSurfaces(t *testing.T) {
	o, tr, _ := newTestOutbound()
	tr.FailSends(errors.New("broken pipe"))

	require.NoError(t, o.Enqueue(serverbound.Chat{Message: "a"}))
	require.Error(t, o.Flush())

	require.Error(t, o.Enqueue(serverbound.PlayKeepAlive{ID: 1}))
}

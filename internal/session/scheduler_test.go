package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tundrabyte/craftlink/internal/protocol"
)

var errTestBoom = errors.New("boom")

func TestScheduler_OrderKeyThenRegistration(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	var ran []string
	mark := func(name string) System {
		return &recorder{name: name, fn: func(ctx *Context) error {
			ran = append(ran, name)
			return nil
		}}
	}
	s.AddSystem(10, mark("late"))
	s.AddSystem(0, mark("early-a"))
	s.AddSystem(0, mark("early-b"))
	s.AddSystem(-5, mark("first"))

	require.NoError(t, s.runTick())
	require.Equal(t, []string{"first", "early-a", "early-b", "late"}, ran)

	// The order is stable across ticks.
	ran = nil
	require.NoError(t, s.runTick())
	require.Equal(t, []string{"first", "early-a", "early-b", "late"}, ran)
}

func TestScheduler_FailingSystemIsIsolated(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	var afterRan bool
	s.AddSystem(0, &recorder{name: "failing", fn: func(ctx *Context) error {
		return errTestBoom
	}})
	s.AddSystem(1, &recorder{name: "after", fn: func(ctx *Context) error {
		afterRan = true
		return nil
	}})

	require.NoError(t, s.runTick())
	require.True(t, afterRan)
	require.Equal(t, protocol.PhasePlay, s.Phase())
}

func TestScheduler_PanicBecomesSystemFailure(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	s.AddSystem(0, &recorder{name: "panicky", fn: func(ctx *Context) error {
		panic("unexpected nil")
	}})

	require.NoError(t, s.runTick())
	require.Equal(t, protocol.PhasePlay, s.Phase())
}

func TestScheduler_FatalErrorTerminates(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	s.AddSystem(0, &recorder{name: "corrupt", fn: func(ctx *Context) error {
		return Fatalf("inventory slot out of range")
	}})

	err := s.runTick()
	require.ErrorIs(t, err, ErrFatalModelCorruption)
}

func TestScheduler_StopsAfterMidTickDisconnect(t *testing.T) {
	s, _ := newTestSession(t)
	join(t, s)

	var afterRan bool
	s.AddSystem(0, &recorder{name: "quitter", fn: func(ctx *Context) error {
		ctx.Disconnect(KindNone, errors.New("shutting down"))
		return nil
	}})
	s.AddSystem(1, &recorder{name: "after", fn: func(ctx *Context) error {
		afterRan = true
		return nil
	}})

	require.NoError(t, s.runTick())
	require.False(t, afterRan)
	require.Equal(t, protocol.PhaseDisconnected, s.Phase())
}

package session

import (
	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/world"
)

// Context is the scoped access a handler or system holds for one turn.
// The embedded view goes stale when the turn ends; do not retain the
// context or anything resolved through it.
type Context struct {
	s *Session

	// View is the world access for this turn.
	View *world.View

	// Tick is the current tick number (0 before the first tick).
	Tick uint64
}

// Phase returns the session's current protocol phase.
func (c *Context) Phase() protocol.Phase { return c.s.Phase() }

// SessionID returns the connection identifier.
func (c *Context) SessionID() uuid.UUID { return c.s.id }

// Options returns the session options (profile, locale, view distance).
func (c *Context) Options() Options { return c.s.opts }

// Send enqueues packets on the outbound queue. Urgent packets flush
// immediately; the rest go out at end-of-tick in FIFO order.
func (c *Context) Send(pkts ...protocol.Packet) error {
	return c.s.out.Enqueue(pkts...)
}

// Transition requests a phase transition; illegal transitions fail with a
// protocol violation.
func (c *Context) Transition(next protocol.Phase) error {
	return c.s.setPhase(next)
}

// Disconnect terminates the session. KindNone marks an orderly
// disconnect (e.g. the server sent a Disconnect packet).
func (c *Context) Disconnect(kind Kind, cause error) {
	c.s.setDisconnectedLocked(kind, cause)
}

// Package journal persists what a session observes: chat traffic and
// entity sightings. It hangs off the public session extension points, so
// a journal failure never takes the connection down.
package journal

import (
	"context"
	"time"

	"github.com/tundrabyte/craftlink/internal/db"
	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/session"
	"github.com/tundrabyte/craftlink/internal/world"
)

// Store persists journal records. *db.DB implements it.
type Store interface {
	InsertChat(ctx context.Context, e db.ChatEntry) error
	RecordSighting(ctx context.Context, s db.Sighting) error
}

// opTimeout bounds a single store call so a stalled database cannot wedge
// the tick loop.
const opTimeout = 5 * time.Second

// sightingInterval is how many ticks pass between sighting sweeps; once a
// second at the standard tick rate.
const sightingInterval = 20

// Recorder writes session observations to a Store.
type Recorder struct {
	store Store
	now   func() time.Time
}

// NewRecorder builds a Recorder over the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// Register attaches the recorder to a session: chat packets are journaled
// as they arrive, entity positions on a periodic sweep.
func (r *Recorder) Register(s *session.Session) {
	session.Handle(s, protocol.PhasePlay, r.onPlayerChat)
	session.Handle(s, protocol.PhasePlay, r.onSystemChat)
	s.AddSystem(100, &sightingSystem{r: r})
}

func (r *Recorder) onPlayerChat(ctx *session.Context, pkt clientbound.PlayerChat) error {
	return r.insertChat(ctx, pkt.Sender.String(), pkt.Content)
}

func (r *Recorder) onSystemChat(ctx *session.Context, pkt clientbound.SystemChat) error {
	if pkt.Overlay {
		// Action-bar text is transient UI, not conversation.
		return nil
	}
	return r.insertChat(ctx, "system", pkt.Content)
}

func (r *Recorder) insertChat(ctx *session.Context, sender, message string) error {
	opCtx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return r.store.InsertChat(opCtx, db.ChatEntry{
		SessionID:  ctx.SessionID(),
		Sender:     sender,
		Message:    message,
		ReceivedAt: r.now(),
	})
}

// sightingSystem sweeps positioned entities and records where they were
// last seen.
type sightingSystem struct {
	r *Recorder
}

func (sightingSystem) Name() string { return "journal.sightings" }

func (s *sightingSystem) Tick(ctx *session.Context) error {
	if ctx.Tick%sightingInterval != 0 {
		return nil
	}

	opCtx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	seenAt := s.r.now()
	for _, e := range ctx.View.EntitiesWith(world.Key[world.Position]()) {
		pos, err := world.Get[world.Position](e)
		if err != nil {
			return err
		}
		uu, err := e.UUID()
		if err != nil {
			return err
		}
		kind, err := e.Kind()
		if err != nil {
			return err
		}
		err = s.r.store.RecordSighting(opCtx, db.Sighting{
			SessionID:  ctx.SessionID(),
			EntityID:   int32(e.ID()),
			EntityUUID: uu,
			Kind:       kind,
			X:          pos.Pos.X(),
			Y:          pos.Pos.Y(),
			Z:          pos.Pos.Z(),
			SeenAt:     seenAt,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

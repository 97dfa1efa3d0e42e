package journal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/tundrabyte/craftlink/internal/db"
	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/session"
	"github.com/tundrabyte/craftlink/internal/testutil"
)

type fakeStore struct {
	mu        sync.Mutex
	chats     []db.ChatEntry
	sightings []db.Sighting
	fail      error
}

func (f *fakeStore) InsertChat(ctx context.Context, e db.ChatEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.chats = append(f.chats, e)
	return nil
}

func (f *fakeStore) RecordSighting(ctx context.Context, s db.Sighting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.sightings = append(f.sightings, s)
	return nil
}

func (f *fakeStore) Chats() []db.ChatEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]db.ChatEntry(nil), f.chats...)
}

func (f *fakeStore) Sightings() []db.Sighting {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]db.Sighting(nil), f.sightings...)
}

// startSession runs a recorded session against a fake transport and
// delivers the join sequence, returning once the session reaches Play.
func startSession(t *testing.T, store Store) (*session.Session, *testutil.FakeTransport) {
	t.Helper()
	tr := testutil.NewFakeTransport()
	profile := model.OfflineProfile("journaled")
	s := session.New(tr, session.Options{
		Profile:      profile,
		ServerHost:   "localhost",
		ServerPort:   25565,
		TickInterval: 2 * time.Millisecond,
	})
	NewRecorder(store).Register(s)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		<-s.Done()
	})
	go func() { _ = s.Run(ctx) }()

	tr.Deliver(testutil.JoinSequence(profile)...)
	require.Eventually(t, func() bool {
		return s.Phase() == protocol.PhasePlay
	}, 2*time.Second, time.Millisecond)
	return s, tr
}

func TestRecorder_JournalsChat(t *testing.T) {
	store := &fakeStore{}
	s, tr := startSession(t, store)

	sender := model.OfflineProfile("herobrine").ID
	tr.Deliver(
		clientbound.PlayerChat{Sender: sender, Content: "hello"},
		clientbound.SystemChat{Content: "server restarting soon"},
		clientbound.SystemChat{Content: "action bar text", Overlay: true},
	)

	require.Eventually(t, func() bool {
		return len(store.Chats()) == 2
	}, 2*time.Second, time.Millisecond)

	chats := store.Chats()
	require.Equal(t, sender.String(), chats[0].Sender)
	require.Equal(t, "hello", chats[0].Message)
	require.Equal(t, s.ID(), chats[0].SessionID)
	require.Equal(t, "system", chats[1].Sender)

	// Overlay text never reaches the journal.
	time.Sleep(20 * time.Millisecond)
	require.Len(t, store.Chats(), 2)
}

func TestRecorder_SweepsEntitySightings(t *testing.T) {
	store := &fakeStore{}
	_, tr := startSession(t, store)

	tr.Deliver(testutil.SpawnEntity(42, mgl64.Vec3{10, 64, 10}))

	// The sweep records the local player too, so look up the spawned id.
	find := func() (db.Sighting, bool) {
		for _, sg := range store.Sightings() {
			if sg.EntityID == 42 {
				return sg, true
			}
		}
		return db.Sighting{}, false
	}
	require.Eventually(t, func() bool {
		_, ok := find()
		return ok
	}, 2*time.Second, time.Millisecond)

	sg, _ := find()
	require.Equal(t, 10.0, sg.X)
	require.Equal(t, 64.0, sg.Y)
	require.Equal(t, 10.0, sg.Z)
}

func TestRecorder_StoreFailureDoesNotDisconnect(t *testing.T) {
	store := &fakeStore{fail: errors.New("database unavailable")}
	s, tr := startSession(t, store)

	tr.Deliver(clientbound.SystemChat{Content: "hello"})
	tr.Deliver(testutil.SpawnEntity(2, mgl64.Vec3{}))

	// Give several ticks a chance to run the failing sweep.
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, protocol.PhasePlay, s.Phase())
	require.Empty(t, store.Chats())
}

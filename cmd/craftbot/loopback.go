package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tundrabyte/craftlink/internal/model"
	"github.com/tundrabyte/craftlink/internal/protocol"
	"github.com/tundrabyte/craftlink/internal/protocol/clientbound"
	"github.com/tundrabyte/craftlink/internal/protocol/serverbound"
	"github.com/tundrabyte/craftlink/internal/session"
)

// loopback is a scripted stand-in for a real server connection: it walks a
// joining client through login and configuration and then feeds it a small
// world. Useful for running the full stack without a server or a codec.
type loopback struct {
	username string

	in        chan protocol.Packet
	mu        sync.Mutex
	closed    bool
	threshold int32
}

func newLoopback(username string) *loopback {
	return &loopback{
		username: username,
		in:       make(chan protocol.Packet, 256),
	}
}

func (l *loopback) Inbound() <-chan protocol.Packet { return l.in }

// Send reacts to the client the way a vanilla server would at each step of
// the join flow.
func (l *loopback) Send(pkts ...protocol.Packet) error {
	for _, pkt := range pkts {
		switch p := pkt.(type) {
		case serverbound.Hello:
			l.deliver(clientbound.GameProfile{
				ID:   model.OfflineProfile(p.Name).ID,
				Name: p.Name,
			})
		case serverbound.LoginAcknowledged:
			l.deliver(clientbound.FinishConfiguration{})
		case serverbound.FinishConfigurationAck:
			l.deliverWorld()
		case serverbound.Chat:
			l.deliver(clientbound.SystemChat{Content: "echo: " + p.Message})
		}
	}
	return nil
}

// deliverWorld sends the initial play-phase burst: login, spawn position,
// the chunks around it and a couple of entities.
func (l *loopback) deliverWorld() {
	l.deliver(clientbound.Login{
		EntityID:     1,
		GameMode:     model.GameModeSurvival,
		ViewDistance: 4,
		WorldHeight:  384,
		MinY:         -64,
	})
	l.deliver(clientbound.PlayerPosition{Pos: mgl64.Vec3{8, 64, 8}, TeleportID: 1})
	for x := int32(-1); x <= 1; x++ {
		for z := int32(-1); z <= 1; z++ {
			l.deliver(flatChunk(model.ChunkPos{X: x, Z: z}))
		}
	}
	l.deliver(spawnPacket(100, mgl64.Vec3{12, 64, 12}))
	l.deliver(spawnPacket(101, mgl64.Vec3{4, 64, 4}))
	l.deliver(clientbound.SystemChat{Content: "welcome, " + l.username})
}

// serve pushes periodic keep-alives until the context ends, then closes
// the inbound channel to simulate the connection dropping.
func (l *loopback) serve(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			l.mu.Lock()
			if !l.closed {
				l.closed = true
				close(l.in)
			}
			l.mu.Unlock()
			return
		case t := <-ticker.C:
			l.deliver(clientbound.PlayKeepAlive{ID: t.UnixMilli()})
		}
	}
}

func (l *loopback) deliver(pkt protocol.Packet) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	select {
	case l.in <- pkt:
	default:
		slog.Warn("loopback inbound full, dropping packet")
	}
}

func (l *loopback) SetCompressionThreshold(threshold int32) {
	l.mu.Lock()
	l.threshold = threshold
	l.mu.Unlock()
}

func (l *loopback) EnableEncryption(secret []byte) error { return nil }

func (l *loopback) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

func flatChunk(pos model.ChunkPos) clientbound.LevelChunkWithLight {
	const perSection = 16 * 16 * 16
	bottom := make([]int32, perSection)
	for i := range bottom {
		bottom[i] = 1 // stone
	}
	sections := make([]clientbound.ChunkSection, 24)
	sections[4] = clientbound.ChunkSection{BlockStates: bottom} // y 0..15
	return clientbound.LevelChunkWithLight{
		Pos:      pos,
		MinY:     -64,
		Sections: sections,
	}
}

func spawnPacket(id int32, pos mgl64.Vec3) clientbound.AddEntity {
	return clientbound.AddEntity{
		EntityID: id,
		UUID:     model.OfflineProfile("npc").ID,
		Kind:     1,
		Pos:      pos,
	}
}

var _ session.Transport = (*loopback)(nil)

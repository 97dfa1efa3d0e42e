package world

import (
	"reflect"
	"slices"

	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/model"
)

// Snapshot is a content-comparable copy of the world, used to verify that
// replaying a packet sequence reproduces identical state. It is detached:
// mutating the world after the copy never changes it.
type Snapshot struct {
	Entities []EntitySnapshot
	Chunks   map[model.ChunkPos]*Chunk
	Center   model.ChunkPos
	Radius   int32
	Local    *LocalPlayer
}

// EntitySnapshot is the serialized form of one entity, components keyed by
// their type name.
type EntitySnapshot struct {
	ID         EntityID
	UUID       uuid.UUID
	Kind       int32
	Components map[string]any
}

// Snapshot copies the current world state. Safe to call between turns.
func (w *World) Snapshot() *Snapshot {
	s := &Snapshot{
		Chunks: make(map[model.ChunkPos]*Chunk, len(w.chunks)),
		Center: w.center,
		Radius: w.radius,
	}
	for id, rec := range w.entities {
		es := EntitySnapshot{
			ID:         id,
			UUID:       rec.uuid,
			Kind:       rec.kind,
			Components: make(map[string]any),
		}
		for key, table := range w.tables {
			c, ok := table[id]
			if !ok {
				continue
			}
			// Components holding maps or slices must be detached from
			// the live world, or later mutations leak into the copy.
			if cl, ok := c.(interface{ cloneComponent() any }); ok {
				c = cl.cloneComponent()
			}
			es.Components[key.String()] = c
		}
		s.Entities = append(s.Entities, es)
	}
	slices.SortFunc(s.Entities, func(a, b EntitySnapshot) int { return int(a.ID) - int(b.ID) })
	for pos, c := range w.chunks {
		s.Chunks[pos] = c.clone()
	}
	if w.local != nil {
		cp := *w.local
		s.Local = &cp
	}
	return s
}

// Equal reports whether two snapshots describe identical world content.
func (s *Snapshot) Equal(o *Snapshot) bool {
	return reflect.DeepEqual(s, o)
}

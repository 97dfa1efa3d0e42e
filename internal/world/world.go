// Package world holds the authoritative client-side game state: entities
// with open-ended typed components, loaded terrain chunks, and the local
// player. All access goes through per-turn views handed out by the
// session's dispatcher and scheduler; nothing here is safe for
// unsynchronized concurrent use and nothing needs to be, because the
// session serializes every turn.
package world

import (
	"reflect"

	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/model"
)

// EntityID is the server-assigned numeric entity id, stable for the
// entity's visible lifetime.
type EntityID int32

// ComponentKey identifies a component type in queries.
type ComponentKey = reflect.Type

// Key returns the component key for T, for use with View.EntitiesWith.
func Key[T any]() ComponentKey {
	return reflect.TypeOf((*T)(nil)).Elem()
}

type entityRecord struct {
	gen  uint64
	uuid uuid.UUID
	kind int32
}

// World aggregates entities, chunks and local player state under a single
// consistency boundary.
type World struct {
	entities map[EntityID]*entityRecord
	gens     map[EntityID]uint64 // keeps counting across despawns
	tables   map[ComponentKey]map[EntityID]any

	chunks map[model.ChunkPos]*Chunk
	center model.ChunkPos
	radius int32

	local   *LocalPlayer
	localID EntityID

	turn *View // currently open turn, nil between turns
}

// LocalPlayer is the client-only state of the distinguished local entity.
// Server-synchronized attributes (position, health) live as components on
// the local entity itself.
type LocalPlayer struct {
	EntityID     EntityID
	Profile      model.GameProfile
	GameMode     model.GameMode
	Hardcore     bool
	ViewDistance int32

	Inventory [model.InventorySize]model.ItemStack
	Carried   model.ItemStack
	HeldSlot  int32
	StateID   int32

	Abilities Abilities
}

// Abilities mirrors the server-granted player abilities.
type Abilities struct {
	Invulnerable bool
	Flying       bool
	MayFly       bool
	FlySpeed     float32
	WalkSpeed    float32
}

// New returns an empty, uninitialized world. Entering Play initializes it
// via View.InitLocal.
func New() *World {
	w := &World{}
	w.reset()
	return w
}

func (w *World) reset() {
	w.entities = make(map[EntityID]*entityRecord)
	if w.gens == nil {
		w.gens = make(map[EntityID]uint64)
	}
	w.tables = make(map[ComponentKey]map[EntityID]any)
	w.chunks = make(map[model.ChunkPos]*Chunk)
	w.center = model.ChunkPos{}
	w.radius = 0
	w.local = nil
	w.localID = 0
}

// Teardown clears all state. Handles from any previous turn become stale.
func (w *World) Teardown() {
	if w.turn != nil {
		w.turn.open = false
		w.turn = nil
	}
	w.reset()
	w.gens = make(map[EntityID]uint64)
}

// BeginTurn opens a view for one dispatch or tick turn. Exactly one turn
// may be open at a time; the previous turn's handles go stale when a new
// one begins.
func (w *World) BeginTurn() *View {
	if w.turn != nil {
		w.turn.open = false
	}
	v := &View{w: w, open: true}
	w.turn = v
	return v
}

func (w *World) table(key ComponentKey) map[EntityID]any {
	t, ok := w.tables[key]
	if !ok {
		t = make(map[EntityID]any)
		w.tables[key] = t
	}
	return t
}

func (w *World) dropEntity(id EntityID) {
	delete(w.entities, id)
	for _, t := range w.tables {
		delete(t, id)
	}
}

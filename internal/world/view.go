package world

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/model"
)

// View is the borrowed access a handler or system holds for the duration
// of one turn. It is invalidated when the turn ends; all operations on an
// ended view fail with ErrStaleReference.
type View struct {
	w    *World
	open bool
}

// End closes the view. Handles minted from it become stale.
func (v *View) End() {
	v.open = false
	if v.w.turn == v {
		v.w.turn = nil
	}
}

func (v *View) world() (*World, error) {
	if !v.open {
		return nil, fmt.Errorf("turn has ended: %w", ErrStaleReference)
	}
	return v.w, nil
}

// Spawn creates an entity for a server-assigned id. Spawning an id that is
// still alive fails with ErrEntityAlive and mutates nothing.
func (v *View) Spawn(id EntityID, uu uuid.UUID, kind int32) (Entity, error) {
	w, err := v.world()
	if err != nil {
		return Entity{}, err
	}
	if _, alive := w.entities[id]; alive {
		return Entity{}, fmt.Errorf("spawn entity %d: %w", id, ErrEntityAlive)
	}
	gen := w.gens[id] + 1
	w.gens[id] = gen
	w.entities[id] = &entityRecord{gen: gen, uuid: uu, kind: kind}
	return Entity{v: v, id: id, gen: gen}, nil
}

// Despawn removes an entity and all its components. Outstanding handles to
// it become stale immediately.
func (v *View) Despawn(id EntityID) error {
	w, err := v.world()
	if err != nil {
		return err
	}
	if _, alive := w.entities[id]; !alive {
		return fmt.Errorf("despawn entity %d: %w", id, ErrStaleReference)
	}
	w.dropEntity(id)
	return nil
}

// Entity resolves an id to a handle valid for the rest of this turn.
// Despawned or unknown ids fail with ErrStaleReference.
func (v *View) Entity(id EntityID) (Entity, error) {
	w, err := v.world()
	if err != nil {
		return Entity{}, err
	}
	rec, ok := w.entities[id]
	if !ok {
		return Entity{}, fmt.Errorf("entity %d: %w", id, ErrStaleReference)
	}
	return Entity{v: v, id: id, gen: rec.gen}, nil
}

// Local resolves the local player entity.
func (v *View) Local() (Entity, error) {
	w, err := v.world()
	if err != nil {
		return Entity{}, err
	}
	if w.local == nil {
		return Entity{}, ErrNotInWorld
	}
	return v.Entity(w.localID)
}

// Player returns the client-only local player state, or an error before
// the Play phase initialized the world.
func (v *View) Player() (*LocalPlayer, error) {
	w, err := v.world()
	if err != nil {
		return nil, err
	}
	if w.local == nil {
		return nil, ErrNotInWorld
	}
	return w.local, nil
}

// InitLocal initializes the world on entering Play: chunk storage is
// reset and the local player entity is allocated at the origin, to be
// corrected by the first PlayerPosition packet. A second InitLocal means
// the server moved the player to another world; every entity from the
// previous one is dropped, and handles to them go stale.
func (v *View) InitLocal(id EntityID, profile model.GameProfile, mode model.GameMode, hardcore bool, viewDistance int32) (Entity, error) {
	w, err := v.world()
	if err != nil {
		return Entity{}, err
	}
	for old := range w.entities {
		w.dropEntity(old)
	}
	w.local = nil
	w.localID = 0
	w.chunks = make(map[model.ChunkPos]*Chunk)
	w.center = model.ChunkPos{}
	w.radius = viewDistance

	e, err := v.Spawn(id, profile.ID, 0)
	if err != nil {
		return Entity{}, err
	}
	if err := Set(e, Position{}); err != nil {
		return Entity{}, err
	}
	if err := Set(e, Rotation{}); err != nil {
		return Entity{}, err
	}
	if err := Set(e, Local{}); err != nil {
		return Entity{}, err
	}
	w.localID = id
	w.local = &LocalPlayer{
		EntityID:     id,
		Profile:      profile,
		GameMode:     mode,
		Hardcore:     hardcore,
		ViewDistance: viewDistance,
		Abilities:    Abilities{FlySpeed: 0.05, WalkSpeed: 0.1},
	}
	return e, nil
}

// EntitiesWith returns handles to all entities carrying every listed
// component, in ascending id order.
func (v *View) EntitiesWith(keys ...ComponentKey) []Entity {
	w, err := v.world()
	if err != nil {
		return nil
	}
	var out []Entity
	for id, rec := range w.entities {
		match := true
		for _, k := range keys {
			if _, ok := w.tables[k][id]; !ok {
				match = false
				break
			}
		}
		if match {
			out = append(out, Entity{v: v, id: id, gen: rec.gen})
		}
	}
	slices.SortFunc(out, func(a, b Entity) int { return int(a.id) - int(b.id) })
	return out
}

// EntitiesIn returns handles to all positioned entities inside the region,
// in ascending id order.
func (v *View) EntitiesIn(region model.Region) []Entity {
	var out []Entity
	for _, e := range v.EntitiesWith(Key[Position]()) {
		pos, err := Get[Position](e)
		if err != nil {
			continue
		}
		if region.Contains(pos.Pos) {
			out = append(out, e)
		}
	}
	return out
}

// LoadChunk inserts or replaces the chunk at its coordinate key.
func (v *View) LoadChunk(c *Chunk) error {
	w, err := v.world()
	if err != nil {
		return err
	}
	w.chunks[c.pos] = c
	return nil
}

// UnloadChunk evicts the chunk at pos. It reports whether one was loaded.
func (v *View) UnloadChunk(pos model.ChunkPos) (bool, error) {
	w, err := v.world()
	if err != nil {
		return false, err
	}
	_, ok := w.chunks[pos]
	delete(w.chunks, pos)
	return ok, nil
}

// ChunkLoaded reports whether the chunk at pos is in memory.
func (v *View) ChunkLoaded(pos model.ChunkPos) bool {
	w, err := v.world()
	if err != nil {
		return false
	}
	_, ok := w.chunks[pos]
	return ok
}

// ChunkCount returns the number of loaded chunks.
func (v *View) ChunkCount() int {
	w, err := v.world()
	if err != nil {
		return 0
	}
	return len(w.chunks)
}

// BlockState returns the block state at an absolute position.
func (v *View) BlockState(pos model.BlockPos) (int32, error) {
	w, err := v.world()
	if err != nil {
		return 0, err
	}
	c, ok := w.chunks[pos.Chunk()]
	if !ok {
		return 0, fmt.Errorf("block %v: %w", pos, ErrChunkNotLoaded)
	}
	return c.Block(pos)
}

// SetBlockState applies a block delta at an absolute position.
func (v *View) SetBlockState(pos model.BlockPos, state int32) error {
	w, err := v.world()
	if err != nil {
		return err
	}
	c, ok := w.chunks[pos.Chunk()]
	if !ok {
		return fmt.Errorf("block %v: %w", pos, ErrChunkNotLoaded)
	}
	return c.SetBlock(pos, state)
}

// SetChunkCenter recenters the chunk cache and evicts columns outside the
// view radius.
func (v *View) SetChunkCenter(pos model.ChunkPos) error {
	w, err := v.world()
	if err != nil {
		return err
	}
	w.center = pos
	w.evict()
	return nil
}

// SetChunkRadius updates the view radius and evicts columns outside it.
func (v *View) SetChunkRadius(radius int32) error {
	w, err := v.world()
	if err != nil {
		return err
	}
	w.radius = radius
	if w.local != nil {
		w.local.ViewDistance = radius
	}
	w.evict()
	return nil
}

func (w *World) evict() {
	if w.radius <= 0 {
		return
	}
	for pos := range w.chunks {
		// +1 matches the vanilla client, which keeps a one-chunk margin.
		if !pos.InRadius(w.center, w.radius+1) {
			delete(w.chunks, pos)
		}
	}
}

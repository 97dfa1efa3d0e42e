package world

import "errors"

var (
	// ErrStaleReference is returned when an entity or chunk is accessed
	// through a handle whose turn has ended, or whose target was despawned
	// or never existed. Recoverable: the caller re-resolves next turn.
	ErrStaleReference = errors.New("stale reference")

	// ErrEntityAlive is returned by Spawn when the id is already bound to a
	// live entity. The server must despawn an id before reusing it.
	ErrEntityAlive = errors.New("entity id already alive")

	// ErrNoComponent is returned when a component type is absent on an
	// entity.
	ErrNoComponent = errors.New("component not present")

	// ErrChunkNotLoaded is returned for block access in an unloaded chunk.
	ErrChunkNotLoaded = errors.New("chunk not loaded")

	// ErrNotInWorld is returned when local-player state is accessed before
	// the Play phase initialized the world.
	ErrNotInWorld = errors.New("world not initialized")

	// ErrOutOfBounds is returned for block coordinates outside the world's
	// vertical range.
	ErrOutOfBounds = errors.New("position out of world bounds")
)

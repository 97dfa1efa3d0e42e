package world

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

// Entity is a borrowed handle to one entity, valid until its view's turn
// ends or the entity is despawned. A stale handle fails every operation
// with ErrStaleReference instead of exposing dangling data.
type Entity struct {
	v   *View
	id  EntityID
	gen uint64
}

// ID returns the server-assigned entity id. Valid even on stale handles.
func (e Entity) ID() EntityID { return e.id }

func (e Entity) live() (*World, error) {
	if e.v == nil {
		return nil, fmt.Errorf("zero entity handle: %w", ErrStaleReference)
	}
	w, err := e.v.world()
	if err != nil {
		return nil, err
	}
	rec, ok := w.entities[e.id]
	if !ok || rec.gen != e.gen {
		return nil, fmt.Errorf("entity %d: %w", e.id, ErrStaleReference)
	}
	return w, nil
}

// UUID returns the entity's UUID as carried by its spawn packet.
func (e Entity) UUID() (uuid.UUID, error) {
	w, err := e.live()
	if err != nil {
		return uuid.Nil, err
	}
	return w.entities[e.id].uuid, nil
}

// Kind returns the entity's type id as carried by its spawn packet.
func (e Entity) Kind() (int32, error) {
	w, err := e.live()
	if err != nil {
		return 0, err
	}
	return w.entities[e.id].kind, nil
}

// Alive reports whether the handle still resolves.
func (e Entity) Alive() bool {
	_, err := e.live()
	return err == nil
}

// Get returns the component of type T on the entity.
func Get[T any](e Entity) (T, error) {
	var zero T
	w, err := e.live()
	if err != nil {
		return zero, err
	}
	c, ok := w.tables[reflect.TypeOf((*T)(nil)).Elem()][e.id]
	if !ok {
		return zero, fmt.Errorf("%s on entity %d: %w", reflect.TypeOf((*T)(nil)).Elem(), e.id, ErrNoComponent)
	}
	return c.(T), nil
}

// Set attaches or replaces the component of type T on the entity.
func Set[T any](e Entity, c T) error {
	w, err := e.live()
	if err != nil {
		return err
	}
	w.table(reflect.TypeOf((*T)(nil)).Elem())[e.id] = c
	return nil
}

// Remove detaches the component of type T from the entity.
func Remove[T any](e Entity) error {
	w, err := e.live()
	if err != nil {
		return err
	}
	delete(w.tables[reflect.TypeOf((*T)(nil)).Elem()], e.id)
	return nil
}

// Has reports whether the entity carries a component of type T. Stale
// handles report false.
func Has[T any](e Entity) bool {
	w, err := e.live()
	if err != nil {
		return false
	}
	_, ok := w.tables[reflect.TypeOf((*T)(nil)).Elem()][e.id]
	return ok
}

// Update applies fn to the component of type T, storing the result.
func Update[T any](e Entity, fn func(T) T) error {
	c, err := Get[T](e)
	if err != nil {
		return err
	}
	return Set(e, fn(c))
}

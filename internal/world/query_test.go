package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/tundrabyte/craftlink/internal/model"
)

func TestView_EntitiesWith(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	for i, hasHealth := range []bool{true, false, true} {
		e, err := v.Spawn(EntityID(i+1), uuid.New(), 0)
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
		if err := Set(e, Position{Pos: mgl64.Vec3{float64(i), 0, 0}}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if hasHealth {
			if err := Set(e, Health{Health: 20}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
		}
	}

	got := v.EntitiesWith(Key[Position](), Key[Health]())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID() != 1 || got[1].ID() != 3 {
		t.Errorf("ids = [%d %d], want [1 3] in ascending order", got[0].ID(), got[1].ID())
	}
}

func TestView_EntitiesWith_NoComponentsMeansAll(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	for id := EntityID(3); id > 0; id-- {
		if _, err := v.Spawn(id, uuid.New(), 0); err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
	}

	got := v.EntitiesWith()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, e := range got {
		if e.ID() != EntityID(i+1) {
			t.Errorf("ids not in ascending order: got %d at index %d", e.ID(), i)
		}
	}
}

func TestView_EntitiesIn(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	positions := map[EntityID]mgl64.Vec3{
		1: {0, 64, 0},
		2: {100, 64, 100},
		3: {4, 60, -4},
	}
	for id, pos := range positions {
		e, err := v.Spawn(id, uuid.New(), 0)
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
		if err := Set(e, Position{Pos: pos}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	got := v.EntitiesIn(model.RegionAround(mgl64.Vec3{0, 64, 0}, 10))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID() != 1 || got[1].ID() != 3 {
		t.Errorf("ids = [%d %d], want [1 3]", got[0].ID(), got[1].ID())
	}
}

func TestUpdate(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	e, err := v.Spawn(1, uuid.New(), 0)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if err := Set(e, Position{Pos: mgl64.Vec3{1, 2, 3}}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	err = Update(e, func(p Position) Position {
		p.Pos = p.Pos.Add(mgl64.Vec3{0, 1, 0})
		return p
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	pos, err := Get[Position](e)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if pos.Pos != (mgl64.Vec3{1, 3, 3}) {
		t.Errorf("position = %v, want (1 3 3)", pos.Pos)
	}
}

func TestRemoveAndHas(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	e, err := v.Spawn(1, uuid.New(), 0)
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if err := Set(e, OnGround{Value: true}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !Has[OnGround](e) {
		t.Fatal("component should be present")
	}
	if err := Remove[OnGround](e); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if Has[OnGround](e) {
		t.Error("component should be gone")
	}
}

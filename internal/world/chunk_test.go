package world

import (
	"errors"
	"testing"

	"github.com/tundrabyte/craftlink/internal/model"
)

func TestChunk_SetAndGetBlock(t *testing.T) {
	c := mustChunk(model.ChunkPos{X: 0, Z: 0}, -64, 384)

	pos := model.BlockPos{X: 5, Y: 70, Z: 12}
	if err := c.SetBlock(pos, 9); err != nil {
		t.Fatalf("SetBlock failed: %v", err)
	}
	got, err := c.Block(pos)
	if err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if got != 9 {
		t.Errorf("block = %d, want 9", got)
	}

	// Untouched blocks read as air.
	air, err := c.Block(model.BlockPos{X: 0, Y: -64, Z: 0})
	if err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if air != 0 {
		t.Errorf("untouched block = %d, want 0", air)
	}
}

func TestChunk_NegativeCoordinates(t *testing.T) {
	c := mustChunk(model.ChunkPos{X: -1, Z: -1}, -64, 384)

	pos := model.BlockPos{X: -1, Y: 0, Z: -16}
	if err := c.SetBlock(pos, 3); err != nil {
		t.Fatalf("SetBlock failed: %v", err)
	}
	got, err := c.Block(pos)
	if err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if got != 3 {
		t.Errorf("block = %d, want 3", got)
	}
}

func TestChunk_VerticalBounds(t *testing.T) {
	c := mustChunk(model.ChunkPos{X: 0, Z: 0}, -64, 384)

	if _, err := c.Block(model.BlockPos{X: 0, Y: 320, Z: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("block above world: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := c.Block(model.BlockPos{X: 0, Y: -65, Z: 0}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("block below world: err = %v, want ErrOutOfBounds", err)
	}
}

func TestChunk_WrongColumn(t *testing.T) {
	c := mustChunk(model.ChunkPos{X: 0, Z: 0}, 0, 256)

	if err := c.SetBlock(model.BlockPos{X: 16, Y: 10, Z: 0}, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("block in neighbor chunk: err = %v, want ErrOutOfBounds", err)
	}
}

func TestChunk_FillSection(t *testing.T) {
	c := mustChunk(model.ChunkPos{X: 0, Z: 0}, 0, 256)

	blocks := make([]int32, blocksPerSection)
	blocks[0] = 1 // local (0,0,0) of section 4 => world y=64
	if err := c.FillSection(4, blocks); err != nil {
		t.Fatalf("FillSection failed: %v", err)
	}
	got, err := c.Block(model.BlockPos{X: 0, Y: 64, Z: 0})
	if err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if got != 1 {
		t.Errorf("block = %d, want 1", got)
	}

	if err := c.FillSection(4, make([]int32, 3)); err == nil {
		t.Error("short section payload should be rejected")
	}
	if err := c.FillSection(99, blocks); err == nil {
		t.Error("out-of-range section index should be rejected")
	}
}

func TestView_ChunkLifecycle(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	pos := model.ChunkPos{X: 0, Z: 0}
	if err := v.LoadChunk(mustChunk(pos, 0, 256)); err != nil {
		t.Fatalf("LoadChunk failed: %v", err)
	}
	if !v.ChunkLoaded(pos) {
		t.Fatal("chunk should be loaded")
	}

	bp := model.BlockPos{X: 3, Y: 10, Z: 3}
	if err := v.SetBlockState(bp, 42); err != nil {
		t.Fatalf("SetBlockState failed: %v", err)
	}
	got, err := v.BlockState(bp)
	if err != nil {
		t.Fatalf("BlockState failed: %v", err)
	}
	if got != 42 {
		t.Errorf("block = %d, want 42", got)
	}

	ok, err := v.UnloadChunk(pos)
	if err != nil || !ok {
		t.Fatalf("UnloadChunk = (%v, %v), want (true, nil)", ok, err)
	}
	if _, err := v.BlockState(bp); !errors.Is(err, ErrChunkNotLoaded) {
		t.Errorf("block in unloaded chunk: err = %v, want ErrChunkNotLoaded", err)
	}
}

func TestView_ChunkEviction(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	if err := v.SetChunkRadius(2); err != nil {
		t.Fatalf("SetChunkRadius failed: %v", err)
	}
	for x := int32(-5); x <= 5; x++ {
		if err := v.LoadChunk(mustChunk(model.ChunkPos{X: x, Z: 0}, 0, 256)); err != nil {
			t.Fatalf("LoadChunk failed: %v", err)
		}
	}

	if err := v.SetChunkCenter(model.ChunkPos{X: 0, Z: 0}); err != nil {
		t.Fatalf("SetChunkCenter failed: %v", err)
	}

	// Radius 2 plus the one-chunk margin keeps |x| <= 3.
	for x := int32(-5); x <= 5; x++ {
		want := x >= -3 && x <= 3
		if got := v.ChunkLoaded(model.ChunkPos{X: x, Z: 0}); got != want {
			t.Errorf("chunk [%d, 0] loaded = %v, want %v", x, got, want)
		}
	}
}

func TestView_LoadChunkReplacesExisting(t *testing.T) {
	w := New()
	v := w.BeginTurn()
	defer v.End()

	pos := model.ChunkPos{X: 1, Z: 1}
	first := mustChunk(pos, 0, 256)
	if err := first.SetBlock(model.BlockPos{X: 16, Y: 5, Z: 16}, 7); err != nil {
		t.Fatalf("SetBlock failed: %v", err)
	}
	if err := v.LoadChunk(first); err != nil {
		t.Fatalf("LoadChunk failed: %v", err)
	}
	if err := v.LoadChunk(mustChunk(pos, 0, 256)); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if v.ChunkCount() != 1 {
		t.Errorf("chunk count = %d, want 1 (single instance per coordinate)", v.ChunkCount())
	}
	got, err := v.BlockState(model.BlockPos{X: 16, Y: 5, Z: 16})
	if err != nil {
		t.Fatalf("BlockState failed: %v", err)
	}
	if got != 0 {
		t.Errorf("block = %d, want 0 after full reload", got)
	}
}

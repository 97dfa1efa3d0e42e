package model

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBlockPos_Chunk(t *testing.T) {
	tests := []struct {
		pos  BlockPos
		want ChunkPos
	}{
		{BlockPos{0, 64, 0}, ChunkPos{0, 0}},
		{BlockPos{15, 64, 15}, ChunkPos{0, 0}},
		{BlockPos{16, 64, 16}, ChunkPos{1, 1}},
		{BlockPos{-1, 64, -1}, ChunkPos{-1, -1}},
		{BlockPos{-16, 64, -17}, ChunkPos{-1, -2}},
	}
	for _, tt := range tests {
		if got := tt.pos.Chunk(); got != tt.want {
			t.Errorf("%v.Chunk() = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestBlockPosAt_NegativeCoordinates(t *testing.T) {
	got := BlockPosAt(mgl64.Vec3{-0.5, 64.2, -16.01})
	want := BlockPos{-1, 64, -17}
	if got != want {
		t.Errorf("BlockPosAt(-0.5, 64.2, -16.01) = %v, want %v", got, want)
	}
}

func TestChunkPos_InRadius(t *testing.T) {
	center := ChunkPos{0, 0}

	if !(ChunkPos{3, -3}).InRadius(center, 3) {
		t.Error("chunk at Chebyshev distance 3 should be inside radius 3")
	}
	if (ChunkPos{4, 0}).InRadius(center, 3) {
		t.Error("chunk at distance 4 should be outside radius 3")
	}
}

func TestRegion_Contains(t *testing.T) {
	r := RegionAround(mgl64.Vec3{0, 64, 0}, 8)

	if !r.Contains(mgl64.Vec3{7.9, 70, -7.9}) {
		t.Error("point inside half-extent should be contained")
	}
	if r.Contains(mgl64.Vec3{0, 73, 0}) {
		t.Error("point above the region should not be contained")
	}
}

func TestHotbarSlotIndex(t *testing.T) {
	if got := HotbarSlotIndex(0); got != 36 {
		t.Errorf("HotbarSlotIndex(0) = %d, want 36", got)
	}
	if got := HotbarSlotIndex(8); got != 44 {
		t.Errorf("HotbarSlotIndex(8) = %d, want 44", got)
	}
	if ValidHotbar(9) {
		t.Error("hotbar index 9 should be invalid")
	}
	if !ValidHotbar(0) {
		t.Error("hotbar index 0 should be valid")
	}
}

package model

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Chunk geometry constants. A chunk is a 16x16 column of sections, each
// section 16 blocks tall.
const (
	ChunkWidth    = 16
	SectionHeight = 16
)

// BlockPos is an absolute block coordinate in the world.
type BlockPos struct {
	X, Y, Z int32
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d %d %d)", p.X, p.Y, p.Z)
}

// Vec3 returns the center of the block as a floating-point position.
func (p BlockPos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X) + 0.5, float64(p.Y), float64(p.Z) + 0.5}
}

// Chunk returns the chunk column containing this block.
func (p BlockPos) Chunk() ChunkPos {
	return ChunkPos{X: p.X >> 4, Z: p.Z >> 4}
}

// BlockPosAt converts a floating-point position to the block containing it.
func BlockPosAt(v mgl64.Vec3) BlockPos {
	return BlockPos{
		X: floorInt32(v.X()),
		Y: floorInt32(v.Y()),
		Z: floorInt32(v.Z()),
	}
}

func floorInt32(f float64) int32 {
	i := int32(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}

// ChunkPos is the coordinate of a chunk column (block coordinates >> 4).
type ChunkPos struct {
	X, Z int32
}

func (p ChunkPos) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Z)
}

// ChunkPosOf returns the chunk column containing the given position.
func ChunkPosOf(v mgl64.Vec3) ChunkPos {
	return BlockPosAt(v).Chunk()
}

// DistSquared returns the squared chunk-grid distance to o.
func (p ChunkPos) DistSquared(o ChunkPos) int32 {
	dx := p.X - o.X
	dz := p.Z - o.Z
	return dx*dx + dz*dz
}

// InRadius reports whether p lies within a square radius around center.
// The chunk cache uses the Chebyshev metric, matching the vanilla client.
func (p ChunkPos) InRadius(center ChunkPos, radius int32) bool {
	dx := p.X - center.X
	if dx < 0 {
		dx = -dx
	}
	dz := p.Z - center.Z
	if dz < 0 {
		dz = -dz
	}
	return dx <= radius && dz <= radius
}

// Region is an axis-aligned bounding box used for spatial entity queries.
type Region struct {
	Min, Max mgl64.Vec3
}

// Contains reports whether v lies inside the region (inclusive bounds).
func (r Region) Contains(v mgl64.Vec3) bool {
	return v.X() >= r.Min.X() && v.X() <= r.Max.X() &&
		v.Y() >= r.Min.Y() && v.Y() <= r.Max.Y() &&
		v.Z() >= r.Min.Z() && v.Z() <= r.Max.Z()
}

// RegionAround returns a cubic region centered on v with the given
// half-extent.
func RegionAround(v mgl64.Vec3, r float64) Region {
	d := mgl64.Vec3{r, r, r}
	return Region{Min: v.Sub(d), Max: v.Add(d)}
}

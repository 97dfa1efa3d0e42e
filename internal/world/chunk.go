package world

import (
	"fmt"

	"github.com/tundrabyte/craftlink/internal/model"
)

const blocksPerSection = model.ChunkWidth * model.ChunkWidth * model.SectionHeight

// Chunk is one loaded 16x16 column of terrain. At most one instance exists
// per coordinate; block mutations happen in place.
type Chunk struct {
	pos      model.ChunkPos
	minY     int32
	sections []*section
	biomes   []byte
	light    []byte
}

// section stores the block states of a 16x16x16 cube. A nil section in a
// chunk means all air.
type section struct {
	blocks [blocksPerSection]int32
}

// NewChunk allocates an empty chunk column. Height is the world height in
// blocks and must be a multiple of the section height.
func NewChunk(pos model.ChunkPos, minY, height int32) (*Chunk, error) {
	if height <= 0 || height%model.SectionHeight != 0 {
		return nil, fmt.Errorf("chunk height %d is not a positive multiple of %d", height, model.SectionHeight)
	}
	return &Chunk{
		pos:      pos,
		minY:     minY,
		sections: make([]*section, height/model.SectionHeight),
	}, nil
}

// Pos returns the chunk's coordinate key.
func (c *Chunk) Pos() model.ChunkPos { return c.pos }

// MinY returns the lowest block Y covered by the chunk.
func (c *Chunk) MinY() int32 { return c.minY }

// Height returns the chunk's vertical extent in blocks.
func (c *Chunk) Height() int32 { return int32(len(c.sections)) * model.SectionHeight }

// FillSection replaces section idx (counted up from MinY) with the given
// block states, which must contain exactly 16*16*16 entries indexed
// [y*256 + z*16 + x]. A nil or empty slice clears the section to air.
func (c *Chunk) FillSection(idx int, blockStates []int32) error {
	if idx < 0 || idx >= len(c.sections) {
		return fmt.Errorf("section index %d out of range [0, %d)", idx, len(c.sections))
	}
	if len(blockStates) == 0 {
		c.sections[idx] = nil
		return nil
	}
	if len(blockStates) != blocksPerSection {
		return fmt.Errorf("section payload has %d block states, want %d", len(blockStates), blocksPerSection)
	}
	s := &section{}
	copy(s.blocks[:], blockStates)
	c.sections[idx] = s
	return nil
}

// SetPayloads attaches the opaque biome and light payloads.
func (c *Chunk) SetPayloads(biomes, light []byte) {
	c.biomes = biomes
	c.light = light
}

// Block returns the block state at an absolute position inside the chunk.
func (c *Chunk) Block(pos model.BlockPos) (int32, error) {
	s, i, err := c.index(pos)
	if err != nil {
		return 0, err
	}
	if c.sections[s] == nil {
		return 0, nil
	}
	return c.sections[s].blocks[i], nil
}

// SetBlock sets the block state at an absolute position inside the chunk.
func (c *Chunk) SetBlock(pos model.BlockPos, state int32) error {
	s, i, err := c.index(pos)
	if err != nil {
		return err
	}
	if c.sections[s] == nil {
		if state == 0 {
			return nil
		}
		c.sections[s] = &section{}
	}
	c.sections[s].blocks[i] = state
	return nil
}

func (c *Chunk) index(pos model.BlockPos) (sec int, idx int, err error) {
	if pos.Chunk() != c.pos {
		return 0, 0, fmt.Errorf("block %v is not in chunk %v: %w", pos, c.pos, ErrOutOfBounds)
	}
	y := pos.Y - c.minY
	if y < 0 || y >= c.Height() {
		return 0, 0, fmt.Errorf("block %v outside vertical range [%d, %d): %w",
			pos, c.minY, c.minY+c.Height(), ErrOutOfBounds)
	}
	lx := int(pos.X & 15)
	lz := int(pos.Z & 15)
	ly := int(y % model.SectionHeight)
	return int(y / model.SectionHeight), ly*model.ChunkWidth*model.ChunkWidth + lz*model.ChunkWidth + lx, nil
}

// clone returns a deep copy used by snapshots.
func (c *Chunk) clone() *Chunk {
	cp := &Chunk{
		pos:      c.pos,
		minY:     c.minY,
		sections: make([]*section, len(c.sections)),
		biomes:   append([]byte(nil), c.biomes...),
		light:    append([]byte(nil), c.light...),
	}
	for i, s := range c.sections {
		if s != nil {
			dup := *s
			cp.sections[i] = &dup
		}
	}
	return cp
}

// SPDX-License-Identifier: MIT

package gf

import "fmt"

// BlockGf is an ordered set of named square blocks sharing one mesh size.
type BlockGf struct {
	names  []string
	blocks map[string]*Gf
	mesh   int
}

// New builds a zero BlockGf with one block per name; indices[k] are the
// labels of names[k]. Block order follows names.
func New(names []string, indices [][]string, opts ...Option) (*BlockGf, error) {
	if len(names) != len(indices) {
		return nil, fmt.Errorf("New: %d names, %d index lists: %w", len(names), len(indices), ErrBadInput)
	}
	cfg := gather(opts)
	b := &BlockGf{
		names:  make([]string, 0, len(names)),
		blocks: make(map[string]*Gf, len(names)),
		mesh:   cfg.mesh,
	}
	var k int
	for k = range names {
		if _, dup := b.blocks[names[k]]; dup {
			return nil, fmt.Errorf("New: block %q: %w", names[k], ErrDuplicate)
		}
		g, err := NewGf(indices[k], WithMesh(cfg.mesh))
		if err != nil {
			return nil, fmt.Errorf("New: block %q: %w", names[k], err)
		}
		b.names = append(b.names, names[k])
		b.blocks[names[k]] = g
	}

	return b, nil
}

// BlockNames returns the block names in construction order.
func (b *BlockGf) BlockNames() []string { return append([]string(nil), b.names...) }

// Block returns the named block.
func (b *BlockGf) Block(name string) (*Gf, bool) {
	g, ok := b.blocks[name]

	return g, ok
}

// MeshSize returns the common mesh size of all blocks.
func (b *BlockGf) MeshSize() int { return b.mesh }

// BlockIndices returns the two-sided labels of a block.
func (b *BlockGf) BlockIndices(block string) (left, right []string, err error) {
	g, ok := b.blocks[block]
	if !ok {
		return nil, nil, fmt.Errorf("block %q: %w", block, ErrUnknownBlock)
	}
	left, right = g.Indices()

	return left, right, nil
}

// Element reads entry (i1, i2) of a block at all mesh points.
func (b *BlockGf) Element(block, i1, i2 string) ([]complex128, error) {
	g, ok := b.blocks[block]
	if !ok {
		return nil, fmt.Errorf("block %q: %w", block, ErrUnknownBlock)
	}

	return g.Element(i1, i2)
}

// SetElement writes entry (i1, i2) of a block at all mesh points.
func (b *BlockGf) SetElement(block, i1, i2 string, v []complex128) error {
	g, ok := b.blocks[block]
	if !ok {
		return fmt.Errorf("block %q: %w", block, ErrUnknownBlock)
	}

	return g.SetElement(i1, i2, v)
}

// Clone returns a deep copy.
func (b *BlockGf) Clone() *BlockGf {
	out := &BlockGf{
		names:  append([]string(nil), b.names...),
		blocks: make(map[string]*Gf, len(b.blocks)),
		mesh:   b.mesh,
	}
	for name, g := range b.blocks {
		out.blocks[name] = g.Clone()
	}

	return out
}

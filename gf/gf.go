// SPDX-License-Identifier: MIT

package gf

import (
	"fmt"

	"github.com/katalvlaran/gfstruct/matrix"
)

// DefaultMeshSize is the number of mesh points used when no WithMesh option is given.
const DefaultMeshSize = 1

// Option configures a Gf or BlockGf at construction.
type Option func(*config)

type config struct {
	mesh int
}

// WithMesh sets the number of mesh points. Panics if n <= 0 (programmer error).
func WithMesh(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("gf: WithMesh(%d): mesh size must be > 0", n))
	}

	return func(c *config) { c.mesh = n }
}

func gather(opts []Option) config {
	c := config{mesh: DefaultMeshSize}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Gf is a single square block sampled on a mesh.
type Gf struct {
	indices []string       // ordered labels, shared by rows and columns
	pos     map[string]int // label -> row/column position
	data    []*matrix.Dense
}

// NewGf creates a zero-valued block with the given labels.
// Returns ErrDuplicate if a label repeats.
func NewGf(indices []string, opts ...Option) (*Gf, error) {
	cfg := gather(opts)
	g := &Gf{
		indices: append([]string(nil), indices...),
		pos:     make(map[string]int, len(indices)),
		data:    make([]*matrix.Dense, cfg.mesh),
	}
	var i int
	for i = range indices {
		if _, dup := g.pos[indices[i]]; dup {
			return nil, fmt.Errorf("NewGf: index %q: %w", indices[i], ErrDuplicate)
		}
		g.pos[indices[i]] = i
	}
	n := len(indices)
	var err error
	for i = range g.data {
		if g.data[i], err = matrix.NewDense(n, n); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Indices returns the two-sided label lists (left, right); blocks are square
// so both sides are the same sequence.
func (g *Gf) Indices() (left, right []string) {
	return append([]string(nil), g.indices...), append([]string(nil), g.indices...)
}

// MeshSize returns the number of mesh points.
func (g *Gf) MeshSize() int { return len(g.data) }

// Point returns the matrix at mesh point k (shared, not copied).
func (g *Gf) Point(k int) *matrix.Dense { return g.data[k] }

// Element returns the values of entry (i1, i2) at every mesh point.
func (g *Gf) Element(i1, i2 string) ([]complex128, error) {
	r, c, err := g.locate(i1, i2)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(g.data))
	var k int
	for k = range g.data {
		if out[k], err = g.data[k].At(r, c); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SetElement writes entry (i1, i2) at every mesh point.
// len(v) must equal MeshSize.
func (g *Gf) SetElement(i1, i2 string, v []complex128) error {
	r, c, err := g.locate(i1, i2)
	if err != nil {
		return err
	}
	if len(v) != len(g.data) {
		return fmt.Errorf("SetElement(%s,%s) len=%d mesh=%d: %w", i1, i2, len(v), len(g.data), ErrMeshMismatch)
	}
	var k int
	for k = range g.data {
		if err = g.data[k].Set(r, c, v[k]); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns a deep copy of the block.
func (g *Gf) Clone() *Gf {
	out := &Gf{
		indices: append([]string(nil), g.indices...),
		pos:     make(map[string]int, len(g.pos)),
		data:    make([]*matrix.Dense, len(g.data)),
	}
	for k, v := range g.pos {
		out.pos[k] = v
	}
	for k := range g.data {
		out.data[k] = g.data[k].Clone()
	}

	return out
}

func (g *Gf) locate(i1, i2 string) (int, int, error) {
	r, ok := g.pos[i1]
	if !ok {
		return 0, 0, fmt.Errorf("index %q: %w", i1, ErrUnknownIndex)
	}
	c, ok := g.pos[i2]
	if !ok {
		return 0, 0, fmt.Errorf("index %q: %w", i2, ErrUnknownIndex)
	}

	return r, c, nil
}

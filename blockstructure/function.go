// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gfstruct/gf"
)

// Space selects which of the two structures an operation refers to.
type Space string

const (
	// Solver is the reduced basis of the numerical solver.
	Solver Space = "solver"

	// Sumk is the full basis of the aggregating routine.
	Sumk Space = "sumk"
)

// Validate returns ErrInvalidSpace unless s is Solver or Sumk.
func (s Space) Validate() error {
	if s != Solver && s != Sumk {
		return fmt.Errorf("space %q: %w", string(s), ErrInvalidSpace)
	}

	return nil
}

// BlockFunction is the block-structured matrix-valued function this package
// creates, validates and converts. Blocks are square; index labels are the
// String form of Label. *gf.BlockGf satisfies it.
type BlockFunction interface {
	// BlockNames lists the blocks.
	BlockNames() []string

	// BlockIndices returns the left and right index labels of a block.
	BlockIndices(block string) (left, right []string, err error)

	// Element reads entry (i1, i2) of a block at every mesh point.
	Element(block, i1, i2 string) ([]complex128, error)

	// SetElement writes entry (i1, i2) of a block at every mesh point.
	SetElement(block, i1, i2 string, v []complex128) error
}

var _ BlockFunction = (*gf.BlockGf)(nil)

// Factory builds a zero block function; indices[k] are the labels of names[k].
type Factory func(names []string, indices [][]string) (BlockFunction, error)

// DefaultFactory creates a *gf.BlockGf with gf.DefaultMeshSize mesh points.
func DefaultFactory(names []string, indices [][]string) (BlockFunction, error) {
	return gf.New(names, indices)
}

// MeshFactory returns a Factory creating *gf.BlockGf values with n mesh points.
func MeshFactory(n int) Factory {
	mesh := gf.WithMesh(n)

	return func(names []string, indices [][]string) (BlockFunction, error) {
		return gf.New(names, indices, mesh)
	}
}

// meshSizer is implemented by block functions sampled on a mesh, such as
// *gf.BlockGf.
type meshSizer interface {
	MeshSize() int
}

// orderedStruct is a structure with an explicit block order.
type orderedStruct struct {
	names []string
	dict  GfStruct
}

// structFor resolves the expected structure of shell ish in space.
// Solver blocks are ordered by name, sumk blocks by first occurrence.
func (bs *BlockStructure) structFor(ish int, space Space) (orderedStruct, error) {
	if err := space.Validate(); err != nil {
		return orderedStruct{}, err
	}
	if space == Solver {
		if ish < 0 || ish >= len(bs.GfStructSolver) {
			return orderedStruct{}, fmt.Errorf("solver shell %d: %w", ish, ErrShellOutOfRange)
		}
		g := bs.GfStructSolver[ish]

		return orderedStruct{names: g.Names(), dict: g}, nil
	}
	if ish < 0 || ish >= len(bs.GfStructSumk) {
		return orderedStruct{}, fmt.Errorf("sumk shell %d: %w", ish, ErrShellOutOfRange)
	}
	s := bs.GfStructSumk[ish]

	return orderedStruct{names: s.names(), dict: s.Dict()}, nil
}

// CreateGf builds a zero block function whose blocks and labels match shell
// ish in space: the inequivalent shell for Solver, the correlated shell for
// Sumk. Use WithFactory to choose the concrete type.
func (bs *BlockStructure) CreateGf(ish int, space Space, opts ...Option) (BlockFunction, error) {
	o := gatherOptions(opts)

	return bs.createGf(ish, space, o.factory)
}

func (bs *BlockStructure) createGf(ish int, space Space, factory Factory) (BlockFunction, error) {
	st, err := bs.structFor(ish, space)
	if err != nil {
		return nil, fmt.Errorf("CreateGf: %w", err)
	}
	indices := make([][]string, len(st.names))
	for k, name := range st.names {
		indices[k] = labelStrings(st.dict[name])
	}
	g, err := factory(st.names, indices)
	if err != nil {
		return nil, fmt.Errorf("CreateGf(shell %d): %w", ish, err)
	}

	return g, nil
}

// CheckGf returns an ErrStructureMismatch error naming the block and shell
// when g's blocks or index labels differ from shell ish in space.
func (bs *BlockStructure) CheckGf(g BlockFunction, ish int, space Space) error {
	st, err := bs.structFor(ish, space)
	if err != nil {
		return fmt.Errorf("CheckGf: %w", err)
	}
	have := g.BlockNames()
	for _, name := range st.names {
		if !slices.Contains(have, name) {
			return fmt.Errorf("CheckGf: block %s not in G (shell %d): %w", name, ish, ErrStructureMismatch)
		}
	}
	for _, name := range have {
		want, ok := st.dict[name]
		if !ok {
			return fmt.Errorf("CheckGf: block %s not in struct (shell %d): %w", name, ish, ErrStructureMismatch)
		}
		left, right, err := g.BlockIndices(name)
		if err != nil {
			return fmt.Errorf("CheckGf: block %s (shell %d): %v: %w", name, ish, err, ErrStructureMismatch)
		}
		labels := labelStrings(want)
		if !slices.Equal(left, labels) || !slices.Equal(right, labels) {
			return fmt.Errorf("CheckGf: block %s has wrong indices (shell %d): %w", name, ish, ErrStructureMismatch)
		}
	}

	return nil
}

// CheckGfs validates one block function per shell. gs must have one entry per
// shell of space; all shells are checked unless shells names a subset.
func (bs *BlockStructure) CheckGfs(gs []BlockFunction, space Space, shells ...int) error {
	if err := space.Validate(); err != nil {
		return fmt.Errorf("CheckGfs: %w", err)
	}
	n := len(bs.GfStructSolver)
	if space == Sumk {
		n = len(bs.GfStructSumk)
	}
	if len(gs) != n {
		return fmt.Errorf("CheckGfs: list of G has %d entries, %d shells: %w", len(gs), n, ErrStructureMismatch)
	}
	if len(shells) == 0 {
		shells = make([]int, n)
		for i := range shells {
			shells[i] = i
		}
	}
	for _, ish := range shells {
		if ish < 0 || ish >= n {
			return fmt.Errorf("CheckGfs: shell %d: %w", ish, ErrShellOutOfRange)
		}
		if err := bs.CheckGf(gs[ish], ish, space); err != nil {
			return err
		}
	}

	return nil
}

func labelStrings(ls []Label) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}

	return out
}

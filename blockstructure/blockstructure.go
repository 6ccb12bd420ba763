// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"slices"
)

// BlockStructure holds the solver and sumk block structures of every shell and
// the mapping between them.
//
// Solver-side tables (GfStructSolver, SolverToSumk, SumkToSolver,
// SolverToSumkBlock, DegShells, Transformation) are indexed by inequivalent
// shell; GfStructSumk is indexed by correlated shell.
//
// Invariants kept by every mutation:
//   - SolverToSumk and SumkToSolver are mutual inverses where both are present.
//   - SumkToSolver is total over the sumk pairs it has ever known; pairs with
//     no solver counterpart map to Absent.
//   - After PickSolver/PickSumk/ApproximateAsDiagonal, solver indices are 0..n-1.
//   - SolverToSumkBlock[ish][b] is the sumk block of every SolverToSumk[ish][(b, i)].
//
// Mutations rebuild a shell's tables and swap them in as a whole.
type BlockStructure struct {
	GfStructSumk      []SumkStruct
	GfStructSolver    []GfStruct
	SolverToSumk      []map[Key]Key
	SumkToSolver      []map[Key]Target
	SolverToSumkBlock []map[string]string
	DegShells         [][]DegGroup
	Transformation    []ShellTransform // nil: no transformation
}

// FullStructure builds a structure that maps to itself: sumk and solver
// structures are equal and both mappings are the identity.
//
// gfStruct[ish] is the structure of inequivalent shell ish. corrToInequiv maps
// correlated shell csh to its inequivalent shell; when it is nil every
// correlated shell is assumed to coincide with the inequivalent shell of the
// same index. Sumk blocks of a shell are listed in name order.
//
// Returns ErrShellOutOfRange for a corrToInequiv entry naming no shell, and
// ErrDuplicateLabel for a repeated label within a block.
func FullStructure(gfStruct []GfStruct, corrToInequiv []int) (*BlockStructure, error) {
	const op = "FullStructure"
	n := len(gfStruct)
	bs := &BlockStructure{
		GfStructSolver:    make([]GfStruct, n),
		SolverToSumk:      make([]map[Key]Key, n),
		SumkToSolver:      make([]map[Key]Target, n),
		SolverToSumkBlock: make([]map[string]string, n),
		DegShells:         make([][]DegGroup, n),
	}
	perInequiv := make([]SumkStruct, n)
	var ish int
	for ish = 0; ish < n; ish++ {
		so2su := make(map[Key]Key)
		su2so := make(map[Key]Target)
		blocks := make(map[string]string, len(gfStruct[ish]))
		for _, name := range gfStruct[ish].Names() {
			blocks[name] = name
			for _, idx := range gfStruct[ish][name] {
				k := K(name, idx)
				if _, dup := so2su[k]; dup {
					return nil, shellErrorf(op, ish, fmt.Errorf("block %q index %#v: %w", name, idx, ErrDuplicateLabel))
				}
				so2su[k] = k
				su2so[k] = To(k)
			}
		}
		bs.GfStructSolver[ish] = gfStruct[ish].Clone()
		bs.SolverToSumk[ish] = so2su
		bs.SumkToSolver[ish] = su2so
		bs.SolverToSumkBlock[ish] = blocks
		bs.DegShells[ish] = []DegGroup{}
		perInequiv[ish] = gfStruct[ish].List()
	}

	// The sumk structure is given per correlated shell, not per inequivalent one.
	if corrToInequiv == nil {
		bs.GfStructSumk = perInequiv

		return bs, nil
	}
	bs.GfStructSumk = make([]SumkStruct, len(corrToInequiv))
	for csh, icsh := range corrToInequiv {
		if icsh < 0 || icsh >= n {
			return nil, shellErrorf(op, csh, fmt.Errorf("corrToInequiv=%d: %w", icsh, ErrShellOutOfRange))
		}
		bs.GfStructSumk[csh] = perInequiv[icsh].Clone()
	}

	return bs, nil
}

// NumShells returns the number of inequivalent shells.
func (bs *BlockStructure) NumShells() int { return len(bs.GfStructSolver) }

// NumCorrShells returns the number of correlated shells.
func (bs *BlockStructure) NumCorrShells() int { return len(bs.GfStructSumk) }

// Clone returns a fully independent deep copy.
func (bs *BlockStructure) Clone() *BlockStructure {
	out := &BlockStructure{
		DegShells:      cloneDegShells(bs.DegShells),
		Transformation: cloneTransformation(bs.Transformation),
	}
	if bs.GfStructSumk != nil {
		out.GfStructSumk = make([]SumkStruct, len(bs.GfStructSumk))
		for i, s := range bs.GfStructSumk {
			out.GfStructSumk[i] = s.Clone()
		}
	}
	if bs.GfStructSolver != nil {
		out.GfStructSolver = make([]GfStruct, len(bs.GfStructSolver))
		for i, g := range bs.GfStructSolver {
			out.GfStructSolver[i] = g.Clone()
		}
	}
	out.SolverToSumk = cloneMaps(bs.SolverToSumk)
	out.SumkToSolver = cloneMaps(bs.SumkToSolver)
	out.SolverToSumkBlock = cloneMaps(bs.SolverToSumkBlock)

	return out
}

// cloneMaps copies a per-shell slice of maps with value-typed entries.
func cloneMaps[K comparable, V any](in []map[K]V) []map[K]V {
	if in == nil {
		return nil
	}
	out := make([]map[K]V, len(in))
	for i, m := range in {
		if m == nil {
			continue
		}
		cp := make(map[K]V, len(m))
		for k, v := range m {
			cp[k] = v
		}
		out[i] = cp
	}

	return out
}

// solverShell validates a solver-side shell index.
func (bs *BlockStructure) solverShell(op string, ish int) error {
	if ish < 0 || ish >= len(bs.GfStructSolver) || ish >= len(bs.SolverToSumk) || ish >= len(bs.SumkToSolver) {
		return shellErrorf(op, ish, ErrShellOutOfRange)
	}

	return nil
}

// indexOf returns the position of l in idxs, or -1.
func indexOf(idxs []Label, l Label) int {
	return slices.Index(idxs, l)
}

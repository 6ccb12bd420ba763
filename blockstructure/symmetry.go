// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/gfstruct/matrix"
)

// DegGroup is one group of blocks declared equivalent by symmetry.
// It is either a SimpleGroup or a TransformGroup.
type DegGroup interface {
	// Blocks returns the member block names.
	Blocks() []string

	clone() DegGroup
	isDegGroup()
}

// SimpleGroup lists blocks that are numerically identical.
type SimpleGroup []string

// Blocks returns the members in declaration order.
func (g SimpleGroup) Blocks() []string { return append([]string(nil), g...) }

func (g SimpleGroup) clone() DegGroup { return SimpleGroup(append([]string(nil), g...)) }
func (SimpleGroup) isDegGroup()       {}

// BlockTransform is the per-member data of a TransformGroup.
// Two members with (V1, C1) and (V2, C2) satisfy
// C1(V1† G1 V1) = C2(V2† G2 V2), where Ci conjugates when Conjugate is set.
type BlockTransform struct {
	Matrix    *matrix.Dense
	Conjugate bool
}

// TransformGroup maps member block names to their transform and conjugation flag.
type TransformGroup map[string]BlockTransform

// Blocks returns the members sorted by name.
func (g TransformGroup) Blocks() []string {
	names := make([]string, 0, len(g))
	for n := range g {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func (g TransformGroup) clone() DegGroup {
	out := make(TransformGroup, len(g))
	for n, bt := range g {
		out[n] = BlockTransform{Matrix: bt.Matrix.Clone(), Conjugate: bt.Conjugate}
	}

	return out
}
func (TransformGroup) isDegGroup() {}

// ShellTransform is the change of basis applied to a shell's sumk data before
// it is mapped into solver space: G_solver = T G_sumk T†.
// It is either a UniformTransform or a BlockTransforms.
type ShellTransform interface {
	// For returns the matrix that applies to block, if any.
	For(block string) (*matrix.Dense, bool)

	clone() ShellTransform
	isShellTransform()
}

// UniformTransform applies one matrix to every block of the shell.
type UniformTransform struct {
	Matrix *matrix.Dense
}

// For returns the shared matrix.
func (u UniformTransform) For(string) (*matrix.Dense, bool) { return u.Matrix, u.Matrix != nil }

func (u UniformTransform) clone() ShellTransform { return UniformTransform{Matrix: u.Matrix.Clone()} }
func (UniformTransform) isShellTransform()       {}

// BlockTransforms holds one matrix per block name.
type BlockTransforms map[string]*matrix.Dense

// For returns the matrix of block.
func (b BlockTransforms) For(block string) (*matrix.Dense, bool) {
	m, ok := b[block]

	return m, ok
}

func (b BlockTransforms) clone() ShellTransform {
	out := make(BlockTransforms, len(b))
	for n, m := range b {
		out[n] = m.Clone()
	}

	return out
}
func (BlockTransforms) isShellTransform() {}

// SetDegShells replaces the equivalence groups of shell ish.
// Every member must name a solver block of that shell; in a TransformGroup the
// member's matrix must be square with the block's dimension.
func (bs *BlockStructure) SetDegShells(ish int, groups []DegGroup) error {
	const op = "SetDegShells"
	if ish < 0 || ish >= len(bs.GfStructSolver) {
		return shellErrorf(op, ish, ErrShellOutOfRange)
	}
	solver := bs.GfStructSolver[ish]
	out := make([]DegGroup, 0, len(groups))
	for gi, g := range groups {
		if g == nil {
			return shellErrorf(op, ish, fmt.Errorf("group %d is nil: %w", gi, ErrUnknownBlock))
		}
		for _, name := range g.Blocks() {
			idxs, ok := solver[name]
			if !ok {
				return shellErrorf(op, ish, fmt.Errorf("group %d block %q: %w", gi, name, ErrUnknownBlock))
			}
			tg, isTransform := g.(TransformGroup)
			if !isTransform {
				continue
			}
			m := tg[name].Matrix
			if m == nil || m.Rows() != len(idxs) || m.Cols() != len(idxs) {
				return shellErrorf(op, ish, fmt.Errorf("group %d block %q: transform shape: %w", gi, name, matrix.ErrDimensionMismatch))
			}
		}
		out = append(out, g.clone())
	}
	bs.DegShells[ish] = out

	return nil
}

// SetTransformation replaces the per-shell transformation list; nil means no
// transformation. A non-nil list must have one entry per inequivalent shell
// (entries may be nil for shells without a transform).
func (bs *BlockStructure) SetTransformation(ts []ShellTransform) error {
	if ts == nil {
		bs.Transformation = nil

		return nil
	}
	if len(ts) != len(bs.GfStructSolver) {
		return fmt.Errorf("SetTransformation: %d entries for %d shells: %w", len(ts), len(bs.GfStructSolver), ErrShellCount)
	}
	bs.Transformation = cloneTransformation(ts)

	return nil
}

// EffectiveTransformation returns the transformation applied when moving data
// from sumk into solver space, or nil when there is none.
func (bs *BlockStructure) EffectiveTransformation() []ShellTransform {
	return cloneTransformation(bs.Transformation)
}

// pruneDegShells drops group members that no longer name a solver block of
// shell ish, transform members whose matrix no longer fits the block, and
// groups left empty.
func (bs *BlockStructure) pruneDegShells(ish int) {
	if ish >= len(bs.DegShells) {
		return
	}
	solver := bs.GfStructSolver[ish]
	kept := make([]DegGroup, 0, len(bs.DegShells[ish]))
	for _, g := range bs.DegShells[ish] {
		switch grp := g.(type) {
		case SimpleGroup:
			var ng SimpleGroup
			for _, n := range grp {
				if _, ok := solver[n]; ok {
					ng = append(ng, n)
				}
			}
			if len(ng) > 0 {
				kept = append(kept, ng)
			}
		case TransformGroup:
			ng := make(TransformGroup, len(grp))
			for n, bt := range grp {
				idxs, ok := solver[n]
				if !ok || bt.Matrix == nil || bt.Matrix.Rows() != len(idxs) || bt.Matrix.Cols() != len(idxs) {
					continue
				}
				ng[n] = bt
			}
			if len(ng) > 0 {
				kept = append(kept, ng)
			}
		}
	}
	bs.DegShells[ish] = kept
}

func cloneTransformation(ts []ShellTransform) []ShellTransform {
	if ts == nil {
		return nil
	}
	out := make([]ShellTransform, len(ts))
	for i, t := range ts {
		if t != nil {
			out[i] = t.clone()
		}
	}

	return out
}

func cloneDegShells(ds [][]DegGroup) [][]DegGroup {
	if ds == nil {
		return nil
	}
	out := make([][]DegGroup, len(ds))
	for ish, groups := range ds {
		out[ish] = make([]DegGroup, len(groups))
		for gi, g := range groups {
			if g != nil {
				out[ish][gi] = g.clone()
			}
		}
	}

	return out
}

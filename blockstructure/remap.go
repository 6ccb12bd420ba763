// SPDX-License-Identifier: MIT

package blockstructure

import (
	"fmt"
	"slices"
)

// MapSolver relabels the solver structure.
//
// mapping[ish] sends existing solver pairs (from) to new solver pairs (to);
// a nil entry leaves that shell unchanged and mapping may be shorter than the
// number of shells. Several old blocks may be merged into one new block, e.g.
// to introduce an off-diagonal coupling between two 1×1 blocks:
//
//	bs.MapSolver([]map[blockstructure.Key]blockstructure.Key{{
//		blockstructure.K("block_1", blockstructure.IntLabel(0)): blockstructure.K("block", blockstructure.IntLabel(0)),
//		blockstructure.K("block_2", blockstructure.IntLabel(0)): blockstructure.K("block", blockstructure.IntLabel(1)),
//	}})
//
// The new structure is the range of the mapping, each block's labels sorted;
// sumk pairs not reached by the mapping become Absent. When two old blocks
// merged into one new block disagree on their sumk block, an AmbiguousMapping
// warning is raised and the first source in (block, index) order wins.
//
// Returns ErrShellCount, ErrUnknownIndex for an unknown source, and
// ErrDuplicateLabel when two sources share a target. No shell is modified
// unless every shell validates.
func (bs *BlockStructure) MapSolver(mapping []map[Key]Key, opts ...Option) error {
	const op = "MapSolver"
	if len(mapping) > len(bs.GfStructSolver) {
		return fmt.Errorf("%s: %d shells given, %d available: %w", op, len(mapping), len(bs.GfStructSolver), ErrShellCount)
	}
	o := gatherOptions(opts)
	staged := make([]*shellTables, len(mapping))
	var (
		ish int
		err error
	)
	for ish = range mapping {
		if mapping[ish] == nil {
			continue
		}
		if err = bs.solverShell(op, ish); err != nil {
			return err
		}
		var t shellTables
		if t, err = bs.mapShell(ish, mapping[ish], o.diag); err != nil {
			return shellErrorf(op, ish, err)
		}
		staged[ish] = &t
	}
	for ish = range staged {
		if staged[ish] != nil {
			bs.commit(ish, *staged[ish])
		}
	}

	return nil
}

func (bs *BlockStructure) mapShell(ish int, m map[Key]Key, diag *Diagnostics) (shellTables, error) {
	so2suOld := bs.SolverToSumk[ish]
	blocksOld := bs.SolverToSumkBlock[ish]
	t := shellTables{
		solver: make(GfStruct),
		so2su:  make(map[Key]Key, len(m)),
		su2so:  make(map[Key]Target, len(bs.SumkToSolver[ish])),
		blocks: make(map[string]string),
	}
	for _, frm := range sortedKeys(m) {
		to := m[frm]
		sumk, ok := so2suOld[frm]
		if !ok {
			return shellTables{}, fmt.Errorf("source %s: %w", frm, ErrUnknownIndex)
		}
		if _, dup := t.so2su[to]; dup {
			return shellTables{}, fmt.Errorf("target %s: %w", to, ErrDuplicateLabel)
		}
		t.solver[to.Block] = append(t.solver[to.Block], to.Index)
		t.so2su[to] = sumk
		t.su2so[sumk] = To(to)

		sumkBlock, ok := blocksOld[frm.Block]
		if !ok {
			sumkBlock = sumk.Block
		}
		prev, seen := t.blocks[to.Block]
		switch {
		case !seen:
			t.blocks[to.Block] = sumkBlock
		case prev != sumkBlock:
			diag.Warn(Warning{
				Kind:  AmbiguousMapping,
				Shell: ish,
				Block: to.Block,
				Message: fmt.Sprintf("solver block %q maps to more than one sumk block: %q, %q",
					to.Block, prev, sumkBlock),
			})
		}
	}
	for _, idxs := range t.solver {
		slices.SortFunc(idxs, compareLabels)
	}
	for k := range bs.SumkToSolver[ish] {
		if _, ok := t.su2so[k]; !ok {
			t.su2so[k] = Absent
		}
	}

	return t, nil
}

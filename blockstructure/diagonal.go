// SPDX-License-Identifier: MIT

package blockstructure

import "fmt"

// diagonalBlockName names the singleton solver block of a sumk pair.
func diagonalBlockName(k Key) string { return k.Block + "_" + k.Index.String() }

// ApproximateAsDiagonal rewrites every shell so that each mapped sumk pair
// becomes its own 1×1 solver block named "<block>_<index>" with index 0.
// Off-diagonal couplings inside a sumk block are discarded; unmapped sumk
// pairs stay Absent. The old grouping cannot be recovered afterwards, and
// equivalence groups naming the old blocks are dropped with it.
//
// Two mapped pairs that produce the same name (labels 1 and "1" of one
// block, or ("a", "b_c") and ("a_b", "c")) make the call fail with
// ErrDuplicateLabel and leave bs unchanged.
//
// In general this throws away non-zero elements; verify the approximation is
// justified before converting data into the new structure.
func (bs *BlockStructure) ApproximateAsDiagonal() error {
	const op = "ApproximateAsDiagonal"
	staged := make([]shellTables, len(bs.GfStructSolver))
	var ish int
	for ish = range staged {
		if ish >= len(bs.SumkToSolver) {
			break
		}
		t := shellTables{
			solver: make(GfStruct),
			so2su:  make(map[Key]Key),
			su2so:  make(map[Key]Target, len(bs.SumkToSolver[ish])),
			blocks: make(map[string]string),
		}
		for _, frm := range sortedKeys(bs.SumkToSolver[ish]) {
			if bs.SumkToSolver[ish][frm].IsAbsent() {
				t.su2so[frm] = Absent
				continue
			}
			name := diagonalBlockName(frm)
			diag := K(name, IntLabel(0))
			if prev, dup := t.so2su[diag]; dup {
				return shellErrorf(op, ish, fmt.Errorf("sumk %s and %s both become block %q: %w", prev, frm, name, ErrDuplicateLabel))
			}
			t.solver[name] = Range(1)
			t.su2so[frm] = To(diag)
			t.so2su[diag] = frm
			t.blocks[name] = frm.Block
		}
		staged[ish] = t
	}
	for ish = range staged {
		if ish < len(bs.SumkToSolver) {
			bs.commit(ish, staged[ish])
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package blockstructure

import "fmt"

// shellTables is the complete mapping state of one inequivalent shell,
// built aside and swapped in at once.
type shellTables struct {
	solver GfStruct
	so2su  map[Key]Key
	su2so  map[Key]Target
	blocks map[string]string
}

func (bs *BlockStructure) commit(ish int, t shellTables) {
	bs.GfStructSolver[ish] = t.solver
	bs.SolverToSumk[ish] = t.so2su
	bs.SumkToSolver[ish] = t.su2so
	bs.SolverToSumkBlock[ish] = t.blocks
	bs.pruneDegShells(ish)
}

// PickSolver keeps only the selected solver orbitals.
//
// newStruct[ish] maps each retained block to the solver indices it keeps, in
// the order they should appear; blocks left out are dropped entirely. After
// the call every retained block is renumbered 0..n-1 in that order, and every
// sumk pair whose solver target was dropped maps to Absent.
//
// Example: with {"up":[0,1],"down":[0,1],"left":[0,1]}, picking
// {"up":[0],"down":[1]} yields {"up":[0],"down":[0]}; ("down",1) in sumk
// then maps to ("down",0) and ("down",0) maps to Absent.
//
// newStruct must have one entry per inequivalent shell and reference only
// current (block, index) pairs (ErrShellCount, ErrUnknownIndex,
// ErrDuplicateLabel). No shell is modified unless every shell validates.
func (bs *BlockStructure) PickSolver(newStruct []GfStruct) error {
	const op = "PickSolver"
	if len(newStruct) != len(bs.GfStructSolver) {
		return fmt.Errorf("%s: %d shells given, %d expected: %w", op, len(newStruct), len(bs.GfStructSolver), ErrShellCount)
	}
	staged := make([]shellTables, len(newStruct))
	var (
		ish int
		err error
	)
	for ish = range newStruct {
		if err = bs.solverShell(op, ish); err != nil {
			return err
		}
		if staged[ish], err = bs.pickShell(ish, newStruct[ish]); err != nil {
			return shellErrorf(op, ish, err)
		}
	}
	for ish = range staged {
		bs.commit(ish, staged[ish])
	}

	return nil
}

// pickShell computes the narrowed tables of one shell without touching bs.
func (bs *BlockStructure) pickShell(ish int, sel GfStruct) (shellTables, error) {
	old := bs.SolverToSumk[ish]
	t := shellTables{
		solver: make(GfStruct, len(sel)),
		so2su:  make(map[Key]Key),
		su2so:  make(map[Key]Target, len(bs.SumkToSolver[ish])),
		blocks: make(map[string]string, len(sel)),
	}
	var i int
	for blk, idxs := range sel {
		for i = range idxs {
			if indexOf(idxs[:i], idxs[i]) >= 0 {
				return shellTables{}, fmt.Errorf("block %q index %#v: %w", blk, idxs[i], ErrDuplicateLabel)
			}
			target, ok := old[K(blk, idxs[i])]
			if !ok {
				return shellTables{}, fmt.Errorf("block %q index %#v: %w", blk, idxs[i], ErrUnknownIndex)
			}
			t.so2su[K(blk, IntLabel(i))] = target
			t.blocks[blk] = target.Block
		}
		t.solver[blk] = Range(len(idxs))
	}
	for k, v := range bs.SumkToSolver[ish] {
		t.su2so[k] = Absent
		key, ok := v.Key()
		if !ok {
			continue
		}
		idxs, kept := sel[key.Block]
		if !kept {
			continue
		}
		if pos := indexOf(idxs, key.Index); pos >= 0 {
			t.su2so[k] = To(K(key.Block, IntLabel(pos)))
		}
	}

	return t, nil
}

// PickSumk keeps only the selected orbitals, given in sumk labels.
//
// newStruct[ish] maps sumk block names to sumk indices. Each pair is
// translated through SumkToSolver into solver terms and the result is passed
// to PickSolver, so both entry points share one restriction algorithm.
// Requested pairs that already map to Absent are skipped: a restriction never
// brings back dropped data. Blocks are translated in name order.
func (bs *BlockStructure) PickSumk(newStruct []GfStruct) error {
	const op = "PickSumk"
	if len(newStruct) != len(bs.GfStructSolver) {
		return fmt.Errorf("%s: %d shells given, %d expected: %w", op, len(newStruct), len(bs.GfStructSolver), ErrShellCount)
	}
	translated := make([]GfStruct, len(newStruct))
	for ish, sel := range newStruct {
		if err := bs.solverShell(op, ish); err != nil {
			return err
		}
		gfs := make(GfStruct)
		for _, blk := range sel.Names() {
			for _, idx := range sel[blk] {
				target, ok := bs.SumkToSolver[ish][K(blk, idx)]
				if !ok {
					return shellErrorf(op, ish, fmt.Errorf("sumk block %q index %#v: %w", blk, idx, ErrUnknownIndex))
				}
				key, present := target.Key()
				if !present {
					continue
				}
				gfs[key.Block] = append(gfs[key.Block], key.Index)
			}
		}
		translated[ish] = gfs
	}

	return bs.PickSolver(translated)
}

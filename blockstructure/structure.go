// SPDX-License-Identifier: MIT

package blockstructure

import (
	"slices"
	"sort"
)

// GfStruct maps a block name to its ordered index labels.
// It is the solver structure of one shell, and the dict view of a sumk shell.
type GfStruct map[string][]Label

// Clone returns a deep copy.
func (g GfStruct) Clone() GfStruct {
	if g == nil {
		return nil
	}
	out := make(GfStruct, len(g))
	for name, idxs := range g {
		out[name] = slices.Clone(idxs)
	}

	return out
}

// Names returns the block names sorted alphabetically.
func (g GfStruct) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// List returns the blocks as (name, indices) pairs sorted by name.
func (g GfStruct) List() SumkStruct {
	out := make(SumkStruct, 0, len(g))
	for _, name := range g.Names() {
		out = append(out, Block{Name: name, Indices: slices.Clone(g[name])})
	}

	return out
}

// Block is one (name, indices) entry of an ordered structure.
type Block struct {
	Name    string
	Indices []Label
}

// SumkStruct is the ordered block list of one correlated shell.
// Duplicate names are legal here; Dict collapses them (last one wins).
type SumkStruct []Block

// Clone returns a deep copy.
func (s SumkStruct) Clone() SumkStruct {
	if s == nil {
		return nil
	}
	out := make(SumkStruct, len(s))
	for i, b := range s {
		out[i] = Block{Name: b.Name, Indices: slices.Clone(b.Indices)}
	}

	return out
}

// Dict returns the name→indices view; for duplicate names the last occurrence wins.
func (s SumkStruct) Dict() GfStruct {
	out := make(GfStruct, len(s))
	for _, b := range s {
		out[b.Name] = slices.Clone(b.Indices)
	}

	return out
}

// names returns the distinct block names in first-occurrence order.
func (s SumkStruct) names() []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, b := range s {
		if _, ok := seen[b.Name]; ok {
			continue
		}
		seen[b.Name] = struct{}{}
		out = append(out, b.Name)
	}

	return out
}

// GfStructSolverList returns, per inequivalent shell, the solver blocks sorted
// alphabetically by name. Callers must not rely on any other order.
func (bs *BlockStructure) GfStructSolverList() []SumkStruct {
	out := make([]SumkStruct, len(bs.GfStructSolver))
	for ish, g := range bs.GfStructSolver {
		out[ish] = g.List()
	}

	return out
}

// GfStructSolverDict returns, per inequivalent shell, the solver structure.
// The result is a copy.
func (bs *BlockStructure) GfStructSolverDict() []GfStruct {
	out := make([]GfStruct, len(bs.GfStructSolver))
	for ish, g := range bs.GfStructSolver {
		out[ish] = g.Clone()
	}

	return out
}

// GfStructSumkList returns, per correlated shell, the sumk blocks in source order.
// The result is a copy.
func (bs *BlockStructure) GfStructSumkList() []SumkStruct {
	out := make([]SumkStruct, len(bs.GfStructSumk))
	for ish, s := range bs.GfStructSumk {
		out[ish] = s.Clone()
	}

	return out
}

// GfStructSumkDict returns, per correlated shell, the sumk structure as a
// name→indices map (last duplicate wins).
func (bs *BlockStructure) GfStructSumkDict() []GfStruct {
	out := make([]GfStruct, len(bs.GfStructSumk))
	for ish, s := range bs.GfStructSumk {
		out[ish] = s.Dict()
	}

	return out
}

// sortedKeys returns the keys of a Key-indexed map in (block, index) order.
func sortedKeys[V any](m map[Key]V) []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	return keys
}

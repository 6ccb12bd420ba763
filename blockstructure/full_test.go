// SPDX-License-Identifier: MIT

package blockstructure_test

import (
	"testing"

	bst "github.com/katalvlaran/gfstruct/blockstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFullStructure_Identity checks that both maps are the identity and mutual inverses.
func TestFullStructure_Identity(t *testing.T) {
	gs := []bst.GfStruct{
		{"up": bst.Ints(0, 1), "down": bst.Ints(0, 1)},
		{"eg": bst.Names("z2", "x2-y2"), "t2g": bst.Ints(0, 1, 2)},
	}
	bs := mustFull(t, gs, nil)

	require.Equal(t, 2, bs.NumShells())
	require.Equal(t, 2, bs.NumCorrShells())
	for ish, g := range gs {
		for block, idxs := range g {
			assert.Equal(t, block, bs.SolverToSumkBlock[ish][block])
			for _, idx := range idxs {
				k := bst.K(block, idx)
				assert.Equal(t, k, bs.SolverToSumk[ish][k])
				back, ok := bs.SumkToSolver[ish][bs.SolverToSumk[ish][k]].Key()
				require.True(t, ok)
				assert.Equal(t, k, back)
			}
		}
		assert.Len(t, bs.SumkToSolver[ish], len(bs.SolverToSumk[ish]))
		assert.Empty(t, bs.DegShells[ish])
	}
	assert.Nil(t, bs.Transformation)
	assert.Equal(t, gs[1], bs.GfStructSumk[1].Dict())
}

// TestFullStructure_CorrToInequiv expands sumk structures per correlated shell.
func TestFullStructure_CorrToInequiv(t *testing.T) {
	gs := []bst.GfStruct{{"up": bst.Ints(0)}, {"d": bst.Ints(0, 1)}}
	bs := mustFull(t, gs, []int{0, 0, 1})

	require.Equal(t, 3, bs.NumCorrShells())
	assert.Equal(t, 2, bs.NumShells())
	assert.Equal(t, bs.GfStructSumk[0], bs.GfStructSumk[1])
	assert.Equal(t, bst.SumkStruct{{Name: "d", Indices: bst.Ints(0, 1)}}, bs.GfStructSumk[2])

	bs.GfStructSumk[0][0].Indices[0] = bst.IntLabel(9)
	assert.Equal(t, bst.IntLabel(0), bs.GfStructSumk[1][0].Indices[0], "correlated shells must not share storage")

	_, err := bst.FullStructure(gs, []int{0, 2})
	assert.ErrorIs(t, err, bst.ErrShellOutOfRange)
}

// TestFullStructure_Duplicate rejects repeated labels in a block.
func TestFullStructure_Duplicate(t *testing.T) {
	_, err := bst.FullStructure([]bst.GfStruct{{"up": bst.Ints(0, 0)}}, nil)
	assert.ErrorIs(t, err, bst.ErrDuplicateLabel)
}

// TestFullStructure_InputNotAliased checks the input is copied.
func TestFullStructure_InputNotAliased(t *testing.T) {
	gs := updown()
	bs := mustFull(t, gs, nil)
	gs[0]["up"][0] = bst.IntLabel(7)
	assert.Equal(t, bst.Ints(0, 1), bs.GfStructSolver[0]["up"])
}

// TestAccessors covers the four structure views.
func TestAccessors(t *testing.T) {
	bs := mustFull(t, []bst.GfStruct{{"up": bst.Ints(0), "down": bst.Ints(0, 1), "left": bst.Ints(0)}}, nil)

	list := bs.GfStructSolverList()
	require.Len(t, list, 1)
	names := []string{list[0][0].Name, list[0][1].Name, list[0][2].Name}
	assert.Equal(t, []string{"down", "left", "up"}, names, "solver list is sorted by block name")

	dict := bs.GfStructSolverDict()
	dict[0]["up"] = nil
	assert.Equal(t, bst.Ints(0), bs.GfStructSolver[0]["up"], "dict view is a copy")

	dup := &bst.BlockStructure{GfStructSumk: []bst.SumkStruct{{
		{Name: "a", Indices: bst.Ints(0)},
		{Name: "b", Indices: bst.Ints(0)},
		{Name: "a", Indices: bst.Ints(0, 1)},
	}}}
	assert.Len(t, dup.GfStructSumkList()[0], 3, "list view keeps duplicates")
	assert.Equal(t, bst.Ints(0, 1), dup.GfStructSumkDict()[0]["a"], "last duplicate wins in dict view")
}

// TestLabel covers label rendering and the Absent sentinel.
func TestLabel(t *testing.T) {
	assert.Equal(t, "0", bst.IntLabel(0).String())
	assert.Equal(t, "0", bst.NameLabel("0").String())
	assert.NotEqual(t, bst.IntLabel(0), bst.NameLabel("0"))
	assert.Equal(t, `("up", 0)`, bst.K("up", bst.IntLabel(0)).String())
	assert.Equal(t, `("eg", "xy")`, bst.K("eg", bst.NameLabel("xy")).String())

	assert.True(t, bst.Absent.IsAbsent())
	assert.Equal(t, "(None, None)", bst.Absent.String())
	k, ok := bst.To(bst.K("up", bst.IntLabel(0))).Key()
	assert.True(t, ok)
	assert.Equal(t, "up", k.Block)
	assert.Equal(t, bst.Target{}, bst.Absent, "zero Target is absent, never (block, 0)")
}

// SPDX-License-Identifier: MIT

package blockstructure_test

import (
	"testing"

	bst "github.com/katalvlaran/gfstruct/blockstructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApproximateAsDiagonal turns each mapped sumk pair into a 1×1 block.
func TestApproximateAsDiagonal(t *testing.T) {
	bs := mustFull(t, updown(), nil)
	require.NoError(t, bs.PickSolver([]bst.GfStruct{{"up": bst.Ints(0, 1), "down": bst.Ints(1)}}))
	require.NoError(t, bs.SetDegShells(0, []bst.DegGroup{bst.SimpleGroup{"up", "down"}}))

	mapped := 0
	for _, target := range bs.SumkToSolver[0] {
		if !target.IsAbsent() {
			mapped++
		}
	}
	require.NoError(t, bs.ApproximateAsDiagonal())

	solver := bs.GfStructSolver[0]
	assert.Len(t, solver, mapped)
	for name, idxs := range solver {
		assert.Equal(t, bst.Ints(0), idxs, "block %s", name)
	}
	assert.Contains(t, solver, "up_0")
	assert.Contains(t, solver, "up_1")
	assert.Contains(t, solver, "down_1")

	assert.Equal(t, bst.To(k("down_1", 0)), bs.SumkToSolver[0][k("down", 1)])
	assert.True(t, bs.SumkToSolver[0][k("down", 0)].IsAbsent(), "unmapped pairs stay unmapped")
	assert.Equal(t, k("up", 1), bs.SolverToSumk[0][k("up_1", 0)])
	assert.Equal(t, "down", bs.SolverToSumkBlock[0]["down_1"])
	assert.Empty(t, bs.DegShells[0], "groups naming the old blocks are gone")
}

// TestApproximateAsDiagonal_StringLabels names blocks from string labels.
func TestApproximateAsDiagonal_StringLabels(t *testing.T) {
	bs := mustFull(t, []bst.GfStruct{{"eg": bst.Names("z2", "x2y2")}}, nil)
	require.NoError(t, bs.ApproximateAsDiagonal())

	assert.Equal(t, bst.GfStruct{"eg_z2": bst.Ints(0), "eg_x2y2": bst.Ints(0)}, bs.GfStructSolver[0])
	assert.Equal(t, bst.K("eg", bst.NameLabel("x2y2")), bs.SolverToSumk[0][k("eg_x2y2", 0)])
}

// TestApproximateAsDiagonal_NameCollision rejects pairs that share a block name.
func TestApproximateAsDiagonal_NameCollision(t *testing.T) {
	for name, gs := range map[string][]bst.GfStruct{
		"int and string label": {{"up": {bst.IntLabel(1), bst.NameLabel("1")}}},
		"underscore split":     {{"a": bst.Names("b_c"), "a_b": bst.Names("c")}},
	} {
		t.Run(name, func(t *testing.T) {
			bs := mustFull(t, gs, nil)
			before := bs.Clone()

			err := bs.ApproximateAsDiagonal()
			require.ErrorIs(t, err, bst.ErrDuplicateLabel)
			requireEqual(t, before, bs)
		})
	}
}

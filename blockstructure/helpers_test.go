// SPDX-License-Identifier: MIT

package blockstructure_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	bst "github.com/katalvlaran/gfstruct/blockstructure"
	"github.com/stretchr/testify/require"
)

// updown is the two-block, two-orbital fixture used across tests.
func updown() []bst.GfStruct {
	return []bst.GfStruct{{"up": bst.Ints(0, 1), "down": bst.Ints(0, 1)}}
}

// mustFull builds an identity structure or fails the test.
func mustFull(t *testing.T, gs []bst.GfStruct, corr []int) *bst.BlockStructure {
	t.Helper()
	bs, err := bst.FullStructure(gs, corr)
	require.NoError(t, err)

	return bs
}

// requireEqual fails with a spew dump of both sides when structures differ.
func requireEqual(t *testing.T, want, got *bst.BlockStructure) {
	t.Helper()
	if !want.Equal(got) {
		t.Fatalf("structures differ\nwant:\n%s\ngot:\n%s", spew.Sdump(want), spew.Sdump(got))
	}
}

// fill writes value(block, i1, i2) into every element of g's solver shell ish.
func fill(t *testing.T, bs *bst.BlockStructure, g bst.BlockFunction, ish int, value func(block string, i1, i2 int) complex128) {
	t.Helper()
	for block, idxs := range bs.GfStructSolver[ish] {
		for a, i1 := range idxs {
			for b, i2 := range idxs {
				v := value(block, a, b)
				require.NoError(t, g.SetElement(block, i1.String(), i2.String(), []complex128{v}))
			}
		}
	}
}

// at reads a single-point element.
func at(t *testing.T, g bst.BlockFunction, block, i1, i2 string) complex128 {
	t.Helper()
	v, err := g.Element(block, i1, i2)
	require.NoError(t, err)
	require.Len(t, v, 1)

	return v[0]
}
